package relatorios

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pontodigital/ponto-backend/internal/ponto"
	"github.com/pontodigital/ponto-backend/pkg/enums"
	pkgerrors "github.com/pontodigital/ponto-backend/pkg/errors"
)

type stubFuncionarioCounter struct {
	count int64
	err   error
}

func (s *stubFuncionarioCounter) Count(_ context.Context) (int64, error) {
	return s.count, s.err
}

type stubPontoLedger struct {
	recentes    []ponto.Registro
	countSince  int64
	gotCutoff   time.Time
	recentesErr error
}

func (s *stubPontoLedger) Recentes(_ context.Context, _ int) ([]ponto.Registro, error) {
	if s.recentesErr != nil {
		return nil, s.recentesErr
	}
	return s.recentes, nil
}

func (s *stubPontoLedger) CountSince(_ context.Context, cutoff time.Time) (int64, error) {
	s.gotCutoff = cutoff
	return s.countSince, nil
}

type stubFeriasCounter struct {
	count int64
}

func (s *stubFeriasCounter) CountPendentes(_ context.Context) (int64, error) {
	return s.count, nil
}

func strPtr(s string) *string { return &s }

func registroAt(tipo enums.PontoTipo, at time.Time, foto *string) ponto.Registro {
	return ponto.Registro{
		ID:            uuid.New(),
		FuncionarioID: uuid.New(),
		Nome:          "Maria",
		Tipo:          string(tipo),
		FotoURL:       foto,
		CreatedAt:     at,
	}
}

func newTestService(t *testing.T, pontos *stubPontoLedger, agora time.Time) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Funcionarios: &stubFuncionarioCounter{count: 7},
		Pontos:       pontos,
		Ferias:       &stubFeriasCounter{count: 2},
		Now:          func() time.Time { return agora },
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestNewServiceValidatesDeps(t *testing.T) {
	if _, err := NewService(ServiceParams{}); err == nil {
		t.Fatal("expected error without deps")
	}
	if _, err := NewService(ServiceParams{Funcionarios: &stubFuncionarioCounter{}}); err == nil {
		t.Fatal("expected error without ponto repo")
	}
}

func TestStatusAggregates(t *testing.T) {
	agora := time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC)
	pontos := &stubPontoLedger{
		countSince: 4,
		recentes: []ponto.Registro{
			registroAt(enums.PontoEntrada, agora.Add(-time.Hour), strPtr("https://storage/foto1.jpg")),
			registroAt(enums.PontoSaida, agora.Add(-2*time.Hour), nil),
		},
	}
	svc := newTestService(t, pontos, agora)

	status, err := svc.Status(context.Background())
	if err != nil {
		t.Fatalf("Status: %v", err)
	}

	if status.FuncionariosAtivos != 7 {
		t.Fatalf("expected 7 active, got %d", status.FuncionariosAtivos)
	}
	if status.PontosHoje != 4 {
		t.Fatalf("expected 4 events today, got %d", status.PontosHoje)
	}
	if status.FeriasPendentes != 2 {
		t.Fatalf("expected 2 pending vacations, got %d", status.FeriasPendentes)
	}
	if status.UltimaAtualizacao != agora.Format(time.RFC3339) {
		t.Fatalf("unexpected generation stamp %s", status.UltimaAtualizacao)
	}

	wantCutoff := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !pontos.gotCutoff.Equal(wantCutoff) {
		t.Fatalf("expected midnight cutoff %s, got %s", wantCutoff, pontos.gotCutoff)
	}

	if len(status.LogsRecentes) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(status.LogsRecentes))
	}
	if status.LogsRecentes[0] != "ENTRADA;"+agora.Add(-time.Hour).Format(time.RFC3339)+";https://storage/foto1.jpg" {
		t.Fatalf("unexpected log line %q", status.LogsRecentes[0])
	}
	if !strings.HasSuffix(status.LogsRecentes[1], ";-") {
		t.Fatalf("expected dash for missing photo, got %q", status.LogsRecentes[1])
	}

	if len(status.FotosRecentes) != 1 || status.FotosRecentes[0] != "https://storage/foto1.jpg" {
		t.Fatalf("unexpected recent photos %v", status.FotosRecentes)
	}
}

func TestStatusCapsRecentPhotos(t *testing.T) {
	agora := time.Now()
	var recentes []ponto.Registro
	for i := 0; i < 8; i++ {
		recentes = append(recentes, registroAt(enums.PontoEntrada, agora, strPtr("https://storage/f.jpg")))
	}
	pontos := &stubPontoLedger{recentes: recentes}
	svc := newTestService(t, pontos, agora)

	status, err := svc.Status(context.Background())
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if len(status.FotosRecentes) != 5 {
		t.Fatalf("expected photo list capped at 5, got %d", len(status.FotosRecentes))
	}
	if len(status.LogsRecentes) != 8 {
		t.Fatalf("expected all 8 log lines, got %d", len(status.LogsRecentes))
	}
}

func TestStatusWrapsDependencyError(t *testing.T) {
	pontos := &stubPontoLedger{recentesErr: errors.New("db down")}
	svc := newTestService(t, pontos, time.Now())

	_, err := svc.Status(context.Background())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestExportarHeaderAndLayout(t *testing.T) {
	agora := time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC)
	pontos := &stubPontoLedger{
		countSince: 1,
		recentes: []ponto.Registro{
			registroAt(enums.PontoEntrada, agora.Add(-time.Hour), nil),
		},
	}
	svc := newTestService(t, pontos, agora)

	report, err := svc.Exportar(context.Background())
	if err != nil {
		t.Fatalf("Exportar: %v", err)
	}

	lines := strings.Split(report, "\n")
	if lines[0] != "Relatório Administrativo - Ponto Digital" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "" {
		t.Fatalf("expected blank second line, got %q", lines[1])
	}
	if !strings.Contains(report, "Funcionários ativos;7") {
		t.Fatalf("missing active count: %q", report)
	}
	if !strings.Contains(report, "ENTRADA;"+agora.Add(-time.Hour).Format(time.RFC3339)+";-") {
		t.Fatalf("missing log line: %q", report)
	}
}

func TestExportarEmptyLedger(t *testing.T) {
	svc := newTestService(t, &stubPontoLedger{}, time.Now())

	report, err := svc.Exportar(context.Background())
	if err != nil {
		t.Fatalf("Exportar: %v", err)
	}
	if !strings.HasPrefix(report, "Relatório Administrativo - Ponto Digital\n\n") {
		t.Fatalf("header contract broken: %q", report)
	}
}
