package ferias

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pontodigital/ponto-backend/pkg/db/models"
	pkgerrors "github.com/pontodigital/ponto-backend/pkg/errors"
	"github.com/pontodigital/ponto-backend/pkg/enums"
)

type stubFeriasRepo struct {
	funcionario *models.Funcionario
	findErr     error
	createErr   error
	created     *models.FeriasSolicitacao
}

func (s *stubFeriasRepo) FindFuncionario(_ context.Context, _ uuid.UUID) (*models.Funcionario, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.funcionario, nil
}

func (s *stubFeriasRepo) CreateSolicitacao(_ context.Context, sol *models.FeriasSolicitacao) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = sol
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewServiceRequiresRepo(t *testing.T) {
	if _, err := NewService(ServiceParams{}); err == nil {
		t.Fatal("expected error without repo")
	}
}

func TestInfoOverdue(t *testing.T) {
	agora := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubFeriasRepo{funcionario: &models.Funcionario{
		ID:           uuid.New(),
		DataAdmissao: agora.Add(-400 * 24 * time.Hour),
	}}
	svc, err := NewService(ServiceParams{Repo: repo, Now: fixedClock(agora)})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	info, err := svc.Info(context.Background(), repo.funcionario.ID)
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if !strings.HasPrefix(info.StatusFerias, "⚠️") {
		t.Fatalf("expected alert prefix, got %q", info.StatusFerias)
	}
	if info.DiasVencidos != 35 {
		t.Fatalf("expected 35 overdue days, got %d", info.DiasVencidos)
	}
	if info.DiasTrabalhados != 400 {
		t.Fatalf("expected 400 days worked, got %d", info.DiasTrabalhados)
	}
}

func TestInfoOK(t *testing.T) {
	agora := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubFeriasRepo{funcionario: &models.Funcionario{
		ID:           uuid.New(),
		DataAdmissao: agora.Add(-10 * 24 * time.Hour),
	}}
	svc, _ := NewService(ServiceParams{Repo: repo, Now: fixedClock(agora)})

	info, err := svc.Info(context.Background(), repo.funcionario.ID)
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if strings.HasPrefix(info.StatusFerias, "⚠️") {
		t.Fatalf("expected no alert, got %q", info.StatusFerias)
	}
	wantProxima := agora.Add(355 * 24 * time.Hour).Format("2006-01-02")
	if info.ProximaDataAquisitiva != wantProxima {
		t.Fatalf("expected next window %s, got %s", wantProxima, info.ProximaDataAquisitiva)
	}
}

func TestInfoRejectsNilUser(t *testing.T) {
	svc, _ := NewService(ServiceParams{Repo: &stubFeriasRepo{}})

	_, err := svc.Info(context.Background(), uuid.Nil)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestInfoUnknownFuncionario(t *testing.T) {
	repo := &stubFeriasRepo{findErr: gorm.ErrRecordNotFound}
	svc, _ := NewService(ServiceParams{Repo: repo})

	_, err := svc.Info(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSolicitarFull30(t *testing.T) {
	agora := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubFeriasRepo{funcionario: &models.Funcionario{
		ID:           uuid.New(),
		DataAdmissao: agora.Add(-800 * 24 * time.Hour),
	}}
	svc, _ := NewService(ServiceParams{Repo: repo, Now: fixedClock(agora)})

	resp, err := svc.Solicitar(context.Background(), repo.funcionario.ID, SolicitarRequest{Tipo: "FULL_30"})
	if err != nil {
		t.Fatalf("Solicitar: %v", err)
	}
	if !resp.OK {
		t.Fatal("expected ok response")
	}
	if resp.DataInicio != "2026-03-01" {
		t.Fatalf("expected start today, got %s", resp.DataInicio)
	}
	if resp.DataFim != "2026-03-31" {
		t.Fatalf("expected end 30 days out, got %s", resp.DataFim)
	}

	if repo.created == nil {
		t.Fatal("expected a stored request")
	}
	if repo.created.Status != enums.FeriasPendente {
		t.Fatalf("expected PENDING, got %s", repo.created.Status)
	}
	if repo.created.Dias != 30 {
		t.Fatalf("expected 30 days, got %d", repo.created.Dias)
	}
}

func TestSolicitarSplit15(t *testing.T) {
	agora := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubFeriasRepo{funcionario: &models.Funcionario{
		ID:           uuid.New(),
		DataAdmissao: agora.Add(-800 * 24 * time.Hour),
	}}
	svc, _ := NewService(ServiceParams{Repo: repo, Now: fixedClock(agora)})

	resp, err := svc.Solicitar(context.Background(), repo.funcionario.ID, SolicitarRequest{Tipo: "SPLIT_15"})
	if err != nil {
		t.Fatalf("Solicitar: %v", err)
	}
	if resp.DataFim != "2026-03-16" {
		t.Fatalf("expected end 15 days out, got %s", resp.DataFim)
	}
	if repo.created.Tipo != enums.FeriasFracionada {
		t.Fatalf("expected SPLIT_15, got %s", repo.created.Tipo)
	}
}

func TestSolicitarRejectsInvalidTipo(t *testing.T) {
	svc, _ := NewService(ServiceParams{Repo: &stubFeriasRepo{}})

	_, err := svc.Solicitar(context.Background(), uuid.New(), SolicitarRequest{Tipo: "HALF_7"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSolicitarWrapsRepoError(t *testing.T) {
	repo := &stubFeriasRepo{
		funcionario: &models.Funcionario{ID: uuid.New()},
		createErr:   errors.New("db down"),
	}
	svc, _ := NewService(ServiceParams{Repo: repo})

	_, err := svc.Solicitar(context.Background(), repo.funcionario.ID, SolicitarRequest{Tipo: "FULL_30"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestUltimasWithoutHistory(t *testing.T) {
	repo := &stubFeriasRepo{funcionario: &models.Funcionario{ID: uuid.New()}}
	svc, _ := NewService(ServiceParams{Repo: repo})

	resp, err := svc.Ultimas(context.Background(), repo.funcionario.ID)
	if err != nil {
		t.Fatalf("Ultimas: %v", err)
	}
	if resp.UltimaFerias != nil {
		t.Fatalf("expected nil history, got %+v", resp.UltimaFerias)
	}
}

func TestUltimasWithHistory(t *testing.T) {
	tipo := enums.FeriasIntegral
	inicio := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	fim := inicio.Add(30 * 24 * time.Hour)
	repo := &stubFeriasRepo{funcionario: &models.Funcionario{
		ID:                 uuid.New(),
		HistoricoFerias:    true,
		UltimaFeriasTipo:   &tipo,
		UltimaFeriasInicio: &inicio,
		UltimaFeriasFim:    &fim,
	}}
	svc, _ := NewService(ServiceParams{Repo: repo})

	resp, err := svc.Ultimas(context.Background(), repo.funcionario.ID)
	if err != nil {
		t.Fatalf("Ultimas: %v", err)
	}
	if resp.UltimaFerias == nil {
		t.Fatal("expected history")
	}
	if resp.UltimaFerias.Tipo != "FULL_30" {
		t.Fatalf("expected FULL_30, got %s", resp.UltimaFerias.Tipo)
	}
	if resp.UltimaFerias.Inicio != "2025-07-01" {
		t.Fatalf("expected inicio 2025-07-01, got %s", resp.UltimaFerias.Inicio)
	}
}
