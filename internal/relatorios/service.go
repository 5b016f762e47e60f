package relatorios

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pontodigital/ponto-backend/internal/ponto"
	pkgerrors "github.com/pontodigital/ponto-backend/pkg/errors"
)

const (
	maxLogLines    = 10
	maxRecentFotos = 5

	exportHeader = "Relatório Administrativo - Ponto Digital"
)

type funcionarioCounter interface {
	Count(ctx context.Context) (int64, error)
}

type pontoLedger interface {
	Recentes(ctx context.Context, limit int) ([]ponto.Registro, error)
	CountSince(ctx context.Context, cutoff time.Time) (int64, error)
}

type feriasCounter interface {
	CountPendentes(ctx context.Context) (int64, error)
}

// Service aggregates dashboard counts and renders the flat export report.
type Service interface {
	Status(ctx context.Context) (*StatusResponse, error)
	Exportar(ctx context.Context) (string, error)
}

type service struct {
	funcionarios funcionarioCounter
	pontos       pontoLedger
	ferias       feriasCounter
	now          func() time.Time
}

// ServiceParams bundles the dependencies required to build the reporting
// service.
type ServiceParams struct {
	Funcionarios funcionarioCounter
	Pontos       pontoLedger
	Ferias       feriasCounter

	// Now overrides the clock in tests. Defaults to time.Now.
	Now func() time.Time
}

// NewService constructs a reporting service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Funcionarios == nil {
		return nil, fmt.Errorf("funcionario repository is required")
	}
	if params.Pontos == nil {
		return nil, fmt.Errorf("ponto repository is required")
	}
	if params.Ferias == nil {
		return nil, fmt.Errorf("ferias repository is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		funcionarios: params.Funcionarios,
		pontos:       params.Pontos,
		ferias:       params.Ferias,
		now:          now,
	}, nil
}

type summary struct {
	ativos    int64
	hoje      int64
	pendentes int64
	recentes  []ponto.Registro
	geradoEm  time.Time
}

func (s *service) collect(ctx context.Context) (*summary, error) {
	agora := s.now()
	meiaNoite := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())

	ativos, err := s.funcionarios.Count(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count funcionarios")
	}
	hoje, err := s.pontos.CountSince(ctx, meiaNoite)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count pontos hoje")
	}
	pendentes, err := s.ferias.CountPendentes(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count ferias pendentes")
	}
	recentes, err := s.pontos.Recentes(ctx, maxLogLines)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list pontos recentes")
	}

	return &summary{
		ativos:    ativos,
		hoje:      hoje,
		pendentes: pendentes,
		recentes:  recentes,
		geradoEm:  agora,
	}, nil
}

// logLine renders one ledger entry in the TIPO;timestamp;foto format shared
// by the dashboard and the export.
func logLine(r ponto.Registro) string {
	foto := "-"
	if r.FotoURL != nil && *r.FotoURL != "" {
		foto = *r.FotoURL
	}
	return fmt.Sprintf("%s;%s;%s", r.Tipo, r.CreatedAt.Format(time.RFC3339), foto)
}

// Status builds the aggregate dashboard payload.
func (s *service) Status(ctx context.Context) (*StatusResponse, error) {
	sum, err := s.collect(ctx)
	if err != nil {
		return nil, err
	}

	logs := make([]string, 0, len(sum.recentes))
	fotos := make([]string, 0, maxRecentFotos)
	for _, r := range sum.recentes {
		logs = append(logs, logLine(r))
		if r.FotoURL != nil && *r.FotoURL != "" && len(fotos) < maxRecentFotos {
			fotos = append(fotos, *r.FotoURL)
		}
	}

	return &StatusResponse{
		FuncionariosAtivos: sum.ativos,
		PontosHoje:         sum.hoje,
		FeriasPendentes:    sum.pendentes,
		UltimaAtualizacao:  sum.geradoEm.Format(time.RFC3339),
		LogsRecentes:       logs,
		FotosRecentes:      fotos,
	}, nil
}

// Exportar renders the flat administrative report served as a CSV download.
func (s *service) Exportar(ctx context.Context) (string, error) {
	sum, err := s.collect(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(exportHeader + "\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "Gerado em;%s\n", sum.geradoEm.Format(time.RFC3339))
	fmt.Fprintf(&b, "Funcionários ativos;%d\n", sum.ativos)
	fmt.Fprintf(&b, "Pontos hoje;%d\n", sum.hoje)
	fmt.Fprintf(&b, "Férias pendentes;%d\n", sum.pendentes)
	b.WriteString("\n")
	for _, r := range sum.recentes {
		b.WriteString(logLine(r) + "\n")
	}
	return b.String(), nil
}
