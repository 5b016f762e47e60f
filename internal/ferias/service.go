package ferias

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pontodigital/ponto-backend/pkg/db/models"
	pkgerrors "github.com/pontodigital/ponto-backend/pkg/errors"
	"github.com/pontodigital/ponto-backend/pkg/enums"
)

type repository interface {
	FindFuncionario(ctx context.Context, id uuid.UUID) (*models.Funcionario, error)
	CreateSolicitacao(ctx context.Context, sol *models.FeriasSolicitacao) error
}

// Service exposes vacation eligibility and request operations.
type Service interface {
	Info(ctx context.Context, funcionarioID uuid.UUID) (*InfoResponse, error)
	Solicitar(ctx context.Context, funcionarioID uuid.UUID, req SolicitarRequest) (*SolicitarResponse, error)
	Ultimas(ctx context.Context, funcionarioID uuid.UUID) (*UltimasResponse, error)
}

type service struct {
	repo repository
	now  func() time.Time
}

// ServiceParams bundles the dependencies required to build a ferias service.
type ServiceParams struct {
	Repo repository

	// Now overrides the clock in tests. Defaults to time.Now.
	Now func() time.Time
}

// NewService constructs a vacation service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("ferias repository is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{repo: params.Repo, now: now}, nil
}

func (s *service) loadFuncionario(ctx context.Context, id uuid.UUID) (*models.Funcionario, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "token inválido")
	}
	f, err := s.repo.FindFuncionario(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "funcionário não encontrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find funcionario")
	}
	return f, nil
}

// Info runs the acquisition-cycle arithmetic against the employee's
// admission date.
func (s *service) Info(ctx context.Context, funcionarioID uuid.UUID) (*InfoResponse, error) {
	f, err := s.loadFuncionario(ctx, funcionarioID)
	if err != nil {
		return nil, err
	}

	e := Calcular(f.DataAdmissao, s.now())
	return &InfoResponse{
		StatusFerias:          e.Mensagem(),
		ProximaDataAquisitiva: formatDate(e.ProximaAquisitiva),
		DiasTrabalhados:       e.DiasTrabalhados,
		DiasParaProxima:       e.DiasParaProxima,
		DiasVencidos:          e.DiasVencidos,
	}, nil
}

// Solicitar records a vacation request. The window always starts today, no
// future scheduling. Requests land as PENDING and are never auto-approved.
func (s *service) Solicitar(ctx context.Context, funcionarioID uuid.UUID, req SolicitarRequest) (*SolicitarResponse, error) {
	tipo, err := enums.ParseFeriasTipo(req.Tipo)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tipo de férias inválido")
	}

	f, err := s.loadFuncionario(ctx, funcionarioID)
	if err != nil {
		return nil, err
	}

	inicio := s.now()
	fim := inicio.Add(time.Duration(tipo.Dias()) * 24 * time.Hour)

	sol := &models.FeriasSolicitacao{
		FuncionarioID: f.ID,
		Tipo:          tipo,
		DataInicio:    inicio,
		DataFim:       fim,
		Dias:          tipo.Dias(),
		Status:        enums.FeriasPendente,
	}
	if err := s.repo.CreateSolicitacao(ctx, sol); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create solicitacao")
	}

	return &SolicitarResponse{
		OK:         true,
		DataInicio: formatDate(inicio),
		DataFim:    formatDate(fim),
	}, nil
}

// Ultimas returns the employee's most recent vacation, nil when they have no
// history yet.
func (s *service) Ultimas(ctx context.Context, funcionarioID uuid.UUID) (*UltimasResponse, error) {
	f, err := s.loadFuncionario(ctx, funcionarioID)
	if err != nil {
		return nil, err
	}

	if !f.HistoricoFerias || f.UltimaFeriasTipo == nil || f.UltimaFeriasInicio == nil || f.UltimaFeriasFim == nil {
		return &UltimasResponse{UltimaFerias: nil}, nil
	}

	return &UltimasResponse{UltimaFerias: &UltimaFerias{
		Tipo:   string(*f.UltimaFeriasTipo),
		Inicio: formatDate(*f.UltimaFeriasInicio),
		Fim:    formatDate(*f.UltimaFeriasFim),
	}}, nil
}
