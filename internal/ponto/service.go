package ponto

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pontodigital/ponto-backend/pkg/db/models"
	pkgerrors "github.com/pontodigital/ponto-backend/pkg/errors"
	"github.com/pontodigital/ponto-backend/pkg/enums"
)

const maxRecentes = 50

type repository interface {
	Create(ctx context.Context, registro *models.PontoRegistro) error
	Recentes(ctx context.Context, limit int) ([]Registro, error)
}

// Service exposes attendance ledger operations.
type Service interface {
	Registrar(ctx context.Context, funcionarioID uuid.UUID, tipo string, fotoURL *string) error
	Recentes(ctx context.Context, limit int) ([]Registro, error)
}

type service struct {
	repo repository
}

// NewService builds the attendance service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("ponto repository required")
	}
	return &service{repo: repo}, nil
}

// Registrar appends a clock event. Events are never deduplicated and never
// sequenced: two consecutive entradas are both kept.
func (s *service) Registrar(ctx context.Context, funcionarioID uuid.UUID, tipo string, fotoURL *string) error {
	if funcionarioID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "token inválido")
	}
	parsed, err := enums.ParsePontoTipo(tipo)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "tipo de ponto inválido")
	}

	registro := &models.PontoRegistro{
		FuncionarioID: funcionarioID,
		Tipo:          parsed,
		FotoURL:       fotoURL,
	}
	if err := s.repo.Create(ctx, registro); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "append ponto")
	}
	return nil
}

// Recentes returns a finite most-recent-first snapshot.
func (s *service) Recentes(ctx context.Context, limit int) ([]Registro, error) {
	if limit <= 0 || limit > maxRecentes {
		limit = maxRecentes
	}
	records, err := s.repo.Recentes(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list pontos")
	}
	return records, nil
}
