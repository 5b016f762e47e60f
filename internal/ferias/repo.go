package ferias

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pontodigital/ponto-backend/pkg/db/models"
	"github.com/pontodigital/ponto-backend/pkg/enums"
)

// Repository persists vacation requests and the per-employee last-vacation
// snapshot kept on the funcionarios row.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a ferias repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindFuncionario loads the employee row the eligibility math runs against.
func (r *Repository) FindFuncionario(ctx context.Context, id uuid.UUID) (*models.Funcionario, error) {
	var f models.Funcionario
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// CreateSolicitacao stores the request and stamps the employee's
// last-vacation snapshot in the same transaction.
func (r *Repository) CreateSolicitacao(ctx context.Context, sol *models.FeriasSolicitacao) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sol).Error; err != nil {
			return err
		}
		return tx.Model(&models.Funcionario{}).
			Where("id = ?", sol.FuncionarioID).
			Updates(map[string]any{
				"historico_ferias":     true,
				"ultima_ferias_tipo":   sol.Tipo,
				"ultima_ferias_inicio": sol.DataInicio,
				"ultima_ferias_fim":    sol.DataFim,
			}).Error
	})
}

// CountPendentes counts requests still awaiting review.
func (r *Repository) CountPendentes(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.FeriasSolicitacao{}).
		Where("status = ?", enums.FeriasPendente).
		Count(&count).Error
	return count, err
}
