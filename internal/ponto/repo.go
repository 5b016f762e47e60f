package ponto

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pontodigital/ponto-backend/pkg/db/models"
)

// Repository exposes attendance ledger persistence. The ledger is append-only,
// there are no update or delete operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a ponto repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create appends an attendance event. The database assigns the timestamp.
func (r *Repository) Create(ctx context.Context, registro *models.PontoRegistro) error {
	return r.db.WithContext(ctx).Create(registro).Error
}

// Recentes returns the newest events first, joined with the employee name.
func (r *Repository) Recentes(ctx context.Context, limit int) ([]Registro, error) {
	var out []Registro
	err := r.db.WithContext(ctx).
		Table("ponto_registros").
		Select("ponto_registros.id, ponto_registros.funcionario_id, funcionarios.nome, ponto_registros.tipo, ponto_registros.foto_url, ponto_registros.created_at").
		Joins("LEFT JOIN funcionarios ON funcionarios.id = ponto_registros.funcionario_id").
		Order("ponto_registros.created_at desc").
		Limit(limit).
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CountSince counts events stamped at or after the cutoff.
func (r *Repository) CountSince(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.PontoRegistro{}).
		Where("created_at >= ?", cutoff).
		Count(&count).Error
	return count, err
}
