package funcionarios

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pontodigital/ponto-backend/pkg/db/models"
)

// Repository exposes employee persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a funcionarios repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new employee record.
func (r *Repository) Create(ctx context.Context, f *models.Funcionario) error {
	return r.db.WithContext(ctx).Create(f).Error
}

// FindByEmail retrieves the employee matching the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Funcionario, error) {
	var f models.Funcionario
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// FindByID loads an employee by their UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Funcionario, error) {
	var f models.Funcionario
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// List returns every employee ordered by name.
func (r *Repository) List(ctx context.Context) ([]models.Funcionario, error) {
	var out []models.Funcionario
	if err := r.db.WithContext(ctx).Order("nome asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Save persists all fields of an already-loaded record.
func (r *Repository) Save(ctx context.Context, f *models.Funcionario) error {
	return r.db.WithContext(ctx).Save(f).Error
}

// Delete removes an employee and reports whether a row existed.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Funcionario{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Count returns the number of registered employees.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Funcionario{}).Count(&count).Error
	return count, err
}
