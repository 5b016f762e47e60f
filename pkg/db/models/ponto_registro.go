package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pontodigital/ponto-backend/pkg/enums"
	"gorm.io/gorm"
)

// PontoRegistro is a single clock-in or clock-out event. Rows are append-only
// and never updated, so there is no UpdatedAt column.
type PontoRegistro struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FuncionarioID uuid.UUID       `gorm:"column:funcionario_id;type:uuid;index;not null"`
	Tipo          enums.PontoTipo `gorm:"type:text;not null"`
	FotoURL       *string         `gorm:"column:foto_url"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime;index"`
}

func (PontoRegistro) TableName() string {
	return "ponto_registros"
}

func (p *PontoRegistro) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
