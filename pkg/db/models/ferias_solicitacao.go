package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pontodigital/ponto-backend/pkg/enums"
	"gorm.io/gorm"
)

// FeriasSolicitacao is a vacation request. Requests are created PENDING;
// the approval workflow lives outside this service today.
type FeriasSolicitacao struct {
	ID            uuid.UUID          `gorm:"type:uuid;primaryKey"`
	FuncionarioID uuid.UUID          `gorm:"column:funcionario_id;type:uuid;index;not null"`
	Tipo          enums.FeriasTipo   `gorm:"type:text;not null"`
	DataInicio    time.Time          `gorm:"column:data_inicio;not null"`
	DataFim       time.Time          `gorm:"column:data_fim;not null"`
	Dias          int                `gorm:"column:dias;not null"`
	Status        enums.FeriasStatus `gorm:"type:text;not null;default:'PENDING'"`
	CreatedAt     time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (FeriasSolicitacao) TableName() string {
	return "ferias_solicitacoes"
}

func (f *FeriasSolicitacao) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
