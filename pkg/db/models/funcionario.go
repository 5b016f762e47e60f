package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pontodigital/ponto-backend/pkg/enums"
	"gorm.io/gorm"
)

// Funcionario is the canonical employee record. CPF and telefone are stored
// as ciphertext; SenhaHash never leaves the persistence layer.
type Funcionario struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Nome            string          `gorm:"type:text;not null"`
	Email           string          `gorm:"type:text;not null;uniqueIndex"`
	SenhaHash       string          `gorm:"column:senha_hash;not null"`
	CPFCifrado      string          `gorm:"column:cpf_cifrado;not null"`
	TelefoneCifrado string          `gorm:"column:telefone_cifrado"`
	Categoria       enums.Categoria `gorm:"type:text;not null"`
	Turno           *enums.Turno    `gorm:"type:text"`
	DataAdmissao    time.Time       `gorm:"column:data_admissao;not null"`

	HistoricoFerias    bool              `gorm:"column:historico_ferias;not null;default:false"`
	UltimaFeriasTipo   *enums.FeriasTipo `gorm:"column:ultima_ferias_tipo;type:text"`
	UltimaFeriasInicio *time.Time        `gorm:"column:ultima_ferias_inicio"`
	UltimaFeriasFim    *time.Time        `gorm:"column:ultima_ferias_fim"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Funcionario) TableName() string {
	return "funcionarios"
}

// BeforeCreate assigns the identifier so inserts behave the same on postgres
// and the sqlite test driver.
func (f *Funcionario) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
