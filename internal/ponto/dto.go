package ponto

import (
	"time"

	"github.com/google/uuid"
)

// Registro is the attendance event projection used by handlers and reporting.
type Registro struct {
	ID            uuid.UUID `json:"id"`
	FuncionarioID uuid.UUID `json:"funcionarioId"`
	Nome          string    `json:"nome"`
	Tipo          string    `json:"tipo"`
	FotoURL       *string   `json:"fotoUrl,omitempty"`
	CreatedAt     time.Time `json:"criadoEm"`
}
