package funcionarios

import (
	"time"

	"github.com/google/uuid"

	"github.com/pontodigital/ponto-backend/pkg/db/models"
	"github.com/pontodigital/ponto-backend/pkg/enums"
)

// Resumo is the listing projection. PII stays encrypted at rest and the hash
// never leaves the repository, so neither appears here.
type Resumo struct {
	ID           uuid.UUID `json:"id"`
	Nome         string    `json:"nome"`
	Email        string    `json:"email"`
	Categoria    string    `json:"categoria"`
	Turno        string    `json:"turno"`
	DataAdmissao time.Time `json:"dataAdmissao"`
}

// Detalhe is the single-record projection with cpf and telefone readable.
type Detalhe struct {
	Resumo
	CPF      string `json:"cpf"`
	Telefone string `json:"telefone"`
}

// CreateInput carries the fields accepted by the registration form.
type CreateInput struct {
	Nome         string
	Email        string
	CPF          string
	Telefone     string
	Categoria    string
	Turno        string
	DataAdmissao *time.Time
}

// UpdateInput carries the optional fields of a partial update. Nil pointers
// leave the stored value untouched.
type UpdateInput struct {
	Nome      *string
	Email     *string
	CPF       *string
	Telefone  *string
	Categoria *string
	Turno     *string
	Senha     *string
}

func toResumo(f *models.Funcionario) Resumo {
	turno := ""
	if f.Turno != nil {
		turno = string(*f.Turno)
	}
	return Resumo{
		ID:           f.ID,
		Nome:         f.Nome,
		Email:        f.Email,
		Categoria:    string(f.Categoria),
		Turno:        turno,
		DataAdmissao: f.DataAdmissao,
	}
}

func turnoPointer(value string) *enums.Turno {
	if value == "" {
		return nil
	}
	t := enums.Turno(value)
	return &t
}
