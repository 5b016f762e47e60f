package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pontodigital/ponto-backend/api/responses"
	"github.com/pontodigital/ponto-backend/api/validators"
	"github.com/pontodigital/ponto-backend/internal/funcionarios"
	pkgerrors "github.com/pontodigital/ponto-backend/pkg/errors"
	"github.com/pontodigital/ponto-backend/pkg/logger"
)

type criarFuncionarioRequest struct {
	Nome         string  `json:"nome" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	CPF          string  `json:"cpf" validate:"required"`
	Telefone     string  `json:"telefone" validate:"required"`
	Categoria    string  `json:"categoria" validate:"required"`
	Turno        string  `json:"turno"`
	DataAdmissao *string `json:"dataAdmissao"`
}

type atualizarFuncionarioRequest struct {
	Nome      *string `json:"nome"`
	Email     *string `json:"email" validate:"omitempty,email"`
	CPF       *string `json:"cpf"`
	Telefone  *string `json:"telefone"`
	Categoria *string `json:"categoria"`
	Turno     *string `json:"turno"`
	Senha     *string `json:"senha"`
}

func funcionarioIDFromPath(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeNotFound, "funcionário não encontrado")
	}
	return id, nil
}

// AdminListarFuncionarios returns the directory as a bare array, the shape
// the dashboard iterates directly.
func AdminListarFuncionarios(svc funcionarios.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "funcionarios service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.Listar(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteOK(w, list)
	}
}

// AdminObterFuncionario returns one employee with PII readable.
func AdminObterFuncionario(svc funcionarios.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "funcionarios service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := funcionarioIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		detalhe, err := svc.Obter(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteOK(w, detalhe)
	}
}

// AdminCriarFuncionario registers an employee and hands back the generated
// initial password exactly once.
func AdminCriarFuncionario(svc funcionarios.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "funcionarios service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body criarFuncionarioRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := funcionarios.CreateInput{
			Nome:      body.Nome,
			Email:     body.Email,
			CPF:       body.CPF,
			Telefone:  body.Telefone,
			Categoria: body.Categoria,
			Turno:     body.Turno,
		}
		if body.DataAdmissao != nil {
			admissao, err := time.Parse("2006-01-02", *body.DataAdmissao)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "dataAdmissao inválida"))
				return
			}
			input.DataAdmissao = &admissao
		}

		senha, err := svc.Criar(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteOK(w, map[string]any{"ok": true, "senhaGerada": senha})
	}
}

// AdminAtualizarFuncionario applies a partial update.
func AdminAtualizarFuncionario(svc funcionarios.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "funcionarios service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := funcionarioIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body atualizarFuncionarioRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := funcionarios.UpdateInput{
			Nome:      body.Nome,
			Email:     body.Email,
			CPF:       body.CPF,
			Telefone:  body.Telefone,
			Categoria: body.Categoria,
			Turno:     body.Turno,
			Senha:     body.Senha,
		}
		if err := svc.Atualizar(r.Context(), id, input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteOK(w, map[string]any{"ok": true})
	}
}

// AdminExcluirFuncionario removes an employee. Deleting an unknown id
// answers 404, never a crash.
func AdminExcluirFuncionario(svc funcionarios.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "funcionarios service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := funcionarioIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Excluir(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteOK(w, map[string]any{"ok": true})
	}
}
