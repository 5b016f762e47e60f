package funcionarios

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pontodigital/ponto-backend/pkg/config"
	"github.com/pontodigital/ponto-backend/pkg/db"
	"github.com/pontodigital/ponto-backend/pkg/db/models"
	"github.com/pontodigital/ponto-backend/pkg/enums"
	pkgerrors "github.com/pontodigital/ponto-backend/pkg/errors"
	"github.com/pontodigital/ponto-backend/pkg/security"
)

type repository interface {
	Create(ctx context.Context, f *models.Funcionario) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Funcionario, error)
	List(ctx context.Context) ([]models.Funcionario, error)
	Save(ctx context.Context, f *models.Funcionario) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service exposes employee directory operations.
type Service interface {
	Criar(ctx context.Context, input CreateInput) (string, error)
	Atualizar(ctx context.Context, id uuid.UUID, input UpdateInput) error
	Excluir(ctx context.Context, id uuid.UUID) error
	Listar(ctx context.Context) ([]Resumo, error)
	Obter(ctx context.Context, id uuid.UUID) (*Detalhe, error)
}

type service struct {
	repo        repository
	cipher      *security.FieldCipher
	passwordCfg config.PasswordConfig
}

// NewService builds the directory service with the provided dependencies.
func NewService(repo repository, cipher *security.FieldCipher, passwordCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("funcionarios repository required")
	}
	if cipher == nil {
		return nil, fmt.Errorf("field cipher required")
	}
	return &service{repo: repo, cipher: cipher, passwordCfg: passwordCfg}, nil
}

// Criar registers an employee and returns the generated initial password.
func (s *service) Criar(ctx context.Context, input CreateInput) (string, error) {
	categoria, turno, err := resolveCategoria(input.Categoria, input.Turno)
	if err != nil {
		return "", err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Nome == "" || input.CPF == "" || input.Telefone == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "dados obrigatórios ausentes")
	}

	senha, err := security.InitialPassword(input.CPF)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "cpf inválido")
	}
	hash, err := security.HashPassword(senha, s.passwordCfg)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	cpfCifrado, err := s.cipher.Encrypt(input.CPF)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encrypt cpf")
	}
	telefoneCifrado, err := s.cipher.Encrypt(input.Telefone)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encrypt telefone")
	}

	admissao := time.Now()
	if input.DataAdmissao != nil {
		admissao = *input.DataAdmissao
	}

	f := &models.Funcionario{
		Nome:            strings.TrimSpace(input.Nome),
		Email:           email,
		SenhaHash:       hash,
		CPFCifrado:      cpfCifrado,
		TelefoneCifrado: telefoneCifrado,
		Categoria:       categoria,
		Turno:           turno,
		DataAdmissao:    admissao,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		if db.IsUniqueViolation(err, "") {
			return "", pkgerrors.Wrap(pkgerrors.CodeConflict, err, "email já cadastrado")
		}
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create funcionario")
	}

	return senha, nil
}

// Atualizar applies a partial update, re-encrypting PII and re-hashing the
// password only when those fields were supplied.
func (s *service) Atualizar(ctx context.Context, id uuid.UUID, input UpdateInput) error {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "funcionário não encontrado")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load funcionario")
	}

	if input.Nome != nil {
		f.Nome = strings.TrimSpace(*input.Nome)
	}
	if input.Email != nil {
		f.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Categoria != nil {
		turnoValue := ""
		if input.Turno != nil {
			turnoValue = *input.Turno
		} else if f.Turno != nil {
			turnoValue = string(*f.Turno)
		}
		categoria, turno, err := resolveCategoria(*input.Categoria, turnoValue)
		if err != nil {
			return err
		}
		f.Categoria = categoria
		f.Turno = turno
	} else if input.Turno != nil {
		if !f.Categoria.RequiresTurno() {
			return pkgerrors.New(pkgerrors.CodeValidation, "turno só se aplica a vendedores")
		}
		turno := enums.Turno(*input.Turno)
		if !turno.IsValid() {
			return pkgerrors.New(pkgerrors.CodeValidation, "turno inválido")
		}
		f.Turno = &turno
	}

	if input.CPF != nil {
		cifrado, err := s.cipher.Encrypt(*input.CPF)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encrypt cpf")
		}
		f.CPFCifrado = cifrado
	}
	if input.Telefone != nil {
		cifrado, err := s.cipher.Encrypt(*input.Telefone)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encrypt telefone")
		}
		f.TelefoneCifrado = cifrado
	}
	if input.Senha != nil {
		hash, err := security.HashPassword(*input.Senha, s.passwordCfg)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
		}
		f.SenhaHash = hash
	}

	if err := s.repo.Save(ctx, f); err != nil {
		if db.IsUniqueViolation(err, "") {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "email já cadastrado")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save funcionario")
	}
	return nil
}

// Excluir removes the employee permanently.
func (s *service) Excluir(ctx context.Context, id uuid.UUID) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete funcionario")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "funcionário não encontrado")
	}
	return nil
}

// Listar returns the directory projection without touching encrypted PII.
func (s *service) Listar(ctx context.Context) ([]Resumo, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list funcionarios")
	}
	out := make([]Resumo, 0, len(records))
	for i := range records {
		out = append(out, toResumo(&records[i]))
	}
	return out, nil
}

// Obter returns a single record with cpf/telefone readable. A value that
// cannot be decrypted is returned exactly as stored.
func (s *service) Obter(ctx context.Context, id uuid.UUID) (*Detalhe, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "funcionário não encontrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load funcionario")
	}
	return &Detalhe{
		Resumo:   toResumo(f),
		CPF:      s.cipher.DecryptOrRaw(f.CPFCifrado),
		Telefone: s.cipher.DecryptOrRaw(f.TelefoneCifrado),
	}, nil
}

func resolveCategoria(categoriaValue, turnoValue string) (enums.Categoria, *enums.Turno, error) {
	categoria, err := enums.ParseCategoria(categoriaValue)
	if err != nil {
		return "", nil, pkgerrors.New(pkgerrors.CodeValidation, "categoria inválida")
	}

	if !categoria.RequiresTurno() {
		return categoria, nil, nil
	}
	if turnoValue == "" {
		return "", nil, pkgerrors.New(pkgerrors.CodeValidation, "turno obrigatório para vendedores")
	}
	turno := enums.Turno(turnoValue)
	if !turno.IsValid() {
		return "", nil, pkgerrors.New(pkgerrors.CodeValidation, "turno inválido")
	}
	return categoria, turnoPointer(turnoValue), nil
}
