package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/pontodigital/ponto-backend/internal/funcionarios"
	pkgAuth "github.com/pontodigital/ponto-backend/pkg/auth"
	"github.com/pontodigital/ponto-backend/pkg/config"
	"github.com/pontodigital/ponto-backend/pkg/db/models"
	pkgerrors "github.com/pontodigital/ponto-backend/pkg/errors"
	"github.com/pontodigital/ponto-backend/pkg/security"
)

// Service defines the behavior needed by the auth controller.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
}

type funcionarioRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Funcionario, error)
}

type service struct {
	repo   funcionarioRepository
	jwtCfg config.JWTConfig
	now    func() time.Time
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	Repo      funcionarioRepository
	JWTConfig config.JWTConfig
	Now       func() time.Time
}

// NewService constructs a login service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("funcionario repository is required")
	}
	if params.JWTConfig.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{repo: params.Repo, jwtCfg: params.JWTConfig, now: now}, nil
}

// Login authenticates credentials and mints a self-contained access token.
// An unknown email and a wrong password answer differently on purpose, the
// client surfaces the distinction to the user.
func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	f, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "usuário não encontrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find funcionario")
	}

	ok, err := security.VerifyPassword(req.Senha, f.SenhaHash)
	if err != nil || !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "senha incorreta")
	}

	token, err := pkgAuth.MintAccessToken(s.jwtCfg, s.now(), pkgAuth.AccessTokenPayload{
		UserID:    f.ID,
		Categoria: f.Categoria,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token")
	}

	turno := ""
	if f.Turno != nil {
		turno = string(*f.Turno)
	}

	return &LoginResponse{
		Token: token,
		Usuario: funcionarios.Resumo{
			ID:           f.ID,
			Nome:         f.Nome,
			Email:        f.Email,
			Categoria:    string(f.Categoria),
			Turno:        turno,
			DataAdmissao: f.DataAdmissao,
		},
	}, nil
}
