package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pontodigital/ponto-backend/pkg/enums"
)

func setupModelsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Funcionario{}, &PontoRegistro{}, &FeriasSolicitacao{}))
	return db
}

func TestFuncionarioAssignsIDOnCreate(t *testing.T) {
	db := setupModelsTestDB(t)

	f := &Funcionario{
		Nome:         "Maria",
		Email:        "maria@empresa.com",
		SenhaHash:    "hash",
		CPFCifrado:   "aa:bb",
		Categoria:    enums.CategoriaRH,
		DataAdmissao: time.Now(),
	}
	require.NoError(t, db.Create(f).Error)
	assert.NotEqual(t, uuid.Nil, f.ID)

	var reloaded Funcionario
	require.NoError(t, db.First(&reloaded, "id = ?", f.ID).Error)
	assert.Equal(t, "maria@empresa.com", reloaded.Email)
	assert.False(t, reloaded.HistoricoFerias)
}

func TestPontoRegistroKeepsProvidedID(t *testing.T) {
	db := setupModelsTestDB(t)

	id := uuid.New()
	r := &PontoRegistro{
		ID:            id,
		FuncionarioID: uuid.New(),
		Tipo:          enums.PontoEntrada,
	}
	require.NoError(t, db.Create(r).Error)
	assert.Equal(t, id, r.ID)
	assert.False(t, r.CreatedAt.IsZero())
}

func TestFeriasSolicitacaoTableAndDefaults(t *testing.T) {
	db := setupModelsTestDB(t)

	assert.Equal(t, "ferias_solicitacoes", FeriasSolicitacao{}.TableName())

	s := &FeriasSolicitacao{
		FuncionarioID: uuid.New(),
		Tipo:          enums.FeriasIntegral,
		DataInicio:    time.Now(),
		DataFim:       time.Now().Add(30 * 24 * time.Hour),
		Dias:          30,
		Status:        enums.FeriasPendente,
	}
	require.NoError(t, db.Create(s).Error)
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, enums.FeriasPendente, s.Status)
}
