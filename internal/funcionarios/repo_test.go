package funcionarios

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pontodigital/ponto-backend/pkg/db/models"
	"github.com/pontodigital/ponto-backend/pkg/enums"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.Funcionario{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func seedFuncionario(t *testing.T, repo *Repository, nome, email string) *models.Funcionario {
	t.Helper()
	turno := enums.TurnoManha
	f := &models.Funcionario{
		Nome:            nome,
		Email:           email,
		SenhaHash:       "hash",
		CPFCifrado:      "aa:bb",
		TelefoneCifrado: "cc:dd",
		Categoria:       enums.CategoriaVendedor,
		Turno:           &turno,
		DataAdmissao:    time.Now().Add(-400 * 24 * time.Hour),
	}
	if err := repo.Create(context.Background(), f); err != nil {
		t.Fatalf("seed funcionario: %v", err)
	}
	return f
}

func TestRepositoryCreateAndFind(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	created := seedFuncionario(t, repo, "Maria", "maria@empresa.com")
	if created.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}

	byEmail, err := repo.FindByEmail(ctx, "maria@empresa.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if byEmail.ID != created.ID {
		t.Fatalf("expected id %s got %s", created.ID, byEmail.ID)
	}

	byID, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if byID.Nome != "Maria" {
		t.Fatalf("unexpected nome %s", byID.Nome)
	}
}

func TestRepositoryDuplicateEmail(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	seedFuncionario(t, repo, "Maria", "dup@empresa.com")

	turno := enums.TurnoTarde
	err := repo.Create(context.Background(), &models.Funcionario{
		Nome:         "Outra",
		Email:        "dup@empresa.com",
		SenhaHash:    "hash",
		CPFCifrado:   "aa:bb",
		Categoria:    enums.CategoriaVendedor,
		Turno:        &turno,
		DataAdmissao: time.Now(),
	})
	if err == nil {
		t.Fatal("expected unique violation")
	}
}

func TestRepositoryListOrdersByName(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	seedFuncionario(t, repo, "Zara", "zara@empresa.com")
	seedFuncionario(t, repo, "Ana", "ana@empresa.com")

	records, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records got %d", len(records))
	}
	if records[0].Nome != "Ana" {
		t.Fatalf("expected Ana first got %s", records[0].Nome)
	}
}

func TestRepositoryDelete(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	created := seedFuncionario(t, repo, "Maria", "maria@empresa.com")
	ctx := context.Background()

	found, err := repo.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !found {
		t.Fatal("expected delete to report an affected row")
	}

	found, err = repo.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if found {
		t.Fatal("expected no row on second delete")
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty table got %d", count)
	}
}

func TestRepositorySaveUpdatesFields(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	created := seedFuncionario(t, repo, "Maria", "maria@empresa.com")
	ctx := context.Background()

	created.Nome = "Maria Silva"
	created.CPFCifrado = "ee:ff"
	if err := repo.Save(ctx, created); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if loaded.Nome != "Maria Silva" || loaded.CPFCifrado != "ee:ff" {
		t.Fatalf("update not persisted: %+v", loaded)
	}
}
