package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/pontodigital/ponto-backend/pkg/config"
	pkgerrors "github.com/pontodigital/ponto-backend/pkg/errors"
	"github.com/pontodigital/ponto-backend/pkg/storage/gcs"
)

type objectStore interface {
	UploadObject(ctx context.Context, bucket, object, contentType string, body io.Reader) (string, error)
	ListObjects(ctx context.Context, bucket, prefix string) ([]gcs.ObjectInfo, error)
}

// UploadedFile is one part of a multipart document upload.
type UploadedFile struct {
	Field       string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Service stores JSON backups and per-person document uploads in object
// storage.
type Service interface {
	BackupJSON(ctx context.Context, doc json.RawMessage) (*BackupResponse, error)
	UltimoBackup(ctx context.Context) (*UltimoBackup, error)
	Upload(ctx context.Context, nomePessoa string, files []UploadedFile) (map[string]UploadResult, error)
}

type service struct {
	store      objectStore
	storageCfg config.StorageConfig
	now        func() time.Time
}

// ServiceParams bundles the dependencies required to build a backup service.
type ServiceParams struct {
	Store      objectStore
	StorageCfg config.StorageConfig

	// Now overrides the clock in tests. Defaults to time.Now.
	Now func() time.Time
}

// NewService constructs a backup service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("object store is required")
	}
	if params.StorageCfg.BucketName == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{store: params.Store, storageCfg: params.StorageCfg, now: now}, nil
}

// BackupJSON stores the posted document verbatim under a millisecond-stamped
// object name.
func (s *service) BackupJSON(ctx context.Context, doc json.RawMessage) (*BackupResponse, error) {
	if len(doc) == 0 || !json.Valid(doc) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "documento JSON inválido")
	}

	object := fmt.Sprintf("%s/backup-%d.json", s.storageCfg.BackupPrefix, s.now().UnixMilli())
	url, err := s.store.UploadObject(ctx, s.storageCfg.BucketName, object, "application/json", bytes.NewReader(doc))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upload backup")
	}

	return &BackupResponse{Message: "backup salvo com sucesso", URL: url}, nil
}

// UltimoBackup returns the most recent stored backup. The store lists newest
// first.
func (s *service) UltimoBackup(ctx context.Context) (*UltimoBackup, error) {
	objects, err := s.store.ListObjects(ctx, s.storageCfg.BucketName, s.storageCfg.BackupPrefix+"/")
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list backups")
	}
	if len(objects) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "nenhum backup encontrado")
	}

	latest := objects[0]
	return &UltimoBackup{
		PublicID:  latest.Name,
		CreatedAt: latest.Created.Format(time.RFC3339),
		URL:       gcs.PublicURL(s.storageCfg.BucketName, latest.Name),
	}, nil
}

// sanitizeFolder keeps person folders to a single path segment.
func sanitizeFolder(nome string) string {
	nome = strings.TrimSpace(nome)
	nome = strings.ReplaceAll(nome, "/", "-")
	return nome
}

// Upload stores each document under the person's folder. Failures are
// accumulated per file so one bad part does not discard the rest.
func (s *service) Upload(ctx context.Context, nomePessoa string, files []UploadedFile) (map[string]UploadResult, error) {
	folder := sanitizeFolder(nomePessoa)
	if folder == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "nome da pessoa é obrigatório")
	}
	if len(files) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "nenhum arquivo enviado")
	}

	results := make(map[string]UploadResult, len(files))
	var uploadErr error
	for _, f := range files {
		id := uuid.NewString()
		object := fmt.Sprintf("%s/%s/%s-%s", s.storageCfg.UploadPrefix, folder, id, f.Filename)
		url, err := s.store.UploadObject(ctx, s.storageCfg.BucketName, object, f.ContentType, f.Body)
		if err != nil {
			uploadErr = multierr.Append(uploadErr, fmt.Errorf("upload %s: %w", f.Field, err))
			continue
		}
		results[f.Field] = UploadResult{
			URL:     url,
			ID:      id,
			Tipo:    f.ContentType,
			Tamanho: f.Size,
		}
	}

	if uploadErr != nil {
		return results, pkgerrors.Wrap(pkgerrors.CodeDependency, uploadErr, "upload documentos")
	}
	return results, nil
}
