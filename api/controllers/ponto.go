package controllers

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/pontodigital/ponto-backend/api/responses"
	"github.com/pontodigital/ponto-backend/internal/ponto"
	"github.com/pontodigital/ponto-backend/pkg/config"
	pkgerrors "github.com/pontodigital/ponto-backend/pkg/errors"
	"github.com/pontodigital/ponto-backend/pkg/logger"
)

// maxFotoMemory caps the in-memory portion of the multipart parse.
const maxFotoMemory = 10 << 20

type fotoStore interface {
	UploadObject(ctx context.Context, bucket, object, contentType string, body io.Reader) (string, error)
}

// PontoRegistrar handles the clock-in/out form: a tipo field plus an optional
// selfie. The photo upload is best effort, a storage failure never blocks the
// attendance event itself.
func PontoRegistrar(svc ponto.Service, store fotoStore, storageCfg config.StorageConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "ponto service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		funcionarioID, err := userIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := r.ParseMultipartForm(maxFotoMemory); err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "formulário multipart inválido"))
			return
		}

		tipo := r.FormValue("tipo")
		fotoURL := uploadFoto(r, store, storageCfg, funcionarioID, logg)

		if err := svc.Registrar(r.Context(), funcionarioID, tipo, fotoURL); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteOK(w, map[string]any{"ok": true})
	}
}

func uploadFoto(r *http.Request, store fotoStore, storageCfg config.StorageConfig, funcionarioID uuid.UUID, logg *logger.Logger) *string {
	file, header, err := r.FormFile("foto")
	if err != nil {
		return nil
	}
	defer file.Close()

	object := fmt.Sprintf("%s/%s-%s%s", storageCfg.PhotoPrefix, funcionarioID, uuid.NewString(), fotoExt(header))
	url, err := store.UploadObject(r.Context(), storageCfg.BucketName, object, fotoContentType(header), file)
	if err != nil {
		if logg != nil {
			ctx := logg.WithFields(r.Context(), map[string]any{"object": object})
			logg.Error(ctx, "ponto.foto_upload_failed", err)
		}
		return nil
	}
	return &url
}

func fotoExt(header *multipart.FileHeader) string {
	if ext := filepath.Ext(header.Filename); ext != "" {
		return ext
	}
	return ".jpg"
}

func fotoContentType(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "image/jpeg"
}
