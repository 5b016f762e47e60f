package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/pontodigital/ponto-backend/api/responses"
	"github.com/pontodigital/ponto-backend/internal/backup"
	pkgerrors "github.com/pontodigital/ponto-backend/pkg/errors"
	"github.com/pontodigital/ponto-backend/pkg/logger"
)

// maxBackupBody caps the accepted backup document size.
const maxBackupBody = 25 << 20

// AdminBackupJSON stores the posted JSON document in object storage.
func AdminBackupJSON(svc backup.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "backup service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		doc, err := io.ReadAll(io.LimitReader(r.Body, maxBackupBody))
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "corpo da requisição ilegível"))
			return
		}

		resp, err := svc.BackupJSON(r.Context(), json.RawMessage(doc))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteOK(w, resp)
	}
}

// AdminListarBackups returns the most recent stored backup.
func AdminListarBackups(svc backup.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "backup service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		latest, err := svc.UltimoBackup(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteOK(w, latest)
	}
}

// AdminUpload accepts a multipart form of documents and stores each one under
// the person's folder. Field names are caller-chosen, only nomePessoa is
// fixed.
func AdminUpload(svc backup.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "backup service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := r.ParseMultipartForm(maxFotoMemory); err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "formulário multipart inválido"))
			return
		}

		nomePessoa := r.FormValue("nomePessoa")

		var files []backup.UploadedFile
		if r.MultipartForm != nil {
			for field, headers := range r.MultipartForm.File {
				for _, header := range headers {
					f, err := header.Open()
					if err != nil {
						responses.WriteError(r.Context(), logg, w,
							pkgerrors.Wrap(pkgerrors.CodeValidation, err, "arquivo ilegível"))
						return
					}
					defer f.Close()
					files = append(files, backup.UploadedFile{
						Field:       field,
						Filename:    header.Filename,
						ContentType: header.Header.Get("Content-Type"),
						Size:        header.Size,
						Body:        f,
					})
				}
			}
		}

		results, err := svc.Upload(r.Context(), nomePessoa, files)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteOK(w, results)
	}
}
