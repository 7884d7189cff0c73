package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/studio-cms-backend/database"
	"github.com/rpupo63/studio-cms-backend/errs"
	"github.com/rpupo63/studio-cms-backend/models"
	"github.com/rpupo63/studio-cms-backend/storage"
)

const multipartMemory = 8 << 20

type mediaStore interface {
	FindAll(ctx context.Context, q database.Query) ([]models.MediaAsset, error)
	FindByID(ctx context.Context, id uuid.UUID) (models.MediaAsset, error)
	Add(ctx context.Context, item *models.MediaAsset) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type mediaHandler struct {
	responder      Responder
	logger         zerolog.Logger
	assets         mediaStore
	files          storage.Store
	maxUploadBytes int64
}

func newMediaHandler(assets mediaStore, files storage.Store, maxUploadBytes int64) mediaHandler {
	logger := log.With().Str("handlerName", "mediaHandler").Logger()

	return mediaHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		assets:         assets,
		files:          files,
		maxUploadBytes: maxUploadBytes,
	}
}

// listMedia returns every uploaded asset, newest first
// @Summary List media
// @Tags Media
// @Produce json
// @Success 200 {array} models.MediaAsset
// @Router /api/media [get]
func (h mediaHandler) listMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assets, err := h.assets.FindAll(r.Context(), database.Query{})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "media asset", err))
			return
		}
		h.responder.WriteJSON(w, assets)
	}
}

// uploadMedia stores a file and records it
// @Summary Upload media
// @Description Multipart form with a required "file" part and an optional "filename" field.
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} models.MediaAsset
// @Failure 400 {object} ErrorResponse "File is required"
// @Failure 413 {object} ErrorResponse "File too large"
// @Router /api/media [post]
func (h mediaHandler) uploadMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Leave room for the multipart envelope around the file itself.
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartMemory)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(h.maxUploadBytes))
				return
			}
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart", err))
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		if header.Size > h.maxUploadBytes {
			h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(h.maxUploadBytes))
			return
		}

		name := strings.TrimSpace(r.FormValue("filename"))
		if name == "" {
			name = header.Filename
		}
		if name == "" {
			name = "upload"
		}

		upload, err := h.files.Save(r.Context(), file, name, header.Header.Get("Content-Type"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		asset := models.MediaAsset{
			Filename: upload.Filename,
			URL:      upload.URL,
			Size:     upload.Size,
			MimeType: upload.MimeType,
		}
		if err := h.assets.Add(r.Context(), &asset); err != nil {
			if delErr := h.files.Delete(r.Context(), upload.URL); delErr != nil {
				h.logger.Error().Err(delErr).Str("url", upload.URL).Msg("failed to remove orphaned upload")
			}
			h.responder.WriteError(w, wrapDatabaseError("create", "media asset", err))
			return
		}

		h.logger.Info().Str("url", asset.URL).Int64("size", asset.Size).Msg("media uploaded")
		h.responder.WriteJSONStatus(w, http.StatusCreated, asset)
	}
}

// deleteMedia removes the file first, then its record
// @Summary Delete media
// @Tags Media
// @Param id path string true "Media asset ID" format(uuid)
// @Success 200 {object} DeleteResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/media/{id} [delete]
func (h mediaHandler) deleteMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		asset, err := h.assets.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "media asset", err))
			return
		}

		if err := h.files.Delete(r.Context(), asset.URL); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.assets.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "media asset", err))
			return
		}

		h.responder.WriteJSON(w, DeleteResponse{Success: true, Message: "media asset deleted"})
	}
}
