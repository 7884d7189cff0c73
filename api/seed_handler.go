package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/studio-cms-backend/auth"
	"github.com/rpupo63/studio-cms-backend/errs"
	"github.com/rpupo63/studio-cms-backend/models"
	"github.com/rpupo63/studio-cms-backend/validators"
)

const defaultAdminName = "Administrator"

type adminUpserter interface {
	Upsert(ctx context.Context, email, passwordHash, name string) (models.AdminUser, error)
}

// seedHandler bootstraps the admin account. It only exists when a seed secret is
// configured; otherwise the route answers 404.
type seedHandler struct {
	responder Responder
	logger    zerolog.Logger
	admins    adminUpserter
	secret    string
}

func newSeedHandler(admins adminUpserter, secret string) seedHandler {
	logger := log.With().Str("handlerName", "seedHandler").Logger()

	return seedHandler{
		responder: NewResponder(logger),
		logger:    logger,
		admins:    admins,
		secret:    secret,
	}
}

type SeedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Email   string `json:"email"`
}

func (h seedHandler) secretMatches(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(h.secret)) == 1
}

// seedAdmin creates or resets the admin account
// @Summary Seed admin
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body validators.SeedRequest true "Seed request"
// @Success 200 {object} SeedResponse
// @Failure 401 {object} ErrorResponse "wrong secret"
// @Failure 404 {object} ErrorResponse "seeding disabled"
// @Router /api/admin/seed [post]
func (h seedHandler) seedAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.secret == "" {
			h.responder.WriteError(w, errs.NewSeedDisabledError())
			return
		}

		body, err := readBody(w, r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var secretField struct {
			Secret string `json:"secret"`
		}
		if err := json.Unmarshal(body, &secretField); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}
		if !h.secretMatches(secretField.Secret) {
			h.logger.Warn().Str("remoteAddr", r.RemoteAddr).Msg("seed attempt with wrong secret")
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		req, err := validators.ParseSeed(body)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("hashing password", err))
			return
		}

		name := req.Name
		if name == "" {
			name = defaultAdminName
		}
		admin, err := h.admins.Upsert(r.Context(), req.Email, hash, name)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("seed", "admin user", err))
			return
		}

		h.logger.Info().Str("email", admin.Email).Msg("admin user seeded")
		h.responder.WriteJSON(w, SeedResponse{
			Success: true,
			Message: "Admin user seeded successfully",
			Email:   admin.Email,
		})
	}
}
