package api

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/studio-cms-backend/models"
	"github.com/rpupo63/studio-cms-backend/validators"
)

type settingsStore interface {
	Get(ctx context.Context) (models.SiteSettings, error)
	Save(ctx context.Context, settings models.SiteSettings) (models.SiteSettings, error)
}

type settingsHandler struct {
	responder Responder
	logger    zerolog.Logger
	settings  settingsStore
}

func newSettingsHandler(settings settingsStore) settingsHandler {
	logger := log.With().Str("handlerName", "settingsHandler").Logger()

	return settingsHandler{
		responder: NewResponder(logger),
		logger:    logger,
		settings:  settings,
	}
}

// getSettings returns the site settings, creating the defaults on first use
// @Summary Get site settings
// @Tags Settings
// @Produce json
// @Success 200 {object} models.SiteSettings
// @Router /api/settings [get]
func (h settingsHandler) getSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := h.settings.Get(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "site settings", err))
			return
		}
		h.responder.WriteJSON(w, settings)
	}
}

// saveSettings replaces the site settings
// @Summary Save site settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param settings body validators.SiteSettingsInput true "Site settings"
// @Success 200 {object} models.SiteSettings
// @Failure 400 {object} ErrorResponse "Invalid settings payload"
// @Router /api/settings [put]
func (h settingsHandler) saveSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := readBody(w, r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		settings, err := validators.ParseSiteSettings(body)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		saved, err := h.settings.Save(r.Context(), settings)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("save", "site settings", err))
			return
		}

		h.responder.WriteJSON(w, saved)
	}
}
