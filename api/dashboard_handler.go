package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/studio-cms-backend/database"
)

type dashboardSource interface {
	Dashboard(ctx context.Context, now time.Time) (database.Dashboard, error)
}

type dashboardHandler struct {
	responder Responder
	logger    zerolog.Logger
	stats     dashboardSource
	now       func() time.Time
}

func newDashboardHandler(stats dashboardSource) dashboardHandler {
	logger := log.With().Str("handlerName", "dashboardHandler").Logger()

	return dashboardHandler{
		responder: NewResponder(logger),
		logger:    logger,
		stats:     stats,
		now:       time.Now,
	}
}

// getDashboard returns content counts, recent activity and a six-month series
// @Summary Dashboard
// @Tags Admin
// @Produce json
// @Success 200 {object} database.Dashboard
// @Router /api/dashboard [get]
func (h dashboardHandler) getDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := h.stats.Dashboard(r.Context(), h.now())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("aggregate", "dashboard", err))
			return
		}
		h.responder.WriteJSON(w, dashboard)
	}
}
