package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/studio-cms-backend/database"
)

// resourceStore is the persistence contract of a CRUD resource.
type resourceStore[M any] interface {
	FindAll(ctx context.Context, q database.Query) ([]M, error)
	FindByID(ctx context.Context, id uuid.UUID) (M, error)
	Add(ctx context.Context, item *M) error
	Update(ctx context.Context, id uuid.UUID, item *M) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// resourceHandler serves list, read, create, update and delete for one entity.
type resourceHandler[M any] struct {
	responder Responder
	logger    zerolog.Logger
	entity    string
	store     resourceStore[M]
	parse     func([]byte) (M, error)

	// prepare runs after validation and before every write, e.g. to derive a slug.
	prepare func(*M)
	// listQuery narrows the admin list from query parameters.
	listQuery func(*http.Request) database.Query
	// afterCreate runs once a record is stored and the 201 is written.
	afterCreate func(M)
}

func newResourceHandler[M any](entity, handlerName string, store resourceStore[M], parse func([]byte) (M, error)) resourceHandler[M] {
	logger := log.With().Str("handlerName", handlerName).Logger()

	return resourceHandler[M]{
		responder: NewResponder(logger),
		logger:    logger,
		entity:    entity,
		store:     store,
		parse:     parse,
	}
}

func (h resourceHandler[M]) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := database.Query{}
		if h.listQuery != nil {
			q = h.listQuery(r)
		}

		items, err := h.store.FindAll(r.Context(), q)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", h.entity, err))
			return
		}

		h.responder.WriteJSON(w, items)
	}
}

func (h resourceHandler[M]) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		item, err := h.store.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", h.entity, err))
			return
		}

		h.responder.WriteJSON(w, item)
	}
}

func (h resourceHandler[M]) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := readBody(w, r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		item, err := h.parse(body)
		if err != nil {
			h.logger.Debug().Err(err).Msg("rejected payload")
			h.responder.WriteError(w, err)
			return
		}
		if h.prepare != nil {
			h.prepare(&item)
		}

		if err := h.store.Add(r.Context(), &item); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", h.entity, err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, item)
		if h.afterCreate != nil {
			h.afterCreate(item)
		}
	}
}

func (h resourceHandler[M]) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		body, err := readBody(w, r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		item, err := h.parse(body)
		if err != nil {
			h.logger.Debug().Err(err).Msg("rejected payload")
			h.responder.WriteError(w, err)
			return
		}
		if h.prepare != nil {
			h.prepare(&item)
		}

		if err := h.store.Update(r.Context(), id, &item); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", h.entity, err))
			return
		}

		h.responder.WriteJSON(w, item)
	}
}

func (h resourceHandler[M]) remove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.store.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", h.entity, err))
			return
		}

		h.responder.WriteJSON(w, DeleteResponse{Success: true, Message: h.entity + " deleted"})
	}
}

// statusFilter narrows a list to ?status=<value> when the value is one of allowed.
func statusFilter(allowed []string) func(*http.Request) database.Query {
	return func(r *http.Request) database.Query {
		status := r.URL.Query().Get("status")
		for _, s := range allowed {
			if s == status {
				return database.Query{Where: map[string]any{"status": status}}
			}
		}
		return database.Query{}
	}
}
