package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/rpupo63/studio-cms-backend/database"
	"github.com/rpupo63/studio-cms-backend/models"
	"github.com/rpupo63/studio-cms-backend/services"
	"github.com/rpupo63/studio-cms-backend/validators"
)

type messageStore interface {
	resourceStore[models.ContactMessage]
	SetRead(ctx context.Context, id uuid.UUID, isRead bool) (models.ContactMessage, error)
}

// messageHandler serves the inbox. Messages are only created through the public contact
// form; admins can read, flag and delete them.
type messageHandler struct {
	resourceHandler[models.ContactMessage]
	messages messageStore
}

func newMessageHandler(store messageStore, notifier *services.ContactNotifier) messageHandler {
	h := newResourceHandler("message", "messageHandler", store, validators.ParseContactMessage)
	h.listQuery = func(r *http.Request) database.Query {
		if r.URL.Query().Get("unread") == "true" {
			return database.Query{Where: map[string]any{"is_read": false}}
		}
		return database.Query{}
	}
	h.afterCreate = notifier.NotifyAsync

	return messageHandler{resourceHandler: h, messages: store}
}

// markRead sets the read flag of a message
// @Summary Mark message read or unread
// @Tags Messages
// @Accept json
// @Produce json
// @Param id path string true "Message ID" format(uuid)
// @Param body body validators.MessageStatusInput true "Read flag"
// @Success 200 {object} models.ContactMessage
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/messages/{id} [patch]
func (h messageHandler) markRead() http.HandlerFunc {
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

		isRead, err := validators.ParseMessageStatus(body)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		msg, err := h.messages.SetRead(r.Context(), id, isRead)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "message", err))
			return
		}

		h.responder.WriteJSON(w, msg)
	}
}
