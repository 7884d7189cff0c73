package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/studio-cms-backend/models"
)

type staticSettings models.SiteSettings

func (s staticSettings) Get(context.Context) (models.SiteSettings, error) {
	return models.SiteSettings(s), nil
}

func newTestMailer(t *testing.T, handler http.HandlerFunc) *Mailer {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	m := NewMailer("re_test", "Studio <noreply@studio.dev>")
	m.baseURL = srv.URL
	return m
}

func TestNewMailerDisabledWithoutConfig(t *testing.T) {
	assert.Nil(t, NewMailer("", "from@example.com"))
	assert.Nil(t, NewMailer("key", ""))
	assert.Nil(t, NewContactNotifier(nil, nil))

	var n *ContactNotifier
	assert.NoError(t, n.Notify(context.Background(), models.ContactMessage{}))
	n.NotifyAsync(models.ContactMessage{})
}

func TestContactNotifierSendsEmail(t *testing.T) {
	var got ResendEmailRequest
	mailer := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id":"email_123"}`))
	})
	contact := "owner@studio.dev"
	notifier := NewContactNotifier(mailer, staticSettings{SiteTitle: "Studio", ContactEmail: &contact})

	err := notifier.Notify(context.Background(), models.ContactMessage{
		Name:    "Eve <script>",
		Email:   "eve@example.com",
		Message: "Line one\nLine two",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"owner@studio.dev"}, got.To)
	assert.Equal(t, "eve@example.com", got.ReplyTo)
	assert.Equal(t, "[Studio] New message from Eve <script>", got.Subject)
	assert.Contains(t, got.Html, "Eve &lt;script&gt;")
	assert.Contains(t, got.Html, "Line one<br>Line two")
}

func TestContactNotifierSkipsWithoutContactEmail(t *testing.T) {
	mailer := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	notifier := NewContactNotifier(mailer, staticSettings{SiteTitle: "Studio"})
	assert.NoError(t, notifier.Notify(context.Background(), models.ContactMessage{Name: "Eve"}))
}

func TestSendEmailReportsAPIError(t *testing.T) {
	mailer := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from address"}`))
	})
	err := mailer.SendEmail(context.Background(), "hi", "<p>hi</p>", "", []string{"a@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid from address")

	err = mailer.SendEmail(context.Background(), "hi", "<p>hi</p>", "", nil)
	assert.Error(t, err)
}
