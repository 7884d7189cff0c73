package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/studio-cms-backend/models"
)

func TestAdminRoutesRequireSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodGet, "/api/projects", nil, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, env.serve(req).Code)

	req = httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: env.token})
	assert.Equal(t, http.StatusOK, env.serve(req).Code)

	assert.Equal(t, http.StatusOK, env.request(http.MethodGet, "/api/projects", nil, true).Code)
}

func TestProjectLifecycle(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodPost, "/api/projects", validProject("Hello World Project!"), true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[models.Project](t, rec)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "hello-world-project", created.Slug)
	assert.Equal(t, models.ProjectStatusActive, created.Status)
	assert.Equal(t, []string{"web", "api"}, []string(created.Tags))

	rec = env.request(http.MethodGet, "/api/projects/"+created.ID.String(), nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.Title, decodeBody[models.Project](t, rec).Title)

	update := validProject("Renamed Project")
	update["status"] = models.ProjectStatusArchived
	rec = env.request(http.MethodPut, "/api/projects/"+created.ID.String(), update, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeBody[models.Project](t, rec)
	assert.Equal(t, "renamed-project", updated.Slug)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, models.ProjectStatusArchived, updated.Status)

	rec = env.request(http.MethodGet, "/api/projects?status=ARCHIVED", nil, true)
	require.Len(t, decodeBody[[]models.Project](t, rec), 1)
	rec = env.request(http.MethodGet, "/api/projects?status=ACTIVE", nil, true)
	assert.Empty(t, decodeBody[[]models.Project](t, rec))

	rec = env.request(http.MethodDelete, "/api/projects/"+created.ID.String(), nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[DeleteResponse](t, rec).Success)

	assert.Equal(t, http.StatusNotFound, env.request(http.MethodGet, "/api/projects/"+created.ID.String(), nil, true).Code)
	assert.Equal(t, http.StatusNotFound, env.request(http.MethodDelete, "/api/projects/"+created.ID.String(), nil, true).Code)
}

func TestNonLatinTitlesGetTransliteratedSlugs(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodPost, "/api/projects", validProject("Привет мир"), true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "privet-mir", decodeBody[models.Project](t, rec).Slug)

	rec = env.request(http.MethodPost, "/api/projects", validProject("!!!"), true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "must contain letters or digits", decodeBody[ErrorResponse](t, rec).Fields["title"])
}

func TestServiceCreateReturnsIDAndTimestamp(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]any{"title": "Growth", "description": "Paid acquisition and lifecycle marketing.", "category": "Marketing"}
	rec := env.request(http.MethodPost, "/api/services", body, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	raw := decodeBody[map[string]any](t, rec)
	id, ok := raw["id"].(string)
	require.True(t, ok, "id missing from %v", raw)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	createdAt, ok := raw["createdAt"].(string)
	require.True(t, ok, "createdAt missing from %v", raw)
	_, err = time.Parse(time.RFC3339Nano, createdAt)
	assert.NoError(t, err)
	assert.Equal(t, "Growth", raw["title"])

	rec = env.request(http.MethodGet, "/api/public/services", nil, false)
	services := decodeBody[[]models.Service](t, rec)
	require.Len(t, services, 1)
	assert.Equal(t, id, services[0].ID.String())
}

func TestInvalidPayloadReportsFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodPost, "/api/projects", map[string]any{"title": "ab"}, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, "error", resp.Status)
	for _, field := range []string{"title", "shortDescription", "content", "category"} {
		assert.Contains(t, resp.Fields, field)
	}

	rec = env.request(http.MethodPost, "/api/projects", "{not json", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.request(http.MethodGet, "/api/projects", nil, true)
	assert.Empty(t, decodeBody[[]models.Project](t, rec))
}

func TestUnknownAndMalformedIDs(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodGet, "/api/services/not-a-uuid", nil, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "id", decodeBody[ErrorResponse](t, rec).Field)

	missing := uuid.NewString()
	assert.Equal(t, http.StatusNotFound, env.request(http.MethodGet, "/api/team/"+missing, nil, true).Code)

	body := map[string]any{"client": "Ada", "quote": "Wonderful work on our launch.", "rating": 5}
	assert.Equal(t, http.StatusNotFound, env.request(http.MethodPut, "/api/testimonials/"+missing, body, true).Code)
}

func TestOversizedBodyIsRejected(t *testing.T) {
	env := newTestEnv(t)

	huge := make([]byte, maxJSONBodyBytes+1)
	for i := range huge {
		huge[i] = 'a'
	}
	rec := env.request(http.MethodPost, "/api/services", `{"title":"`+string(huge)+`"}`, true)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestBlogDraftCannotCarryPublishDate(t *testing.T) {
	env := newTestEnv(t)

	post := map[string]any{
		"title":       "Writing Go services",
		"content":     "A long enough body of text for a blog post, comfortably over fifty characters.",
		"status":      models.PublishStatusDraft,
		"publishedAt": "2024-05-01T10:00:00Z",
	}
	rec := env.request(http.MethodPost, "/api/blog", post, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[ErrorResponse](t, rec).Fields, "publishedAt")

	post["status"] = models.PublishStatusPublished
	rec = env.request(http.MethodPost, "/api/blog", post, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "writing-go-services", decodeBody[models.BlogPost](t, rec).Slug)
}

func TestContactMessageFlow(t *testing.T) {
	env := newTestEnv(t)

	msg := map[string]any{"name": "Grace", "email": "grace@example.com", "message": "I would like a quote for a new site."}
	rec := env.request(http.MethodPost, "/api/messages", msg, false)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[models.ContactMessage](t, rec)
	assert.False(t, created.IsRead)

	// Reading the inbox still needs a session.
	assert.Equal(t, http.StatusUnauthorized, env.request(http.MethodGet, "/api/messages", nil, false).Code)

	rec = env.request(http.MethodGet, "/api/messages?unread=true", nil, true)
	require.Len(t, decodeBody[[]models.ContactMessage](t, rec), 1)

	rec = env.request(http.MethodPatch, "/api/messages/"+created.ID.String(), map[string]any{"isRead": true}, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decodeBody[models.ContactMessage](t, rec).IsRead)

	rec = env.request(http.MethodGet, "/api/messages?unread=true", nil, true)
	assert.Empty(t, decodeBody[[]models.ContactMessage](t, rec))

	rec = env.request(http.MethodPatch, "/api/messages/"+created.ID.String(), map[string]any{}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
