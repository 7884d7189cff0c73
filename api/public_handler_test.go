package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/rpupo63/studio-cms-backend/database"
	"github.com/rpupo63/studio-cms-backend/models"
)

func at(day int) time.Time {
	return time.Date(2024, time.March, day, 12, 0, 0, 0, time.UTC)
}

func titles[M any](items []M, title func(M) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, title(it))
	}
	return out
}

func seedPublicContent(t *testing.T, db database.Database) {
	t.Helper()
	ctx := context.Background()

	published := func(title string, publishedAt *time.Time, status string) *models.BlogPost {
		return &models.BlogPost{
			Title:       title,
			Slug:        title,
			Content:     "body",
			Tags:        datatypes.JSONSlice[string]{},
			Status:      status,
			PublishedAt: publishedAt,
		}
	}
	older, newer := at(1), at(20)
	for _, p := range []*models.BlogPost{
		published("older", &older, models.PublishStatusPublished),
		published("undated", nil, models.PublishStatusPublished),
		published("newer", &newer, models.PublishStatusPublished),
		published("draft", nil, models.PublishStatusDraft),
		published("archived", &newer, models.PublishStatusArchived),
	} {
		require.NoError(t, db.BlogPostRepo().Add(ctx, p))
	}

	for i, status := range []string{models.ProjectStatusActive, models.ProjectStatusArchived, models.ProjectStatusInProgress} {
		p := &models.Project{
			Title:     status,
			Slug:      status,
			Content:   "content",
			TechStack: datatypes.JSONSlice[string]{},
			Tags:      datatypes.JSONSlice[string]{},
			Category:  "Web",
			Status:    status,
		}
		p.CreatedAt = at(i + 1)
		require.NoError(t, db.ProjectRepo().Add(ctx, p))
	}

	for i, title := range []string{"design", "build", "host"} {
		s := &models.Service{Title: title, Description: "what we do"}
		s.CreatedAt = at(i + 1)
		require.NoError(t, db.ServiceRepo().Add(ctx, s))
	}

	for i, client := range []string{"first", "second"} {
		tm := &models.Testimonial{Client: client, Quote: "great"}
		tm.CreatedAt = at(i + 1)
		require.NoError(t, db.TestimonialRepo().Add(ctx, tm))
	}
}

func TestPublicListsAreFilteredAndOrdered(t *testing.T) {
	env := newTestEnv(t)
	seedPublicContent(t, env.db)

	rec := env.request(http.MethodGet, "/api/public/blog", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	posts := titles(decodeBody[[]models.BlogPost](t, rec), func(p models.BlogPost) string { return p.Title })
	if diff := cmp.Diff([]string{"newer", "older", "undated"}, posts); diff != "" {
		t.Errorf("published posts mismatch (-want +got):\n%s", diff)
	}

	rec = env.request(http.MethodGet, "/api/public/projects", nil, false)
	projects := titles(decodeBody[[]models.Project](t, rec), func(p models.Project) string { return p.Status })
	if diff := cmp.Diff([]string{models.ProjectStatusInProgress, models.ProjectStatusActive}, projects); diff != "" {
		t.Errorf("visible projects mismatch (-want +got):\n%s", diff)
	}

	rec = env.request(http.MethodGet, "/api/public/services", nil, false)
	services := titles(decodeBody[[]models.Service](t, rec), func(s models.Service) string { return s.Title })
	assert.Equal(t, []string{"design", "build", "host"}, services)

	rec = env.request(http.MethodGet, "/api/public/testimonials", nil, false)
	quotes := titles(decodeBody[[]models.Testimonial](t, rec), func(tm models.Testimonial) string { return tm.Client })
	assert.Equal(t, []string{"second", "first"}, quotes)

	rec = env.request(http.MethodGet, "/api/public/team", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestSettingsDefaultsAndSave(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodGet, "/api/public/settings", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	defaults := decodeBody[models.SiteSettings](t, rec)
	assert.Equal(t, "Untitled Site", defaults.SiteTitle)
	assert.Equal(t, models.ThemeLight, defaults.Theme)

	update := map[string]any{
		"siteTitle":    "Studio",
		"contactEmail": "hello@studio.test",
		"socialLinks":  map[string]any{"github": "https://github.com/studio", "myspace": "https://myspace.com/x"},
		"theme":        models.ThemeDark,
	}
	assert.Equal(t, http.StatusUnauthorized, env.request(http.MethodPut, "/api/settings", update, false).Code)

	rec = env.request(http.MethodPut, "/api/settings", update, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = env.request(http.MethodGet, "/api/public/settings", nil, false)
	saved := decodeBody[models.SiteSettings](t, rec)
	assert.Equal(t, "Studio", saved.SiteTitle)
	assert.Equal(t, models.ThemeDark, saved.Theme)
	assert.Equal(t, "https://github.com/studio", saved.SocialLinks["github"])
	assert.NotContains(t, saved.SocialLinks, "myspace")

	update["socialLinks"] = map[string]any{"github": "not a url"}
	rec = env.request(http.MethodPut, "/api/settings", update, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[ErrorResponse](t, rec).Fields, "socialLinks.github")
}

func TestDashboardAndHealth(t *testing.T) {
	env := newTestEnv(t)
	seedPublicContent(t, env.db)

	assert.Equal(t, http.StatusUnauthorized, env.request(http.MethodGet, "/api/dashboard", nil, false).Code)

	rec := env.request(http.MethodGet, "/api/dashboard", nil, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	dashboard := decodeBody[database.Dashboard](t, rec)
	assert.Equal(t, int64(3), dashboard.Counts.Projects)
	assert.Equal(t, int64(3), dashboard.Counts.PublishedPosts)
	assert.Len(t, dashboard.Series, 6)

	rec = env.request(http.MethodGet, "/healthz", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody[HealthResponse](t, rec).Status)
}
