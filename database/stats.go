package database

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/rpupo63/studio-cms-backend/models"
)

const (
	recentLimit  = 5
	seriesMonths = 6
)

type Counts struct {
	Projects       int64 `json:"projects"`
	Services       int64 `json:"services"`
	PublishedPosts int64 `json:"publishedPosts"`
	Messages       int64 `json:"messages"`
	UnreadMessages int64 `json:"unreadMessages"`
	TeamMembers    int64 `json:"teamMembers"`
	Testimonials   int64 `json:"testimonials"`
	MediaAssets    int64 `json:"mediaAssets"`
}

// MonthlyCount is one point of the dashboard chart. Month is formatted YYYY-MM.
type MonthlyCount struct {
	Month    string `json:"month"`
	Projects int    `json:"projects"`
	Posts    int    `json:"posts"`
	Leads    int    `json:"leads"`
}

type Dashboard struct {
	Counts         Counts                  `json:"counts"`
	RecentProjects []models.Project        `json:"recentProjects"`
	RecentPosts    []models.BlogPost       `json:"recentPosts"`
	RecentMessages []models.ContactMessage `json:"recentMessages"`
	Series         []MonthlyCount          `json:"series"`
}

type StatsRepo struct {
	db       *gorm.DB
	projects *ProjectRepo
	posts    *BlogPostRepo
	messages *MessageRepo
}

func NewStatsRepo(db *gorm.DB, projects *ProjectRepo, posts *BlogPostRepo, messages *MessageRepo) *StatsRepo {
	return &StatsRepo{db: db, projects: projects, posts: posts, messages: messages}
}

// Dashboard gathers admin home page figures. Queries run concurrently; the first
// failure cancels the rest.
func (r *StatsRepo) Dashboard(ctx context.Context, now time.Time) (Dashboard, error) {
	var d Dashboard
	g, ctx := errgroup.WithContext(ctx)

	count := func(dst *int64, model any, where map[string]any) {
		g.Go(func() error {
			tx := r.db.WithContext(ctx).Model(model)
			if len(where) > 0 {
				tx = tx.Where(where)
			}
			return tx.Count(dst).Error
		})
	}
	count(&d.Counts.Projects, &models.Project{}, nil)
	count(&d.Counts.Services, &models.Service{}, nil)
	count(&d.Counts.PublishedPosts, &models.BlogPost{}, map[string]any{"status": models.PublishStatusPublished})
	count(&d.Counts.Messages, &models.ContactMessage{}, nil)
	count(&d.Counts.UnreadMessages, &models.ContactMessage{}, map[string]any{"is_read": false})
	count(&d.Counts.TeamMembers, &models.TeamMember{}, nil)
	count(&d.Counts.Testimonials, &models.Testimonial{}, nil)
	count(&d.Counts.MediaAssets, &models.MediaAsset{}, nil)

	recent := Query{Limit: recentLimit}
	g.Go(func() (err error) {
		d.RecentProjects, err = r.projects.FindAll(ctx, recent)
		return err
	})
	g.Go(func() (err error) {
		d.RecentPosts, err = r.posts.FindAll(ctx, recent)
		return err
	})
	g.Go(func() (err error) {
		d.RecentMessages, err = r.messages.FindAll(ctx, recent)
		return err
	})

	months := lastMonths(now, seriesMonths)
	since := months[0]
	var projectDates, postDates, leadDates []time.Time
	createdSince := func(dst *[]time.Time, model any) {
		g.Go(func() error {
			return r.db.WithContext(ctx).Model(model).
				Where("created_at >= ?", since).
				Pluck("created_at", dst).Error
		})
	}
	createdSince(&projectDates, &models.Project{})
	createdSince(&postDates, &models.BlogPost{})
	createdSince(&leadDates, &models.ContactMessage{})

	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}

	d.Series = monthlySeries(months, projectDates, postDates, leadDates)
	return d, nil
}

// lastMonths returns the first instant of each of the n months ending with now's month.
func lastMonths(now time.Time, n int) []time.Time {
	now = now.UTC()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	months := make([]time.Time, n)
	for i := range months {
		months[i] = current.AddDate(0, i-(n-1), 0)
	}
	return months
}

func monthlySeries(months []time.Time, projects, posts, leads []time.Time) []MonthlyCount {
	series := make([]MonthlyCount, len(months))
	index := make(map[string]int, len(months))
	for i, m := range months {
		label := m.Format("2006-01")
		series[i].Month = label
		index[label] = i
	}

	bump := func(dates []time.Time, field func(*MonthlyCount) *int) {
		for _, d := range dates {
			if i, ok := index[d.UTC().Format("2006-01")]; ok {
				*field(&series[i])++
			}
		}
	}
	bump(projects, func(m *MonthlyCount) *int { return &m.Projects })
	bump(posts, func(m *MonthlyCount) *int { return &m.Posts })
	bump(leads, func(m *MonthlyCount) *int { return &m.Leads })
	return series
}
