package services

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/studio-cms-backend/models"
)

const notifyTimeout = 15 * time.Second

// SettingsSource provides the current site settings.
type SettingsSource interface {
	Get(ctx context.Context) (models.SiteSettings, error)
}

// ContactNotifier emails the site's contact address when a visitor submits the
// contact form.
type ContactNotifier struct {
	mailer   *Mailer
	settings SettingsSource
}

// NewContactNotifier returns nil when mailer is nil. A nil *ContactNotifier ignores
// every message.
func NewContactNotifier(mailer *Mailer, settings SettingsSource) *ContactNotifier {
	if mailer == nil {
		return nil
	}
	return &ContactNotifier{mailer: mailer, settings: settings}
}

// NotifyAsync delivers the notification on its own goroutine, detached from the request
// that created msg. Failures are logged.
func (n *ContactNotifier) NotifyAsync(msg models.ContactMessage) {
	if n == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := n.Notify(ctx, msg); err != nil {
			log.Error().Err(err).Str("messageId", msg.ID.String()).Msg("contact notification failed")
		}
	}()
}

// Notify sends the email for msg. Sites without a contact address are skipped.
func (n *ContactNotifier) Notify(ctx context.Context, msg models.ContactMessage) error {
	if n == nil {
		return nil
	}
	settings, err := n.settings.Get(ctx)
	if err != nil {
		return fmt.Errorf("loading site settings: %w", err)
	}
	if settings.ContactEmail == nil || *settings.ContactEmail == "" {
		log.Debug().Msg("no contact email configured, skipping notification")
		return nil
	}

	subject := fmt.Sprintf("[%s] New message from %s", settings.SiteTitle, msg.Name)
	return n.mailer.SendEmail(ctx, subject, renderContactEmail(msg), msg.Email, []string{*settings.ContactEmail})
}

func renderContactEmail(msg models.ContactMessage) string {
	var b strings.Builder
	b.WriteString("<p><strong>From:</strong> ")
	b.WriteString(html.EscapeString(msg.Name))
	b.WriteString(" &lt;")
	b.WriteString(html.EscapeString(msg.Email))
	b.WriteString("&gt;</p><p>")
	b.WriteString(strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>"))
	b.WriteString("</p>")
	return b.String()
}
