package api

import (
	"context"
	"errors"

	"github.com/rpupo63/studio-cms-backend/auth"
	"github.com/rpupo63/studio-cms-backend/models"
)

type keyType string

const (
	claimsKey       keyType = "claims"
	siteSettingsKey keyType = "siteSettings"
)

// ctxWithClaims adds the verified session claims to the context
func ctxWithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ctxGetClaims retrieves the session claims from the context
func ctxGetClaims(ctx context.Context) (*auth.Claims, error) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	if !ok || claims == nil {
		return nil, errors.New("no session in context")
	}
	return claims, nil
}

func ctxWithSiteSettings(ctx context.Context, settings models.SiteSettings) context.Context {
	return context.WithValue(ctx, siteSettingsKey, settings)
}

func ctxGetSiteSettings(ctx context.Context) (models.SiteSettings, bool) {
	settings, ok := ctx.Value(siteSettingsKey).(models.SiteSettings)
	return settings, ok
}
