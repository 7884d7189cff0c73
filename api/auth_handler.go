package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/studio-cms-backend/auth"
	"github.com/rpupo63/studio-cms-backend/errs"
	"github.com/rpupo63/studio-cms-backend/validators"
)

const sessionCookieName = "cms_session"

type loginService interface {
	Login(ctx context.Context, email, password string) (auth.Session, error)
}

type authHandler struct {
	responder    Responder
	logger       zerolog.Logger
	logins       loginService
	secureCookie bool
}

func newAuthHandler(logins loginService, secureCookie bool) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		logins:       logins,
		secureCookie: secureCookie,
	}
}

// SessionResponse describes the signed-in admin.
type SessionResponse struct {
	User      SessionUser `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// login exchanges credentials for a session
// @Summary Log in
// @Description Sets the cms_session cookie and returns the token for API clients.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body validators.LoginRequest true "Credentials"
// @Success 200 {object} auth.Session
// @Failure 401 {object} ErrorResponse "invalid credentials"
// @Router /api/auth/login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := readBody(w, r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		creds, err := validators.ParseLogin(body)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		session, err := h.logins.Login(r.Context(), creds.Email, creds.Password)
		if err != nil {
			if errs.IsInvalidCredentialsError(err) {
				h.logger.Warn().Str("email", creds.Email).Msg("failed login")
			}
			h.responder.WriteError(w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    session.Token,
			Path:     "/",
			Expires:  session.ExpiresAt,
			HttpOnly: true,
			Secure:   h.secureCookie,
			SameSite: http.SameSiteLaxMode,
		})
		h.responder.WriteJSON(w, session)
	}
}

// @Summary Log out
// @Tags Auth
// @Success 200 {object} DeleteResponse
// @Router /api/auth/logout [post]
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.secureCookie,
			SameSite: http.SameSiteLaxMode,
		})
		h.responder.WriteJSON(w, DeleteResponse{Success: true, Message: "signed out"})
	}
}

// session returns the admin behind the current token
// @Summary Current session
// @Tags Auth
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/session [get]
func (h authHandler) session() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := ctxGetClaims(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		resp := SessionResponse{
			User: SessionUser{ID: claims.Subject, Email: claims.Email, Role: claims.Role},
		}
		if claims.ExpiresAt != nil {
			resp.ExpiresAt = claims.ExpiresAt.Time
		}
		h.responder.WriteJSON(w, resp)
	}
}
