// Package auth verifies admin credentials and issues the session tokens that guard the
// admin API.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/studio-cms-backend/errs"
	"github.com/rpupo63/studio-cms-backend/models"
)

// dummyHash is compared against when the email is unknown so both failure paths cost
// one bcrypt comparison.
const dummyHash = "$2a$12$C6UzMDM.H6dfI/f/IKcEeO5rGzwTq1N6V6CLrSL7yJ9GzjkQ9Fq5K"

// AdminUsers looks up admin accounts. FindByEmail returns an error wrapping
// errs.ErrNotFound when no account matches.
type AdminUsers interface {
	FindByEmail(ctx context.Context, email string) (models.AdminUser, error)
}

// Session is the outcome of a successful login.
type Session struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	User      models.AdminUser `json:"user"`
}

type Authenticator struct {
	users  AdminUsers
	tokens *TokenIssuer
}

func NewAuthenticator(users AdminUsers, tokens *TokenIssuer) *Authenticator {
	return &Authenticator{users: users, tokens: tokens}
}

// Login checks email and password and issues a session. Unknown emails and wrong
// passwords both yield errs.ErrInvalidCredentials.
func (a *Authenticator) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return Session{}, errs.NewInvalidCredentialsError()
	}

	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if !errs.IsNotFound(err) {
			return Session{}, err
		}
		_, _ = CheckPassword(dummyHash, password)
		return Session{}, errs.NewInvalidCredentialsError()
	}

	ok, err := CheckPassword(user.PasswordHash, password)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("stored password hash is malformed")
		return Session{}, errs.NewInvalidCredentialsError()
	}
	if !ok {
		return Session{}, errs.NewInvalidCredentialsError()
	}

	token, expiresAt, err := a.tokens.Issue(user)
	if err != nil {
		return Session{}, errs.NewInternalErrorWithCause("issuing session", err)
	}
	return Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Verify returns the claims of a valid session token.
func (a *Authenticator) Verify(token string) (*Claims, error) {
	claims, err := a.tokens.Parse(token)
	if err != nil {
		return nil, errs.NewInvalidTokenError(err)
	}
	return claims, nil
}
