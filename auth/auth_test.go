package auth

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rpupo63/studio-cms-backend/errs"
	"github.com/rpupo63/studio-cms-backend/models"
)

func TestMain(m *testing.M) {
	bcryptCost = bcrypt.MinCost
	os.Exit(m.Run())
}

type fakeUsers map[string]models.AdminUser

func (f fakeUsers) FindByEmail(_ context.Context, email string) (models.AdminUser, error) {
	user, ok := f[email]
	if !ok {
		return models.AdminUser{}, errs.NewNotFound("admin user")
	}
	return user, nil
}

func newAdmin(t *testing.T, email, password string) models.AdminUser {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return models.AdminUser{
		Base:         models.Base{ID: uuid.New()},
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	ok, err := CheckPassword(hash, "correct horse")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword(hash, "battery staple")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = CheckPassword("not-a-hash", "x")
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	user := newAdmin(t, "admin@example.com", "password1")

	token, expiresAt, err := issuer.Issue(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestTokenRejections(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	user := newAdmin(t, "admin@example.com", "password1")
	token, _, err := issuer.Issue(user)
	require.NoError(t, err)

	other, err := NewTokenIssuer("another-secret", time.Hour)
	require.NoError(t, err)
	_, err = other.Parse(token)
	assert.Error(t, err, "foreign signature")

	issuer.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID.String()},
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = issuer.Parse(unsigned)
	assert.Error(t, err, "alg none")

	_, err = issuer.Parse("garbage")
	assert.Error(t, err)
}

func TestNewTokenIssuerValidation(t *testing.T) {
	_, err := NewTokenIssuer("", time.Hour)
	assert.Error(t, err)
	_, err = NewTokenIssuer("secret", 0)
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	admin := newAdmin(t, "admin@example.com", "password1")
	authenticator := NewAuthenticator(fakeUsers{admin.Email: admin}, issuer)
	ctx := context.Background()

	session, err := authenticator.Login(ctx, "  Admin@Example.com ", "password1")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, session.User.ID)

	claims, err := authenticator.Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.String(), claims.Subject)

	for name, creds := range map[string][2]string{
		"wrong password": {"admin@example.com", "password2"},
		"unknown email":  {"nobody@example.com", "password1"},
		"empty password": {"admin@example.com", ""},
	} {
		_, err := authenticator.Login(ctx, creds[0], creds[1])
		assert.True(t, errs.IsInvalidCredentialsError(err), name)
	}

	_, err = authenticator.Verify("garbage")
	assert.True(t, errs.IsUnauthorized(err))
}
