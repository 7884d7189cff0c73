package main

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/studio-cms-backend/config"
)

func newSeedFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("seed-admin", pflag.ContinueOnError)
	addSeedFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

// Values exported after the command tree is built, as godotenv.Load does in bootstrap,
// must still be picked up.
func TestSeedCredentialsReadEnvironmentAtRunTime(t *testing.T) {
	t.Setenv("ADMIN_SEED_EMAIL", " Owner@Example.com ")
	t.Setenv("ADMIN_SEED_PASSWORD", "from-dotenv-123")
	t.Setenv("ADMIN_SEED_NAME", "Studio Owner")

	req := seedCredentials(seedAdminCmd.Flags(), config.New())
	assert.Equal(t, "owner@example.com", req.Email)
	assert.Equal(t, "from-dotenv-123", req.Password)
	assert.Equal(t, "Studio Owner", req.Name)
	assert.NoError(t, req.Validate())
}

func TestSeedCredentialsFlagsOverrideEnvironment(t *testing.T) {
	env := map[string]string{
		"ADMIN_SEED_EMAIL":    "env@example.com",
		"ADMIN_SEED_PASSWORD": "env-password-123",
	}

	req := seedCredentials(newSeedFlags(t, "--email", "flag@example.com"), env)
	assert.Equal(t, "flag@example.com", req.Email)
	assert.Equal(t, "env-password-123", req.Password)
	assert.Equal(t, "Administrator", req.Name)

	// An explicit empty flag is not replaced by the environment.
	req = seedCredentials(newSeedFlags(t, "--password="), env)
	assert.Empty(t, req.Password)
	assert.Error(t, req.Validate())
}

func TestSeedCredentialsMissingEverywhere(t *testing.T) {
	req := seedCredentials(newSeedFlags(t), map[string]string{})
	assert.Empty(t, req.Email)
	assert.Error(t, req.Validate())
}
