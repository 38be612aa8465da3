package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvToken, EnvUsername, EnvRepositoryOwner, EnvPeriodDays, EnvPeriodLabel, EnvGraphQLURL, EnvAPIURL, EnvOutputDir} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(Options{})

	require.NoError(t, err)
	assert.Equal(t, 365, cfg.PeriodDays)
	assert.Equal(t, "last 12 months", cfg.PeriodLabel)
	assert.Equal(t, 15, cfg.TopRepositories)
	assert.Equal(t, "generated", cfg.OutputDir)
	assert.Equal(t, "<!-- REPOS-LIST:START -->", cfg.Markers.Start)
	assert.Equal(t, "<!-- REPOS-LIST:END -->", cfg.Markers.End)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 365*24*time.Hour, cfg.Window())
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvToken, "secret")
	t.Setenv(EnvRepositoryOwner, "owner-fallback")
	t.Setenv(EnvPeriodDays, "30")
	t.Setenv(EnvPeriodLabel, "last month")

	cfg, err := Load(Options{})

	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Token)
	assert.Equal(t, "owner-fallback", cfg.Username)
	assert.Equal(t, 30, cfg.PeriodDays)
	assert.Equal(t, "last month", cfg.PeriodLabel)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_UsernamePreferredOverRepositoryOwner(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvUsername, "octo")
	t.Setenv(EnvRepositoryOwner, "someone-else")

	cfg, err := Load(Options{})

	require.NoError(t, err)
	assert.Equal(t, "octo", cfg.Username)
}

func TestLoad_InvalidPeriodDays(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPeriodDays, "a year")

	_, err := Load(Options{})

	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), EnvPeriodDays)
}

func TestLoad_YAMLFileWithEnvironmentOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPeriodLabel, "from env")
	path := writeFile(t, "profile.yaml", `
username: from-file
period_label: from file
top_repositories: 5
rate_limit_wait: 2m
markers:
  start: "<!-- A -->"
  end: "<!-- B -->"
links:
  - name: GitHub
    url: https://github.com/octo
    color: "#181717"
`)

	cfg, err := Load(Options{File: path})

	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Username)
	assert.Equal(t, "from env", cfg.PeriodLabel)
	assert.Equal(t, 5, cfg.TopRepositories)
	assert.Equal(t, 2*time.Minute, cfg.RateLimitWait)
	assert.Equal(t, Markers{Start: "<!-- A -->", End: "<!-- B -->"}, cfg.Markers)
	require.Len(t, cfg.Links, 1)
	assert.Equal(t, "GitHub", cfg.Links[0].Name)
	// Untouched keys keep their defaults.
	assert.Equal(t, 8, cfg.ReadmeCards)
}

func TestLoad_YAMLUnknownKey(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "profile.yaml", "usrname: typo\n")

	_, err := Load(Options{File: path})

	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_YAMLMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(Options{File: filepath.Join(t.TempDir(), "absent.yaml")})

	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvUsername, "real-env")
	path := writeFile(t, "test.env", "GITHUB_TOKEN=from-dotenv\nGITHUB_USERNAME=from-dotenv\nPERIOD_LABEL=dotenv label\n")

	cfg, err := Load(Options{EnvFile: path})

	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Token)
	assert.Equal(t, "real-env", cfg.Username, "the real environment wins over the dotenv file")
	assert.Equal(t, "dotenv label", cfg.PeriodLabel)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.Token = "t"
		cfg.Username = "u"
		return cfg
	}

	testCases := []struct {
		name        string
		mutate      func(*Config)
		expectedErr error
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing token", mutate: func(c *Config) { c.Token = "" }, expectedErr: ErrMissing},
		{name: "missing username", mutate: func(c *Config) { c.Username = "" }, expectedErr: ErrMissing},
		{name: "zero period", mutate: func(c *Config) { c.PeriodDays = 0 }, expectedErr: ErrInvalid},
		{name: "negative limit", mutate: func(c *Config) { c.TopRepositories = -1 }, expectedErr: ErrInvalid},
		{name: "missing end marker", mutate: func(c *Config) { c.Markers.End = "" }, expectedErr: ErrMissing},
		{name: "identical markers", mutate: func(c *Config) { c.Markers.End = c.Markers.Start }, expectedErr: ErrInvalid},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()

			if tc.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expectedErr)
			}
		})
	}
}

func TestLoad_EmptyYAMLFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "profile.yaml", "")

	cfg, err := Load(Options{File: path})

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLUsernameNotOverriddenByRepositoryOwner(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvRepositoryOwner, "my-org")
	path := writeFile(t, "profile.yaml", "username: alice\n")

	cfg, err := Load(Options{File: path})

	require.NoError(t, err)
	assert.Equal(t, "alice", cfg.Username)
}

func TestLoad_UsernameEnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvUsername, "bob")
	t.Setenv(EnvRepositoryOwner, "my-org")
	path := writeFile(t, "profile.yaml", "username: alice\n")

	cfg, err := Load(Options{File: path})

	require.NoError(t, err)
	assert.Equal(t, "bob", cfg.Username)
}
