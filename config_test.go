package object

import (
	stderrors "errors"
	"os"
	"testing"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/object/errors"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name          string
		env           map[string]string
		wantRootURL   string
		wantProject   string
		wantExpiresIn time.Duration
		wantTimeout   time.Duration
	}{
		{
			name:          "defaults",
			env:           map[string]string{"OBJECT_ROOT_URL": "https://tc.example.com"},
			wantRootURL:   "https://tc.example.com",
			wantExpiresIn: time.Hour,
		},
		{
			name: "all set",
			env: map[string]string{
				"OBJECT_ROOT_URL":          "http://localhost:8080",
				"OBJECT_PROJECT_ID":        "proj-1",
				"OBJECT_UPLOAD_EXPIRES_IN": "24h",
				"OBJECT_TIMEOUT":           "30s",
			},
			wantRootURL:   "http://localhost:8080",
			wantProject:   "proj-1",
			wantExpiresIn: 24 * time.Hour,
			wantTimeout:   30 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearObjectEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig()
			require.NoError(t, err)
			assert.Equal(t, tt.wantRootURL, cfg.RootURL)
			assert.Equal(t, tt.wantProject, cfg.ProjectID)
			assert.Equal(t, tt.wantExpiresIn, cfg.ExpiresIn)
			assert.Equal(t, tt.wantTimeout, cfg.Timeout)
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing root url",
			env:  map[string]string{},
		},
		{
			name: "malformed duration",
			env: map[string]string{
				"OBJECT_ROOT_URL":          "https://tc.example.com",
				"OBJECT_UPLOAD_EXPIRES_IN": "soon",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearObjectEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, errors.ErrInvalidConfig)
		})
	}
}

func TestLoadConfig_KeepsParseError(t *testing.T) {
	clearObjectEnv(t)
	t.Setenv("OBJECT_ROOT_URL", "https://tc.example.com")
	t.Setenv("OBJECT_TIMEOUT", "forever")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)

	var parseErr *envconfig.ParseError
	require.True(t, stderrors.As(err, &parseErr))
	assert.Equal(t, "OBJECT_TIMEOUT", parseErr.KeyName)
	assert.Equal(t, "forever", parseErr.Value)
}

func TestNewFromEnv(t *testing.T) {
	clearObjectEnv(t)
	t.Setenv("OBJECT_ROOT_URL", "https://tc.example.com")
	t.Setenv("OBJECT_PROJECT_ID", "proj-env")
	t.Setenv("OBJECT_UPLOAD_EXPIRES_IN", "2h")

	client, err := NewFromEnv(WithDefaultProject("proj-override"))
	require.NoError(t, err)

	cfg := client.getClientConfig()
	assert.Equal(t, "https://tc.example.com", cfg.RootURL)
	assert.Equal(t, "proj-override", cfg.DefaultProject)
	assert.Equal(t, 2*time.Hour, cfg.ExpiresIn)
}

func TestNewFromEnv_MissingRootURL(t *testing.T) {
	clearObjectEnv(t)

	_, err := NewFromEnv()
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidConfig, errors.CodeOf(err))
}

// clearObjectEnv unsets every OBJECT_* variable for the duration of the test.
func clearObjectEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OBJECT_ROOT_URL",
		"OBJECT_PROJECT_ID",
		"OBJECT_UPLOAD_EXPIRES_IN",
		"OBJECT_TIMEOUT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
