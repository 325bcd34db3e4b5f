package object

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/input-output-hk/catalyst-forge-libs/object/errors"
	"github.com/input-output-hk/catalyst-forge-libs/object/objecttypes"
)

// LoadConfig reads client configuration from the environment:
//
//	OBJECT_ROOT_URL           root URL of the deployment (required)
//	OBJECT_PROJECT_ID         default project for uploads
//	OBJECT_UPLOAD_EXPIRES_IN  expiry of unfinished uploads (default 1h)
//	OBJECT_TIMEOUT            per-request HTTP timeout (default none)
func LoadConfig() (*objecttypes.EnvConfig, error) {
	var cfg objecttypes.EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.NewError("load config", fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err))
	}
	return &cfg, nil
}

// EnvOptions converts environment configuration into client options.
func EnvOptions(cfg *objecttypes.EnvConfig) []objecttypes.Option {
	return []objecttypes.Option{
		WithRootURL(cfg.RootURL),
		WithDefaultProject(cfg.ProjectID),
		WithUploadExpiresIn(cfg.ExpiresIn),
		WithTimeout(cfg.Timeout),
	}
}

// NewFromEnv creates an HTTP client configured from the environment.
// Options passed here override the environment.
func NewFromEnv(opts ...objecttypes.Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return New(append(EnvOptions(cfg), opts...)...)
}
