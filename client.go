package object

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/input-output-hk/catalyst-forge-libs/fs"
	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"

	"github.com/input-output-hk/catalyst-forge-libs/object/errors"
	"github.com/input-output-hk/catalyst-forge-libs/object/internal/httpapi"
	"github.com/input-output-hk/catalyst-forge-libs/object/internal/operations/upload"
	"github.com/input-output-hk/catalyst-forge-libs/object/objectapi"
	"github.com/input-output-hk/catalyst-forge-libs/object/objecttypes"
)

// Client uploads objects through an object service handle.
// It is safe for concurrent use; each upload is independent.
type Client struct {
	// api is the service handle every upload is sent through
	api objectapi.ObjectAPI

	// config holds the resolved client configuration
	config objecttypes.ClientConfig

	// mu protects concurrent access to client configuration
	mu sync.RWMutex
}

func defaultConfig() objecttypes.ClientConfig {
	return objecttypes.ClientConfig{
		ExpiresIn: upload.DefaultExpiresIn,
		Clock:     objecttypes.SystemClock{},
		Logger:    slog.New(slog.DiscardHandler),
	}
}

func resolveConfig(opts []objecttypes.Option) objecttypes.ClientConfig {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Filesystem == nil {
		cfg.Filesystem = billy.NewOSFS("/")
	}
	return cfg
}

// New creates a client that talks to the object service over HTTP.
// A root URL is required.
//
// Example:
//
//	client, err := object.New(
//	    object.WithRootURL("https://tc.example.com"),
//	    object.WithTimeout(30*time.Second),
//	)
func New(opts ...objecttypes.Option) (*Client, error) {
	cfg := resolveConfig(opts)

	if cfg.RootURL == "" {
		return nil, errors.NewError("client initialization", errors.ErrInvalidConfig).
			WithMessage("root URL is required")
	}

	httpClient := cfg.HTTPClient
	switch {
	case httpClient == nil:
		httpClient = &http.Client{Timeout: cfg.Timeout}
	case cfg.Timeout > 0:
		withTimeout := *httpClient
		withTimeout.Timeout = cfg.Timeout
		httpClient = &withTimeout
	}

	api, err := httpapi.New(cfg.RootURL, httpClient, cfg.Logger)
	if err != nil {
		return nil, errors.NewError("client initialization", err)
	}

	return &Client{
		api:    api,
		config: cfg,
	}, nil
}

// NewWithService creates a client that uploads through the given service handle.
// Transport options (root URL, HTTP client, timeout) are ignored.
func NewWithService(api objectapi.ObjectAPI, opts ...objecttypes.Option) *Client {
	return &Client{
		api:    api,
		config: resolveConfig(opts),
	}
}

// SetFilesystem sets the filesystem used by UploadFile.
func (c *Client) SetFilesystem(filesystem fs.Filesystem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.config.Filesystem = filesystem
}

// Close releases any resources held by the client.
// Currently a no-op; the HTTP client belongs to the caller.
func (c *Client) Close() error {
	return nil
}

func (c *Client) getClientConfig() objecttypes.ClientConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *Client) uploader(cfg objecttypes.ClientConfig) *upload.Uploader {
	return upload.New(c.api,
		upload.WithClock(cfg.Clock),
		upload.WithExpiresIn(cfg.ExpiresIn),
		upload.WithLogger(cfg.Logger),
	)
}
