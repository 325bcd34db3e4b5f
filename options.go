package object

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/input-output-hk/catalyst-forge-libs/fs"

	"github.com/input-output-hk/catalyst-forge-libs/object/objecttypes"
)

// WithRootURL sets the root URL of the deployment hosting the object service.
func WithRootURL(rootURL string) objecttypes.Option {
	return func(c *objecttypes.ClientConfig) {
		c.RootURL = rootURL
	}
}

// WithHTTPClient sets the pre-authenticated HTTP client used to reach the service.
func WithHTTPClient(client *http.Client) objecttypes.Option {
	return func(c *objecttypes.ClientConfig) {
		c.HTTPClient = client
	}
}

// WithTimeout sets the timeout for each HTTP request.
// Default is no timeout (0). Values should be positive durations.
func WithTimeout(timeout time.Duration) objecttypes.Option {
	return func(c *objecttypes.ClientConfig) {
		c.Timeout = timeout
	}
}

// WithUploadExpiresIn sets how long the service keeps an upload that was created but not finished.
// Default is one hour.
func WithUploadExpiresIn(d time.Duration) objecttypes.Option {
	return func(c *objecttypes.ClientConfig) {
		if d > 0 {
			c.ExpiresIn = d
		}
	}
}

// WithClock sets the clock used to compute upload expiry.
func WithClock(clock objecttypes.Clock) objecttypes.Option {
	return func(c *objecttypes.ClientConfig) {
		if clock != nil {
			c.Clock = clock
		}
	}
}

// WithLogger sets the structured logger. Object data is never logged.
func WithLogger(logger *slog.Logger) objecttypes.Option {
	return func(c *objecttypes.ClientConfig) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithDefaultProject sets the project used when an upload passes an empty project id.
func WithDefaultProject(projectID string) objecttypes.Option {
	return func(c *objecttypes.ClientConfig) {
		c.DefaultProject = projectID
	}
}

// WithFilesystem sets the filesystem UploadFile reads from.
// If not specified, defaults to the OS filesystem.
func WithFilesystem(filesystem fs.Filesystem) objecttypes.Option {
	return func(c *objecttypes.ClientConfig) {
		c.Filesystem = filesystem
	}
}

// WithContentType sets the content type for UploadFile, skipping detection.
func WithContentType(contentType string) objecttypes.UploadOption {
	return func(c *objecttypes.UploadOptionConfig) {
		c.ContentType = contentType
	}
}

// WithProgress sets a progress tracker for an upload.
func WithProgress(tracker objecttypes.ProgressTracker) objecttypes.UploadOption {
	return func(c *objecttypes.UploadOptionConfig) {
		c.ProgressTracker = tracker
	}
}
