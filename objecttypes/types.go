// Package objecttypes provides shared type definitions for the object module.
package objecttypes

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/input-output-hk/catalyst-forge-libs/fs"
)

// UploadMethod names the strategy used to transfer object data.
type UploadMethod string

const (
	// MethodDataInline embeds the whole object, base64-encoded, in the create-upload request
	MethodDataInline UploadMethod = "dataInline"
)

// Source is a borrowed, seekable data source that may be traversed more than once.
// The uploader never closes a Source; that remains the caller's responsibility.
type Source interface {
	io.Reader

	// Len returns the total length of the data. It may move the read position.
	Len() (int64, error)

	// Reset moves the read position back to the first byte.
	Reset() error
}

// Clock supplies the current time. Tests inject a fixed clock to make expiry deterministic.
type Clock interface {
	Now() time.Time
}

// SystemClock is a Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ProgressTracker defines the interface for tracking transfer progress.
type ProgressTracker interface {
	// Update is called with transfer progress
	Update(bytesTransferred, totalBytes int64)

	// Complete is called when the upload has been finished at the service
	Complete()

	// Error is called when the upload fails
	Error(err error)
}

// ClientConfig holds configuration options for the object client.
type ClientConfig struct {
	// RootURL is the base URL of the deployment hosting the object service
	RootURL string

	// Timeout bounds each HTTP request. Zero means no timeout.
	Timeout time.Duration

	// HTTPClient is the pre-authenticated client used to reach the service
	HTTPClient *http.Client

	// ExpiresIn is how long the service should keep an unfinished upload
	ExpiresIn time.Duration

	// Clock supplies the time used to compute upload expiry
	Clock Clock

	// Logger receives structured logs for each upload
	Logger *slog.Logger

	// DefaultProject is used when an upload does not name a project
	DefaultProject string

	// Filesystem is used by UploadFile to open local files
	Filesystem fs.Filesystem
}

// Option is a functional option for configuring the object client.
type Option func(*ClientConfig)

// UploadOptionConfig holds per-upload settings.
type UploadOptionConfig struct {
	// ContentType overrides content type detection in UploadFile
	ContentType string

	// ProgressTracker receives progress for this upload
	ProgressTracker ProgressTracker
}

// UploadOption is a functional option for configuring a single upload.
type UploadOption func(*UploadOptionConfig)

// UploadConfig is the resolved configuration handed to the internal upload operation.
type UploadConfig struct {
	ProgressTracker ProgressTracker
}

// UploadRequest describes one object upload.
type UploadRequest struct {
	// ProjectID is the project the object belongs to
	ProjectID string

	// Name is the object name at the service
	Name string

	// ContentType is recorded verbatim with the object
	ContentType string

	// Source supplies the object data
	Source Source
}

// UploadResult contains information about a finished upload.
type UploadResult struct {
	// ProjectID is the project the object belongs to
	ProjectID string

	// Name is the object name
	Name string

	// UploadID is the token that correlated the create and finish calls
	UploadID string

	// ContentType is the content type sent with the object
	ContentType string

	// Method is the upload method the service accepted
	Method UploadMethod

	// Size is the object size in bytes
	Size int64

	// Expires is the expiry proposed for the upload
	Expires time.Time

	// Duration is how long the upload took
	Duration time.Duration
}

// EnvConfig is the environment-provided client configuration.
type EnvConfig struct {
	RootURL   string        `envconfig:"OBJECT_ROOT_URL" required:"true"`
	ProjectID string        `envconfig:"OBJECT_PROJECT_ID"`
	ExpiresIn time.Duration `envconfig:"OBJECT_UPLOAD_EXPIRES_IN" default:"1h"`
	Timeout   time.Duration `envconfig:"OBJECT_TIMEOUT" default:"0s"`
}
