package upload

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/input-output-hk/catalyst-forge-libs/object/errors"
	"github.com/input-output-hk/catalyst-forge-libs/object/internal/slug"
	"github.com/input-output-hk/catalyst-forge-libs/object/objectapi"
	"github.com/input-output-hk/catalyst-forge-libs/object/objecttypes"
)

const (
	// DataInlineMaxSize is the exclusive upper bound on object size for the inline method.
	DataInlineMaxSize int64 = 8192

	// DefaultExpiresIn is how long an unfinished upload is kept when no TTL is configured.
	DefaultExpiresIn = time.Hour

	// ExpiresLayout formats upload expiry as ISO-8601 UTC with millisecond precision.
	ExpiresLayout = "2006-01-02T15:04:05.000Z"
)

// Uploader handles object uploads against an object service handle.
type Uploader struct {
	api         objectapi.ObjectAPI
	clock       objecttypes.Clock
	expiresIn   time.Duration
	newUploadID func() string
	logger      *slog.Logger
}

// Option configures an Uploader.
type Option func(*Uploader)

// WithClock sets the clock used to compute upload expiry.
func WithClock(clock objecttypes.Clock) Option {
	return func(u *Uploader) {
		if clock != nil {
			u.clock = clock
		}
	}
}

// WithExpiresIn sets how far in the future uploads expire.
func WithExpiresIn(d time.Duration) Option {
	return func(u *Uploader) {
		if d > 0 {
			u.expiresIn = d
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(u *Uploader) {
		if logger != nil {
			u.logger = logger
		}
	}
}

// WithUploadIDFunc replaces the upload id generator.
func WithUploadIDFunc(fn func() string) Option {
	return func(u *Uploader) {
		if fn != nil {
			u.newUploadID = fn
		}
	}
}

// New creates a new Uploader instance.
func New(api objectapi.ObjectAPI, opts ...Option) *Uploader {
	u := &Uploader{
		api:         api,
		clock:       objecttypes.SystemClock{},
		expiresIn:   DefaultExpiresIn,
		newUploadID: slug.New,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Upload uploads the request's source as the named object.
// It measures the source, which moves its read position, and chooses the upload
// method by size. The source is borrowed and never closed.
func (u *Uploader) Upload(
	ctx context.Context,
	req *objecttypes.UploadRequest,
	config *objecttypes.UploadConfig,
) (*objecttypes.UploadResult, error) {
	if config == nil {
		config = &objecttypes.UploadConfig{}
	}
	startTime := time.Now()

	size, err := req.Source.Len()
	if err != nil {
		return nil, u.fail(ctx, req, config, errors.NewObjectError("upload", req.ProjectID, req.Name,
			fmt.Errorf("%w: measuring length: %w", errors.ErrSourceIO, err)))
	}

	u.logger.DebugContext(ctx, "measured upload source",
		"project_id", req.ProjectID,
		"name", req.Name,
		"size", size,
	)

	if size >= DataInlineMaxSize {
		return nil, u.fail(ctx, req, config, errors.NewObjectError("upload", req.ProjectID, req.Name,
			fmt.Errorf("%w: objects of %d bytes need a non-inline upload method (inline limit is %d bytes)",
				errors.ErrNotImplemented, size, DataInlineMaxSize)))
	}

	if err := req.Source.Reset(); err != nil {
		return nil, u.fail(ctx, req, config, errors.NewObjectError("upload", req.ProjectID, req.Name,
			fmt.Errorf("%w: rewinding: %w", errors.ErrSourceIO, err)))
	}
	data, err := io.ReadAll(req.Source)
	if err != nil {
		return nil, u.fail(ctx, req, config, errors.NewObjectError("upload", req.ProjectID, req.Name,
			fmt.Errorf("%w: reading: %w", errors.ErrSourceIO, err)))
	}

	result, err := u.uploadDataInline(ctx, req, data)
	if err != nil {
		return nil, u.fail(ctx, req, config, err)
	}
	result.Duration = time.Since(startTime)

	if config.ProgressTracker != nil {
		config.ProgressTracker.Update(result.Size, result.Size)
		config.ProgressTracker.Complete()
	}

	u.logger.InfoContext(ctx, "object uploaded",
		"project_id", result.ProjectID,
		"name", result.Name,
		"upload_id", result.UploadID,
		"method", string(result.Method),
		"size", result.Size,
		"duration", result.Duration,
	)

	return result, nil
}

// uploadDataInline sends data inside the create-upload request, then finishes the upload.
func (u *Uploader) uploadDataInline(
	ctx context.Context,
	req *objecttypes.UploadRequest,
	data []byte,
) (*objecttypes.UploadResult, error) {
	uploadID := u.newUploadID()
	expires := u.clock.Now().Add(u.expiresIn).UTC().Truncate(time.Millisecond)

	createReq := &objectapi.CreateUploadRequest{
		Expires:   expires.Format(ExpiresLayout),
		ProjectID: req.ProjectID,
		UploadID:  uploadID,
		ProposedUploadMethods: objectapi.ProposedUploadMethods{
			DataInline: &objectapi.DataInline{
				ContentType: req.ContentType,
				ObjectData:  base64.StdEncoding.EncodeToString(data),
			},
		},
	}

	u.logger.DebugContext(ctx, "creating upload",
		"project_id", req.ProjectID,
		"name", req.Name,
		"upload_id", uploadID,
		"method", string(objecttypes.MethodDataInline),
	)

	resp, err := u.api.CreateUpload(ctx, req.Name, createReq)
	if err != nil {
		return nil, errors.NewObjectError("createUpload", req.ProjectID, req.Name, err)
	}
	if resp == nil || !resp.UploadMethod.DataInline {
		return nil, errors.NewObjectError("createUpload", req.ProjectID, req.Name,
			fmt.Errorf("%w: service did not select %s", errors.ErrUploadMethodRejected, objecttypes.MethodDataInline))
	}

	u.logger.DebugContext(ctx, "finishing upload",
		"project_id", req.ProjectID,
		"name", req.Name,
		"upload_id", uploadID,
	)

	err = u.api.FinishUpload(ctx, req.Name, &objectapi.FinishUploadRequest{
		ProjectID: req.ProjectID,
		UploadID:  uploadID,
	})
	if err != nil {
		return nil, errors.NewObjectError("finishUpload", req.ProjectID, req.Name, err)
	}

	return &objecttypes.UploadResult{
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		UploadID:    uploadID,
		ContentType: req.ContentType,
		Method:      objecttypes.MethodDataInline,
		Size:        int64(len(data)),
		Expires:     expires,
	}, nil
}

// fail reports err to the progress tracker and the log, then returns it.
func (u *Uploader) fail(
	ctx context.Context,
	req *objecttypes.UploadRequest,
	config *objecttypes.UploadConfig,
	err error,
) error {
	if config.ProgressTracker != nil {
		config.ProgressTracker.Error(err)
	}

	u.logger.ErrorContext(ctx, "object upload failed",
		"project_id", req.ProjectID,
		"name", req.Name,
		"code", errors.CodeOf(err).String(),
		"error", err,
	)

	return err
}
