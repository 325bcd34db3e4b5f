package object

import (
	"context"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/input-output-hk/catalyst-forge-libs/object/errors"
	"github.com/input-output-hk/catalyst-forge-libs/object/internal/source"
	"github.com/input-output-hk/catalyst-forge-libs/object/internal/validation"
	"github.com/input-output-hk/catalyst-forge-libs/object/objecttypes"
)

// DefaultContentType is used when a file's content type cannot be determined.
const DefaultContentType = "application/octet-stream"

// sniffLen is how many leading bytes are read for content type detection.
const sniffLen = 3072

// Upload uploads the content of data as the object name in projectID.
// The reader is measured by seeking to its end and rewound before reading,
// so its position on return is unspecified. The reader is not closed.
//
// Returns:
//   - *UploadResult: Contains the upload id, method, size and expiry
//   - error: Returns an error if the upload fails
//
// Errors:
//   - ErrInvalidInput: If a project, name or content type is missing, or data is nil
//   - ErrNotImplemented: If the object is 8 KiB or larger
//   - ErrSourceIO: If data cannot be measured or read
//   - ErrUploadMethodRejected: If the service refuses the inline method
//   - Service and transport errors wrapped in Error type
//
// Example:
//
//	f, _ := os.Open("notes.txt")
//	defer f.Close()
//	result, err := client.Upload(ctx, "proj-1", "notes.txt", "text/plain", f)
func (c *Client) Upload(
	ctx context.Context,
	projectID, name, contentType string,
	data io.ReadSeeker,
	opts ...objecttypes.UploadOption,
) (*objecttypes.UploadResult, error) {
	if data == nil {
		return nil, errors.NewObjectError("upload", projectID, name, errors.ErrInvalidInput).
			WithMessage("data cannot be nil")
	}
	return c.UploadSource(ctx, projectID, name, contentType, source.FromReadSeeker(data), opts...)
}

// UploadBytes uploads an in-memory payload as the object name in projectID.
func (c *Client) UploadBytes(
	ctx context.Context,
	projectID, name, contentType string,
	data []byte,
	opts ...objecttypes.UploadOption,
) (*objecttypes.UploadResult, error) {
	return c.UploadSource(ctx, projectID, name, contentType, source.FromBytes(data), opts...)
}

// UploadSource uploads the content of src as the object name in projectID.
// An empty projectID falls back to the client's default project.
func (c *Client) UploadSource(
	ctx context.Context,
	projectID, name, contentType string,
	src objecttypes.Source,
	opts ...objecttypes.UploadOption,
) (*objecttypes.UploadResult, error) {
	cfg := c.getClientConfig()
	projectID = c.resolveProject(cfg, projectID)

	if err := validateRequest(projectID, name, contentType); err != nil {
		return nil, errors.NewObjectError("upload", projectID, name, err)
	}
	if src == nil {
		return nil, errors.NewObjectError("upload", projectID, name, errors.ErrInvalidInput).
			WithMessage("source cannot be nil")
	}

	config := &objecttypes.UploadOptionConfig{}
	for _, opt := range opts {
		opt(config)
	}

	return c.uploader(cfg).Upload(ctx, &objecttypes.UploadRequest{
		ProjectID:   projectID,
		Name:        name,
		ContentType: contentType,
		Source:      src,
	}, &objecttypes.UploadConfig{
		ProgressTracker: config.ProgressTracker,
	})
}

// UploadFile uploads a file from the client's filesystem as the object name in projectID.
// The content type is taken from WithContentType if given, otherwise it is
// detected from the file's content and then its extension.
//
// Errors:
//   - ErrInvalidInput: If project or name is missing, or path is empty or a directory
//   - File system errors if the file cannot be opened
//   - Any error returned by UploadSource
//
// Example:
//
//	result, err := client.UploadFile(ctx, "proj-1", "logs/build.log", "/tmp/build.log",
//	    object.WithProgress(tracker),
//	)
func (c *Client) UploadFile(
	ctx context.Context,
	projectID, name, path string,
	opts ...objecttypes.UploadOption,
) (*objecttypes.UploadResult, error) {
	cfg := c.getClientConfig()
	projectID = c.resolveProject(cfg, projectID)

	if path == "" {
		return nil, errors.NewObjectError("uploadFile", projectID, name, errors.ErrInvalidInput).
			WithMessage("path cannot be empty")
	}

	info, err := cfg.Filesystem.Stat(path)
	if err != nil {
		return nil, errors.NewObjectError("uploadFile", projectID, name, err)
	}
	if info.IsDir() {
		return nil, errors.NewObjectError("uploadFile", projectID, name, errors.ErrInvalidInput).
			WithMessage("path points to a directory, not a file")
	}

	config := &objecttypes.UploadOptionConfig{}
	for _, opt := range opts {
		opt(config)
	}

	file, err := cfg.Filesystem.Open(path)
	if err != nil {
		return nil, errors.NewObjectError("uploadFile", projectID, name, err)
	}
	defer file.Close()

	src := source.FromFile(file)
	contentType := config.ContentType
	if contentType == "" {
		contentType = detectContentType(src)
	}

	return c.UploadSource(ctx, projectID, name, contentType, src, opts...)
}

func (c *Client) resolveProject(cfg objecttypes.ClientConfig, projectID string) string {
	if projectID == "" {
		return cfg.DefaultProject
	}
	return projectID
}

func validateRequest(projectID, name, contentType string) error {
	if err := validation.ValidateProjectID(projectID); err != nil {
		return err
	}
	if err := validation.ValidateName(name); err != nil {
		return err
	}
	return validation.ValidateContentType(contentType)
}

// detectContentType sniffs the leading bytes of src with mimetype, falling
// back to the file extension when the content is not recognized.
// The source is left at an unspecified position.
func detectContentType(src *source.File) string {
	buf := make([]byte, sniffLen)
	n, _ := io.ReadFull(src, buf)
	if n > 0 {
		if mt := mimetype.Detect(buf[:n]); mt != nil && mt.String() != DefaultContentType {
			return mt.String()
		}
	}
	return contentTypeFromExtension(src.Name())
}

func contentTypeFromExtension(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != "" {
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			return byExt
		}
	}
	return DefaultContentType
}
