// Package objectapi defines the object service operations consumed by the uploader.
// Any pre-authenticated service handle that implements ObjectAPI can drive an upload;
// the module ships an HTTP implementation and tests use function-field mocks.
package objectapi

import (
	"context"
)

// ObjectAPI defines the object service operations used by this module.
// Both operations are addressed by object name and take a JSON-shaped payload.
type ObjectAPI interface {
	// CreateUpload starts an upload for the named object, proposing one or more upload methods.
	// A successful call must return a non-nil response; a nil response or one whose
	// UploadMethod selects nothing is treated as the service rejecting every proposed method.
	CreateUpload(ctx context.Context, name string, req *CreateUploadRequest) (*CreateUploadResponse, error)

	// FinishUpload marks the upload identified by the request's upload id as complete
	FinishUpload(ctx context.Context, name string, req *FinishUploadRequest) error
}

// CreateUploadRequest is the payload of the create-upload operation.
type CreateUploadRequest struct {
	// Expires is an ISO-8601 UTC timestamp after which the service may discard an unfinished upload
	Expires string `json:"expires"`

	// ProjectID is the project the object belongs to
	ProjectID string `json:"projectId"`

	// UploadID correlates this create call with the matching finish call
	UploadID string `json:"uploadId"`

	// ProposedUploadMethods lists the methods the client is able to use
	ProposedUploadMethods ProposedUploadMethods `json:"proposedUploadMethods"`
}

// ProposedUploadMethods is the set of upload methods offered to the service.
// Only the inline method has a defined shape.
type ProposedUploadMethods struct {
	DataInline *DataInline `json:"dataInline,omitempty"`
}

// DataInline carries the whole object in the create request.
type DataInline struct {
	// ContentType is passed through verbatim from the caller
	ContentType string `json:"contentType"`

	// ObjectData is the standard, padded base64 encoding of the object bytes
	ObjectData string `json:"objectData"`
}

// CreateUploadResponse is the service's answer to CreateUpload.
type CreateUploadResponse struct {
	Expires      string         `json:"expires,omitempty"`
	ProjectID    string         `json:"projectId,omitempty"`
	UploadID     string         `json:"uploadId,omitempty"`
	UploadMethod SelectedMethod `json:"uploadMethod"`
}

// SelectedMethod reports which proposed method the service accepted.
// An empty value means none of the proposals was acceptable.
type SelectedMethod struct {
	DataInline bool `json:"dataInline,omitzero"`
}

// FinishUploadRequest is the payload of the finish-upload operation.
type FinishUploadRequest struct {
	ProjectID string `json:"projectId"`
	UploadID  string `json:"uploadId"`
}
