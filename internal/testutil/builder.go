package testutil

import (
	"context"

	"github.com/input-output-hk/catalyst-forge-libs/object/objectapi"
)

// MockBuilder provides a fluent interface for building mock object service handles.
type MockBuilder struct {
	mock *MockObjectAPI
}

// NewMockBuilder creates a new mock builder.
func NewMockBuilder() *MockBuilder {
	return &MockBuilder{mock: &MockObjectAPI{}}
}

// Build returns the configured mock.
func (b *MockBuilder) Build() *MockObjectAPI {
	return b.mock
}

// WithCreateUpload sets a custom CreateUpload function.
func (b *MockBuilder) WithCreateUpload(
	fn func(context.Context, string, *objectapi.CreateUploadRequest) (*objectapi.CreateUploadResponse, error),
) *MockBuilder {
	b.mock.CreateUploadFunc = fn
	return b
}

// WithFinishUpload sets a custom FinishUpload function.
func (b *MockBuilder) WithFinishUpload(fn func(context.Context, string, *objectapi.FinishUploadRequest) error) *MockBuilder {
	b.mock.FinishUploadFunc = fn
	return b
}

// WithCreateError makes CreateUpload fail with err.
func (b *MockBuilder) WithCreateError(err error) *MockBuilder {
	return b.WithCreateUpload(func(context.Context, string, *objectapi.CreateUploadRequest) (*objectapi.CreateUploadResponse, error) {
		return nil, err
	})
}

// WithFinishError makes FinishUpload fail with err.
func (b *MockBuilder) WithFinishError(err error) *MockBuilder {
	return b.WithFinishUpload(func(context.Context, string, *objectapi.FinishUploadRequest) error {
		return err
	})
}

// WithRejectedMethods makes CreateUpload succeed without selecting any proposed method.
func (b *MockBuilder) WithRejectedMethods() *MockBuilder {
	return b.WithCreateUpload(func(
		_ context.Context,
		_ string,
		req *objectapi.CreateUploadRequest,
	) (*objectapi.CreateUploadResponse, error) {
		return &objectapi.CreateUploadResponse{
			Expires:   req.Expires,
			ProjectID: req.ProjectID,
			UploadID:  req.UploadID,
		}, nil
	})
}
