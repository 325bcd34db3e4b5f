// Package testutil provides test utilities and mocks for object service operations.
// This package is internal and should only be used for testing within the object module.
package testutil

import (
	"context"
	"sync"

	"github.com/input-output-hk/catalyst-forge-libs/object/objectapi"
)

// CreateUploadCall records one CreateUpload invocation.
type CreateUploadCall struct {
	Name    string
	Request objectapi.CreateUploadRequest
}

// FinishUploadCall records one FinishUpload invocation.
type FinishUploadCall struct {
	Name    string
	Request objectapi.FinishUploadRequest
}

// MockObjectAPI is a mock implementation of the ObjectAPI interface for testing.
// It allows customization of each operation through function fields and records every call.
type MockObjectAPI struct {
	CreateUploadFunc func(context.Context, string, *objectapi.CreateUploadRequest) (*objectapi.CreateUploadResponse, error)
	FinishUploadFunc func(context.Context, string, *objectapi.FinishUploadRequest) error

	mu          sync.Mutex
	createCalls []CreateUploadCall
	finishCalls []FinishUploadCall
}

var _ objectapi.ObjectAPI = (*MockObjectAPI)(nil)

// CreateUpload mocks the create-upload operation.
// Without a CreateUploadFunc the service accepts the inline method.
func (m *MockObjectAPI) CreateUpload(
	ctx context.Context,
	name string,
	req *objectapi.CreateUploadRequest,
) (*objectapi.CreateUploadResponse, error) {
	m.mu.Lock()
	m.createCalls = append(m.createCalls, CreateUploadCall{Name: name, Request: *req})
	m.mu.Unlock()

	if m.CreateUploadFunc != nil {
		return m.CreateUploadFunc(ctx, name, req)
	}
	return AcceptInline(req), nil
}

// FinishUpload mocks the finish-upload operation.
func (m *MockObjectAPI) FinishUpload(ctx context.Context, name string, req *objectapi.FinishUploadRequest) error {
	m.mu.Lock()
	m.finishCalls = append(m.finishCalls, FinishUploadCall{Name: name, Request: *req})
	m.mu.Unlock()

	if m.FinishUploadFunc != nil {
		return m.FinishUploadFunc(ctx, name, req)
	}
	return nil
}

// CreateCalls returns a copy of the recorded CreateUpload calls.
func (m *MockObjectAPI) CreateCalls() []CreateUploadCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]CreateUploadCall(nil), m.createCalls...)
}

// FinishCalls returns a copy of the recorded FinishUpload calls.
func (m *MockObjectAPI) FinishCalls() []FinishUploadCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]FinishUploadCall(nil), m.finishCalls...)
}

// AcceptInline builds the response of a service that selected the inline method.
func AcceptInline(req *objectapi.CreateUploadRequest) *objectapi.CreateUploadResponse {
	return &objectapi.CreateUploadResponse{
		Expires:      req.Expires,
		ProjectID:    req.ProjectID,
		UploadID:     req.UploadID,
		UploadMethod: objectapi.SelectedMethod{DataInline: true},
	}
}
