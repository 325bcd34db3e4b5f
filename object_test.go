package object

import (
	"bytes"
	"encoding/base64"
	"testing"
	"time"

	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/object/errors"
	"github.com/input-output-hk/catalyst-forge-libs/object/internal/testutil"
	"github.com/input-output-hk/catalyst-forge-libs/object/objecttypes"
)

var testClock = testutil.FixedClock{T: time.Date(2021, 2, 13, 20, 48, 4, 182_000_000, time.UTC)}

func TestClient_Upload(t *testing.T) {
	api := testutil.NewMockBuilder().Build()
	client := NewWithService(api, WithClock(testClock))

	result, err := client.Upload(t.Context(), "proj-1", "greeting.txt", "text/plain", bytes.NewReader([]byte("hello")))
	require.NoError(t, err)

	creates := api.CreateCalls()
	finishes := api.FinishCalls()
	require.Len(t, creates, 1)
	require.Len(t, finishes, 1)

	create := creates[0]
	assert.Equal(t, "greeting.txt", create.Name)
	assert.Equal(t, "proj-1", create.Request.ProjectID)
	assert.Equal(t, "2021-02-13T21:48:04.182Z", create.Request.Expires)
	require.NotNil(t, create.Request.ProposedUploadMethods.DataInline)
	assert.Equal(t, "text/plain", create.Request.ProposedUploadMethods.DataInline.ContentType)
	assert.Equal(t, "aGVsbG8=", create.Request.ProposedUploadMethods.DataInline.ObjectData)

	assert.Equal(t, "greeting.txt", finishes[0].Name)
	assert.Equal(t, create.Request.UploadID, finishes[0].Request.UploadID)
	assert.Equal(t, "proj-1", finishes[0].Request.ProjectID)

	assert.Equal(t, create.Request.UploadID, result.UploadID)
	assert.Equal(t, objecttypes.MethodDataInline, result.Method)
	assert.Equal(t, int64(5), result.Size)
}

func TestClient_UploadBytes_Threshold(t *testing.T) {
	tests := []struct {
		name        string
		size        int
		wantErr     error
		wantCreates int
	}{
		{name: "empty", size: 0, wantCreates: 1},
		{name: "just below limit", size: 8191, wantCreates: 1},
		{name: "at limit", size: 8192, wantErr: errors.ErrNotImplemented},
		{name: "well above limit", size: 64 * 1024, wantErr: errors.ErrNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := testutil.NewMockBuilder().Build()
			client := NewWithService(api)
			data := testutil.GenerateRandomData(tt.size)

			_, err := client.UploadBytes(t.Context(), "proj-1", "blob.bin", "application/octet-stream", data)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, errors.IsNotImplemented(err))
			} else {
				require.NoError(t, err)
				encoded := api.CreateCalls()[0].Request.ProposedUploadMethods.DataInline.ObjectData
				decoded, decErr := base64.StdEncoding.DecodeString(encoded)
				require.NoError(t, decErr)
				assert.Equal(t, data, decoded)
			}
			assert.Len(t, api.CreateCalls(), tt.wantCreates)
			assert.Len(t, api.FinishCalls(), tt.wantCreates)
		})
	}
}

func TestClient_UploadSource_Validation(t *testing.T) {
	tests := []struct {
		name        string
		projectID   string
		objectName  string
		contentType string
		src         objecttypes.Source
	}{
		{name: "missing project", objectName: "a.txt", contentType: "text/plain", src: &testutil.ErrorSource{}},
		{name: "missing name", projectID: "proj-1", contentType: "text/plain", src: &testutil.ErrorSource{}},
		{name: "missing content type", projectID: "proj-1", objectName: "a.txt", src: &testutil.ErrorSource{}},
		{name: "invalid utf-8 name", projectID: "proj-1", objectName: "a\xff.txt", contentType: "text/plain", src: &testutil.ErrorSource{}},
		{name: "nil source", projectID: "proj-1", objectName: "a.txt", contentType: "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := testutil.NewMockBuilder().Build()
			client := NewWithService(api)

			_, err := client.UploadSource(t.Context(), tt.projectID, tt.objectName, tt.contentType, tt.src)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidInput(err))
			assert.Equal(t, errors.CodeInvalidInput, errors.CodeOf(err))
			assert.Empty(t, api.CreateCalls())
		})
	}
}

func TestClient_Upload_NilReader(t *testing.T) {
	client := NewWithService(testutil.NewMockBuilder().Build())

	_, err := client.Upload(t.Context(), "proj-1", "a.txt", "text/plain", nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
}

func TestClient_UploadSource_DefaultProject(t *testing.T) {
	api := testutil.NewMockBuilder().Build()
	client := NewWithService(api, WithDefaultProject("proj-default"))

	result, err := client.UploadBytes(t.Context(), "", "a.txt", "text/plain", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "proj-default", result.ProjectID)
	assert.Equal(t, "proj-default", api.CreateCalls()[0].Request.ProjectID)

	_, err = client.UploadBytes(t.Context(), "proj-explicit", "a.txt", "text/plain", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "proj-explicit", api.CreateCalls()[1].Request.ProjectID)
}

func TestClient_UploadSource_ServiceErrors(t *testing.T) {
	tests := []struct {
		name         string
		api          *testutil.MockObjectAPI
		wantIs       error
		wantFinishes int
	}{
		{
			name:   "create fails",
			api:    testutil.NewMockBuilder().WithCreateError(errors.ErrAccessDenied).Build(),
			wantIs: errors.ErrAccessDenied,
		},
		{
			name:   "method rejected",
			api:    testutil.NewMockBuilder().WithRejectedMethods().Build(),
			wantIs: errors.ErrUploadMethodRejected,
		},
		{
			name:         "finish fails",
			api:          testutil.NewMockBuilder().WithFinishError(errors.ErrServiceUnavailable).Build(),
			wantIs:       errors.ErrServiceUnavailable,
			wantFinishes: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := &testutil.MockProgressTracker{}
			client := NewWithService(tt.api)

			_, err := client.UploadBytes(t.Context(), "proj-1", "a.txt", "text/plain", []byte("hello"),
				WithProgress(tracker))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantIs)
			assert.Len(t, tt.api.CreateCalls(), 1)
			assert.Len(t, tt.api.FinishCalls(), tt.wantFinishes)
			assert.True(t, tracker.ErrorCalled)
			assert.False(t, tracker.CompleteCalled)
		})
	}
}

func TestClient_UploadBytes_Progress(t *testing.T) {
	tracker := &testutil.MockProgressTracker{}
	client := NewWithService(testutil.NewMockBuilder().Build())

	_, err := client.UploadBytes(t.Context(), "proj-1", "a.txt", "text/plain", []byte("hello"), WithProgress(tracker))
	require.NoError(t, err)
	assert.True(t, tracker.UpdateCalled)
	assert.True(t, tracker.CompleteCalled)
	assert.Equal(t, int64(5), tracker.BytesTransferred)
	assert.Equal(t, int64(5), tracker.TotalBytes)
}

func TestClient_UploadFile(t *testing.T) {
	pngHeader := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

	tests := []struct {
		name            string
		path            string
		content         []byte
		opts            []objecttypes.UploadOption
		wantContentType string
	}{
		{
			name:            "sniffed text",
			path:            "/data/notes",
			content:         []byte("hello world\n"),
			wantContentType: "text/plain; charset=utf-8",
		},
		{
			name:            "sniffed png",
			path:            "/data/pixel.bin",
			content:         pngHeader,
			wantContentType: "image/png",
		},
		{
			name:            "extension fallback",
			path:            "/data/blob.json",
			content:         []byte{0x00, 0x01, 0x02, 0xff},
			wantContentType: "application/json",
		},
		{
			name:            "empty file uses extension",
			path:            "/data/empty.txt",
			content:         []byte{},
			wantContentType: "text/plain; charset=utf-8",
		},
		{
			name:            "unknown falls back to default",
			path:            "/data/blob.zzz",
			content:         []byte{0x00, 0x01, 0x02, 0xff},
			wantContentType: DefaultContentType,
		},
		{
			name:            "explicit content type",
			path:            "/data/readme",
			content:         []byte("hello world\n"),
			opts:            []objecttypes.UploadOption{WithContentType("text/markdown")},
			wantContentType: "text/markdown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memFS := billy.NewInMemoryFS()
			require.NoError(t, memFS.MkdirAll("/data", 0o755))
			require.NoError(t, memFS.WriteFile(tt.path, tt.content, 0o644))

			api := testutil.NewMockBuilder().Build()
			client := NewWithService(api, WithFilesystem(memFS))

			result, err := client.UploadFile(t.Context(), "proj-1", "uploads/object", tt.path, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantContentType, result.ContentType)
			assert.Equal(t, int64(len(tt.content)), result.Size)

			inline := api.CreateCalls()[0].Request.ProposedUploadMethods.DataInline
			require.NotNil(t, inline)
			assert.Equal(t, tt.wantContentType, inline.ContentType)
			assert.Equal(t, base64.StdEncoding.EncodeToString(tt.content), inline.ObjectData)
		})
	}
}

func TestClient_UploadFile_Errors(t *testing.T) {
	memFS := billy.NewInMemoryFS()
	require.NoError(t, memFS.MkdirAll("/data/dir", 0o755))
	require.NoError(t, memFS.WriteFile("/data/large.bin", testutil.GenerateRandomData(10_000), 0o644))

	tests := []struct {
		name        string
		path        string
		wantInvalid bool
		wantNotImpl bool
	}{
		{name: "empty path", path: "", wantInvalid: true},
		{name: "directory", path: "/data/dir", wantInvalid: true},
		{name: "missing file", path: "/data/missing.txt"},
		{name: "too large", path: "/data/large.bin", wantNotImpl: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := testutil.NewMockBuilder().Build()
			client := NewWithService(api, WithFilesystem(memFS))

			_, err := client.UploadFile(t.Context(), "proj-1", "object", tt.path)
			require.Error(t, err)
			assert.Equal(t, tt.wantInvalid, errors.IsInvalidInput(err))
			assert.Equal(t, tt.wantNotImpl, errors.IsNotImplemented(err))
			assert.Empty(t, api.CreateCalls())
		})
	}
}
