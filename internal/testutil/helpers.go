package testutil

import (
	"bytes"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// FixedClock is a Clock that always reports the same instant.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.T
}

// GenerateRandomData generates random bytes of the specified size.
func GenerateRandomData(size int) []byte {
	data := make([]byte, size)
	_, _ = rand.Read(data)
	return data
}

// GenerateTestName generates a unique object name for testing.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s/%d.bin", prefix, time.Now().UnixNano())
}

// ErrorSource is a Source whose operations fail with configurable errors.
type ErrorSource struct {
	Data     []byte
	LenErr   error
	ResetErr error
	ReadErr  error

	r *bytes.Reader
}

// Len returns LenErr if set, else the data length.
func (s *ErrorSource) Len() (int64, error) {
	if s.LenErr != nil {
		return 0, s.LenErr
	}
	return int64(len(s.Data)), nil
}

// Reset returns ResetErr if set.
func (s *ErrorSource) Reset() error {
	if s.ResetErr != nil {
		return s.ResetErr
	}
	s.r = bytes.NewReader(s.Data)
	return nil
}

// Read returns ReadErr if set.
func (s *ErrorSource) Read(p []byte) (int, error) {
	if s.ReadErr != nil {
		return 0, s.ReadErr
	}
	if s.r == nil {
		return 0, io.EOF
	}
	return s.r.Read(p)
}

// ErrTest is a generic error for test failures.
var ErrTest = errors.New("test error")

// LogRecord is a captured slog record.
type LogRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// LogCapture is a slog.Handler that keeps every record in memory.
type LogCapture struct {
	mu      *sync.Mutex
	records *[]LogRecord
	attrs   []slog.Attr
}

// NewLogCapture returns an empty capture handler.
func NewLogCapture() *LogCapture {
	return &LogCapture{mu: &sync.Mutex{}, records: &[]LogRecord{}}
}

// Enabled implements slog.Handler.
func (h *LogCapture) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle implements slog.Handler.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *LogCapture) Handle(_ context.Context, r slog.Record) error {
	rec := LogRecord{Level: r.Level, Message: r.Message, Attrs: make(map[string]any)}
	for _, a := range h.attrs {
		rec.Attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		rec.Attrs[a.Key] = a.Value.Any()
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	*h.records = append(*h.records, rec)
	return nil
}

// WithAttrs implements slog.Handler.
func (h *LogCapture) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogCapture{mu: h.mu, records: h.records, attrs: append(append([]slog.Attr{}, h.attrs...), attrs...)}
}

// WithGroup implements slog.Handler. Groups are flattened.
func (h *LogCapture) WithGroup(string) slog.Handler {
	return h
}

// Records returns a copy of the captured records.
func (h *LogCapture) Records() []LogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]LogRecord(nil), *h.records...)
}
