// Package source adapts seekable readers into the objecttypes.Source capability.
//
// A Source is measured by seeking to its end, so measuring destroys the current
// read position. Callers must Reset before reading content.
package source

import (
	"bytes"
	"io"

	"github.com/input-output-hk/catalyst-forge-libs/fs"

	"github.com/input-output-hk/catalyst-forge-libs/object/objecttypes"
)

var (
	_ objecttypes.Source = (*ReadSeeker)(nil)
	_ objecttypes.Source = (*File)(nil)
)

// ReadSeeker wraps an io.ReadSeeker.
type ReadSeeker struct {
	rs io.ReadSeeker
}

// FromReadSeeker returns a Source reading from rs. The Source borrows rs and never closes it.
func FromReadSeeker(rs io.ReadSeeker) *ReadSeeker {
	return &ReadSeeker{rs: rs}
}

// FromBytes returns a Source over an in-memory byte slice.
func FromBytes(data []byte) *ReadSeeker {
	return FromReadSeeker(bytes.NewReader(data))
}

// Read implements io.Reader.
func (s *ReadSeeker) Read(p []byte) (int, error) {
	return s.rs.Read(p)
}

// Len seeks to the end of the stream and returns the resulting offset.
func (s *ReadSeeker) Len() (int64, error) {
	return s.rs.Seek(0, io.SeekEnd)
}

// Reset seeks back to the start of the stream.
func (s *ReadSeeker) Reset() error {
	_, err := s.rs.Seek(0, io.SeekStart)
	return err
}

// File wraps an open fs.File. The file is borrowed; closing it is up to the opener.
type File struct {
	ReadSeeker
	f fs.File
}

// FromFile returns a Source reading from f.
func FromFile(f fs.File) *File {
	return &File{ReadSeeker: ReadSeeker{rs: f}, f: f}
}

// Name returns the name of the underlying file.
func (s *File) Name() string {
	return s.f.Name()
}
