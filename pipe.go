// Package ospipe exposes anonymous OS pipes and duplicated standard
// streams as owning PipeReader/PipeWriter handles.
package ospipe

import (
	"io"
	"log"
	"os"
)

var eventLogger = log.New(io.Discard, "", 0)

// SetLogger routes descriptor lifecycle events (create, dup, close) to the
// given logger. The default logger discards everything.
func SetLogger(logger *log.Logger) {
	eventLogger = logger
}

// PipeReader owns the readable end of a pipe or a duplicated standard
// input. The underlying descriptor is closed exactly once: by the first
// Close call, or when the handle is garbage collected.
type PipeReader struct {
	f *os.File
}

// PipeWriter owns the writable end of a pipe or a duplicated standard
// output/error stream. Same close-once semantics as PipeReader.
type PipeWriter struct {
	f *os.File
}

// Pipe returns both ends of a freshly created anonymous OS pipe. Bytes
// written to the writer come out of the reader in order; once the writer
// is closed the reader sees EOF.
func Pipe() (*PipeReader, *PipeWriter, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, nil, err
	}
	eventLogger.Print("pipe: created pair")
	return &PipeReader{f: r}, &PipeWriter{f: w}, nil
}

func (r *PipeReader) Read(b []byte) (int, error) {
	return r.f.Read(b)
}

// Close releases the descriptor. Closing an already closed handle fails
// with os.ErrClosed; the descriptor itself is never closed twice.
func (r *PipeReader) Close() error {
	eventLogger.Printf("close %s", r.f.Name())
	return r.f.Close()
}

// Fd returns the underlying descriptor without transferring ownership.
func (r *PipeReader) Fd() uintptr {
	return r.f.Fd()
}

// File returns the handle's *os.File, e.g. for wiring into an exec.Cmd.
// The file is still owned by the handle.
func (r *PipeReader) File() *os.File {
	return r.f
}

// TryClone duplicates the handle's descriptor into a new, independently
// owned reader. The duplicate is close-on-exec.
func (r *PipeReader) TryClone() (*PipeReader, error) {
	f, err := dupFile(r.f)
	if err != nil {
		return nil, err
	}
	return &PipeReader{f: f}, nil
}

func (w *PipeWriter) Write(b []byte) (int, error) {
	return w.f.Write(b)
}

// ReadFrom delegates to the underlying file so io.Copy into the pipe can
// take the platform fast path.
func (w *PipeWriter) ReadFrom(r io.Reader) (int64, error) {
	return w.f.ReadFrom(r)
}

// Close releases the descriptor. Closing an already closed handle fails
// with os.ErrClosed; the descriptor itself is never closed twice.
func (w *PipeWriter) Close() error {
	eventLogger.Printf("close %s", w.f.Name())
	return w.f.Close()
}

// Fd returns the underlying descriptor without transferring ownership.
func (w *PipeWriter) Fd() uintptr {
	return w.f.Fd()
}

// File returns the handle's *os.File, e.g. for wiring into an exec.Cmd.
// The file is still owned by the handle.
func (w *PipeWriter) File() *os.File {
	return w.f
}

// TryClone duplicates the handle's descriptor into a new, independently
// owned writer. The duplicate is close-on-exec.
func (w *PipeWriter) TryClone() (*PipeWriter, error) {
	f, err := dupFile(w.f)
	if err != nil {
		return nil, err
	}
	return &PipeWriter{f: f}, nil
}
