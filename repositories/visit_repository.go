package repositories

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/blogem/visit-logger/models"
)

// ErrEmptyPath is returned when a file repository is created without a path
var ErrEmptyPath = errors.New("visit log path is empty")

// VisitRepository appends homepage visits to a log destination
type VisitRepository interface {
	Append(ctx context.Context, visit *models.Visit) error
}

// VisitCounter is implemented by repositories that can report how many
// visits they hold
type VisitCounter interface {
	Count(ctx context.Context) (int, error)
}

type fileVisitRepository struct {
	mu   sync.Mutex
	path string
	perm os.FileMode
}

// NewFileVisitRepository creates a repository that appends visit lines to
// the plain-text file at path. The file is created on first append.
func NewFileVisitRepository(path string) (VisitRepository, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return &fileVisitRepository{path: path, perm: 0o644}, nil
}

// Append opens the file in append mode, writes one visit line and closes it.
// The handle is released on every path; a close error is reported only when
// the write itself succeeded.
func (r *fileVisitRepository) Append(ctx context.Context, _ *models.Visit) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, r.perm)
	if err != nil {
		return fmt.Errorf("open visit log %s: %w", r.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close visit log %s: %w", r.path, cerr)
		}
	}()

	// One write call so a failed append never leaves half a line behind
	if _, err := f.WriteString(models.VisitLine); err != nil {
		return fmt.Errorf("write visit log %s: %w", r.path, err)
	}

	return nil
}

// Count returns the number of lines currently in the visit log.
// A missing file counts as zero visits.
func (r *fileVisitRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("open visit log %s: %w", r.path, err)
	}
	defer f.Close()

	reader := bufio.NewReaderSize(f, 64*1024)
	buf := make([]byte, 64*1024)
	count := 0
	for {
		n, err := reader.Read(buf)
		count += bytes.Count(buf[:n], []byte{'\n'})
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			return 0, fmt.Errorf("read visit log %s: %w", r.path, err)
		}
	}
}

type writerVisitRepository struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterVisitRepository creates a repository that writes visit lines to w
func NewWriterVisitRepository(w io.Writer) VisitRepository {
	return &writerVisitRepository{w: w}
}

// Append writes one visit line to the underlying writer
func (r *writerVisitRepository) Append(ctx context.Context, _ *models.Visit) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := io.WriteString(r.w, models.VisitLine); err != nil {
		return fmt.Errorf("write visit line: %w", err)
	}
	return nil
}
