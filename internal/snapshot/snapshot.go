// Package snapshot writes rendered frames to disk as BMP files.
package snapshot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"

	"chosenoffset.com/raymaze/internal/canvas"
)

// Writer saves canvases into a directory. File names carry the time of the
// save so successive snapshots do not overwrite each other.
type Writer struct {
	dir    string
	now    func() time.Time
	create func(name string) (io.WriteCloser, error)
}

// NewWriter creates a writer for dir. An empty dir means the working
// directory.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir, now: time.Now, create: createFile}
}

// Dir returns the directory snapshots are written to
func (w *Writer) Dir() string {
	return w.dir
}

// Save encodes c as a BMP and returns the path of the written file
func (w *Writer) Save(c *canvas.Canvas) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	path := filepath.Join(w.dir, fmt.Sprintf("raymaze-%d.bmp", w.now().UnixNano()))
	f, err := w.create(path)
	if err != nil {
		return "", fmt.Errorf("create snapshot: %w", err)
	}

	if err := bmp.Encode(f, c.ToRGBA()); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close snapshot: %w", err)
	}
	return path, nil
}

func createFile(name string) (io.WriteCloser, error) {
	return os.Create(name)
}
