package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// FileSource reads a workbook from the local filesystem.
type FileSource struct {
	Path string
}

// NewFileSource returns a Source for a local path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Open(s.Path)
}

func (s *FileSource) Name() string {
	return filepath.Base(s.Path)
}

func (s *FileSource) String() string {
	return s.Path
}
