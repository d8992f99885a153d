// Package source locates the workbook a dataset is loaded from.
package source

import (
	"context"
	"io"
	"strings"
)

// DefaultLocation is the workbook path used when none is configured.
const DefaultLocation = "menu.xlsx"

// Source yields the raw bytes of a workbook.
type Source interface {
	// Open returns a reader over the workbook. The caller closes it.
	Open(ctx context.Context) (io.ReadCloser, error)
	// Name returns the workbook file name (no path).
	Name() string
	String() string
}

// Parse picks a Source for location: s3:// URLs read from object storage,
// http(s):// URLs are fetched, anything else is a local path.
func Parse(location string, s3cfg S3Config) (Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		location = DefaultLocation
	}

	switch {
	case strings.HasPrefix(location, "s3://"):
		return NewS3Source(location, s3cfg)
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTPSource(location, nil), nil
	default:
		return NewFileSource(location), nil
	}
}
