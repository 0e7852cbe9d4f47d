package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

// FileFetcher reads exports from the local filesystem. Relative paths are
// resolved against baseDir.
type FileFetcher struct {
	baseDir string
}

func NewFileFetcher(baseDir string) *FileFetcher {
	return &FileFetcher{baseDir: strings.TrimSpace(baseDir)}
}

func (f *FileFetcher) FetchURI(ctx context.Context, uri string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := f.resolve(uri)
	if path == "" {
		return nil, crerr.New("source path is required")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, crerr.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxSourceBytes))
	if err != nil {
		return nil, crerr.Wrapf(err, "read %s", path)
	}
	return raw, nil
}

func (f *FileFetcher) resolve(uri string) string {
	path := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(uri), "file://"))
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) || f.baseDir == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(f.baseDir, path)
}
