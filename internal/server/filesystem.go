package server

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
)

const fallbackContentType = "application/octet-stream"

type openedFile struct {
	*os.File
	Size        int64
	ContentType string
}

// openRegular opens a resolved path for streaming. The file can change
// between resolution and open, so the regular-file check is repeated on the
// open handle.
func openRegular(path string) (*openedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errNotFound
		}

		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	if !info.Mode().IsRegular() {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, errNotFound)
	}

	return &openedFile{
		File:        f,
		Size:        info.Size(),
		ContentType: contentTypeFor(path),
	}, nil
}

func contentTypeFor(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}

	return fallbackContentType
}
