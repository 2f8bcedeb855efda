package loader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

func readFile(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("schema loader: file path is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(abs)
}

func readFS(files fs.FS, name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("schema loader: fs path is required")
	}
	if files == nil {
		return nil, errors.New("schema loader: fs is nil")
	}
	return fs.ReadFile(files, name)
}
