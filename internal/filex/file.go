// Package filex turns local paths into upload selections.
package filex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/sharedrop/internal/client/models"
)

// Select stats path and returns it as a SelectedFile. The file is reopened
// on every Open call, so the result can be uploaded more than once.
func Select(path string) (models.SelectedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.SelectedFile{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return models.SelectedFile{}, fmt.Errorf("%s is a directory", path)
	}

	return models.SelectedFile{
		Name: filepath.Base(path),
		Size: info.Size(),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// SelectAll selects every path, stopping at the first failure.
func SelectAll(paths []string) ([]models.SelectedFile, error) {
	files := make([]models.SelectedFile, 0, len(paths))
	for _, p := range paths {
		f, err := Select(p)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}
