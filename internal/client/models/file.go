// Package models defines the data the sharedrop client moves around: the
// selected file, upload progress, parsed server responses and the email
// share payloads.
package models

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/sharedrop/internal/common"
)

// SelectedFile is the single file chosen for one upload. Content is opened
// lazily so large files are streamed, never held in memory.
type SelectedFile struct {
	Name string `json:"name"`
	Size int64  `json:"size"`

	Open func() (io.ReadCloser, error) `json:"-"`
}

// CheckSize rejects files above common.MaxFileSize. The limit is inclusive.
func (f SelectedFile) CheckSize() error {
	if f.Size > common.MaxFileSize {
		return fmt.Errorf("%s is %d bytes: %w", f.Name, f.Size, common.ErrFileTooLarge)
	}
	return nil
}

// CheckDrop validates a drag-and-drop payload: exactly one file within the
// size ceiling.
func CheckDrop(files []SelectedFile) error {
	if len(files) != 1 {
		return fmt.Errorf("got %d files: %w", len(files), common.ErrTooManyFiles)
	}
	return files[0].CheckSize()
}
