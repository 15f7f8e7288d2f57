package netx

import (
	"fmt"
	"io"
	"mime/multipart"
)

// StreamMultipart encodes src as a single file part of a multipart/form-data
// body without buffering it. The returned reader must be fully consumed or
// closed; a failure while reading src surfaces as a read error on it.
func StreamMultipart(field, filename string, src io.Reader) (io.ReadCloser, string) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile(field, filename)
		if err != nil {
			pw.CloseWithError(fmt.Errorf("create form file: %w", err))
			return
		}
		if _, err := io.Copy(part, src); err != nil {
			pw.CloseWithError(fmt.Errorf("copy file: %w", err))
			return
		}
		if err := mw.Close(); err != nil {
			pw.CloseWithError(fmt.Errorf("close multipart: %w", err))
			return
		}
		pw.Close()
	}()

	return pr, mw.FormDataContentType()
}
