package widget

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/dmitrijs2005/sharedrop/internal/client/client"
	"github.com/dmitrijs2005/sharedrop/internal/client/models"
)

type fakeAPI struct {
	client.Client

	mu      sync.Mutex
	uploads []models.SelectedFile
	emails  []models.EmailRequest

	uploadFn func(ctx context.Context, f models.SelectedFile, onProgress client.ProgressFunc) (*models.UploadResponse, error)
	sendFn   func(ctx context.Context, req models.EmailRequest) (*models.EmailResponse, error)
}

func (f *fakeAPI) Upload(ctx context.Context, file models.SelectedFile, onProgress client.ProgressFunc) (*models.UploadResponse, error) {
	f.mu.Lock()
	f.uploads = append(f.uploads, file)
	fn := f.uploadFn
	f.mu.Unlock()

	if fn == nil {
		return &models.UploadResponse{StatusCode: 200, Body: `{"file":"http://host/files/abc-123"}`}, nil
	}
	return fn(ctx, file, onProgress)
}

func (f *fakeAPI) SendEmail(ctx context.Context, req models.EmailRequest) (*models.EmailResponse, error) {
	f.mu.Lock()
	f.emails = append(f.emails, req)
	fn := f.sendFn
	f.mu.Unlock()

	if fn == nil {
		return &models.EmailResponse{Success: true}, nil
	}
	return fn(ctx, req)
}

func (f *fakeAPI) uploadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.uploads)
}

func (f *fakeAPI) sentEmails() []models.EmailRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.EmailRequest(nil), f.emails...)
}

func respond(body string) func(context.Context, models.SelectedFile, client.ProgressFunc) (*models.UploadResponse, error) {
	return func(context.Context, models.SelectedFile, client.ProgressFunc) (*models.UploadResponse, error) {
		return &models.UploadResponse{StatusCode: 200, Body: body}, nil
	}
}

type recNotifier struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recNotifier) Notify(m string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, m)
}

func (r *recNotifier) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.msgs...)
}

func (r *recNotifier) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.msgs) == 0 {
		return ""
	}
	return r.msgs[len(r.msgs)-1]
}

type failingClipboard struct{}

func (failingClipboard) WriteAll(string) error { return errors.New("no clipboard") }

func file(name string, size int64) models.SelectedFile {
	return models.SelectedFile{
		Name: name,
		Size: size,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("")), nil
		},
	}
}
