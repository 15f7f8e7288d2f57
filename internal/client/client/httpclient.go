package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/sharedrop/internal/client/models"
	"github.com/dmitrijs2005/sharedrop/internal/common"
	"github.com/dmitrijs2005/sharedrop/internal/logging"
	"github.com/dmitrijs2005/sharedrop/internal/netx"
)

var _ Client = (*HTTPClient)(nil)

type HTTPClient struct {
	uploadURL string
	emailURL  string
	http      *http.Client
	log       logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.http = c }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) { h.log = l }
}

func NewHTTPClient(uploadURL, emailURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		uploadURL: uploadURL,
		emailURL:  emailURL,
		http:      &http.Client{},
		log:       logging.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *HTTPClient) Upload(ctx context.Context, file models.SelectedFile, onProgress ProgressFunc) (*models.UploadResponse, error) {
	if file.Open == nil {
		return nil, common.ErrNoFile
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", file.Name, err)
	}
	defer src.Close()

	counted := netx.NewProgressReader(file.Size, src, func(cur, total int64) {
		if onProgress != nil {
			onProgress(models.Progress{Loaded: cur, Total: total})
		}
	})
	body, contentType := netx.StreamMultipart(common.FileFieldName, file.Name, counted)
	defer body.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, body)
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrTransport, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read upload response: %v", common.ErrTransport, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.log.Warn(ctx, "upload finished with error status", "status", resp.StatusCode, "file", file.Name)
	}

	return &models.UploadResponse{StatusCode: resp.StatusCode, Body: string(b)}, nil
}

func (c *HTTPClient) SendEmail(ctx context.Context, payload models.EmailRequest) (*models.EmailResponse, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.emailURL, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		c.log.Warn(ctx, "email endpoint returned error status", "status", resp.StatusCode)
	}

	var out models.EmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrParseResponse, err)
	}
	return &out, nil
}
