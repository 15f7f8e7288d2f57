package client

import (
	"context"

	"github.com/dmitrijs2005/sharedrop/internal/client/models"
)

// ProgressFunc receives upload ticks in increasing byte order.
type ProgressFunc func(models.Progress)

type Client interface {
	// Upload streams file to the upload endpoint. It returns on any HTTP
	// completion; err is non-nil only when the exchange itself failed.
	Upload(ctx context.Context, file models.SelectedFile, onProgress ProgressFunc) (*models.UploadResponse, error)

	// SendEmail asks the server to email the shared link.
	SendEmail(ctx context.Context, req models.EmailRequest) (*models.EmailResponse, error)
}
