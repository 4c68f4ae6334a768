package domain

import (
	"context"
	"time"
)

// CV is an uploaded resume. The binary content is opaque to the client and
// only ever handled as a byte blob for view/download.
type CV struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// CVBlob carries binary CV content fetched from the backend.
type CVBlob struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CVGateway defines the backend REST operations for CVs
type CVGateway interface {
	Upload(ctx context.Context, filename string, data []byte) (*CV, error)
	Mine(ctx context.Context) ([]CV, error)
	View(ctx context.Context, id string) (*CVBlob, error)
	Download(ctx context.Context, id string) (*CVBlob, error)
	Delete(ctx context.Context, id string) error
	ListAllAdmin(ctx context.Context) ([]CV, error)
	DeleteAdmin(ctx context.Context, id string) error
}

// CVUsecase defines client-side orchestration for CV views
type CVUsecase interface {
	UploadCV(ctx context.Context, filename string, data []byte, contentType string) (*CV, error)
	GetMyCVs(ctx context.Context) ([]CV, error)
	ViewCV(ctx context.Context, id string) (*CVBlob, error)
	DownloadCV(ctx context.Context, id string) (*CVBlob, error)
	DeleteCV(ctx context.Context, id string) error

	// Admin operations
	ListAllCVs(ctx context.Context) ([]CV, error)
	DeleteCVAdmin(ctx context.Context, id string) error
}
