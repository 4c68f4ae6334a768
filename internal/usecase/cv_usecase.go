package usecase

import (
	"context"

	"go-jobboard-client/internal/domain"
	"go-jobboard-client/pkg/apperror"
	"go-jobboard-client/pkg/upload"
)

type cvUsecase struct {
	cvs domain.CVGateway
}

// NewCVUsecase creates the CV usecase
func NewCVUsecase(cvs domain.CVGateway) domain.CVUsecase {
	return &cvUsecase{cvs: cvs}
}

// UploadCV validates the file locally (type, size, magic bytes) before
// shipping it to the backend, so obviously bad uploads fail without a
// round-trip.
func (uc *cvUsecase) UploadCV(ctx context.Context, filename string, data []byte, contentType string) (*domain.CV, error) {
	if filename == "" || len(data) == 0 {
		return nil, apperror.BadRequest("No file provided")
	}

	result := upload.ValidateCV(filename, data, contentType)
	if !result.Valid {
		return nil, apperror.BadRequest(result.Error)
	}

	return uc.cvs.Upload(ctx, filename, data)
}

func (uc *cvUsecase) GetMyCVs(ctx context.Context) ([]domain.CV, error) {
	return uc.cvs.Mine(ctx)
}

func (uc *cvUsecase) ViewCV(ctx context.Context, id string) (*domain.CVBlob, error) {
	if id == "" {
		return nil, apperror.BadRequest("Invalid CV ID")
	}
	return uc.cvs.View(ctx, id)
}

func (uc *cvUsecase) DownloadCV(ctx context.Context, id string) (*domain.CVBlob, error) {
	if id == "" {
		return nil, apperror.BadRequest("Invalid CV ID")
	}
	return uc.cvs.Download(ctx, id)
}

func (uc *cvUsecase) DeleteCV(ctx context.Context, id string) error {
	if id == "" {
		return apperror.BadRequest("Invalid CV ID")
	}
	return uc.cvs.Delete(ctx, id)
}

func (uc *cvUsecase) ListAllCVs(ctx context.Context) ([]domain.CV, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	return uc.cvs.ListAllAdmin(ctx)
}

func (uc *cvUsecase) DeleteCVAdmin(ctx context.Context, id string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	return uc.cvs.DeleteAdmin(ctx, id)
}
