package usecase

import (
	"context"
	"time"

	"go-jobboard-client/internal/domain"
	"go-jobboard-client/pkg/apperror"
)

type applicationUsecase struct {
	applications domain.ApplicationGateway
	jobs         domain.JobGateway
}

// NewApplicationUsecase creates the application usecase
func NewApplicationUsecase(applications domain.ApplicationGateway, jobs domain.JobGateway) domain.ApplicationUsecase {
	return &applicationUsecase{
		applications: applications,
		jobs:         jobs,
	}
}

// ApplyToJob submits an application. The client pre-checks what it can see
// (job exists, still active, not expired) for faster feedback; the backend
// re-validates everything.
func (uc *applicationUsecase) ApplyToJob(ctx context.Context, jobID, cvID string) (*domain.Application, error) {
	if jobID == "" {
		return nil, apperror.BadRequest("Invalid job ID")
	}

	job, err := uc.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	if job.Status != domain.JobStatusActive {
		return nil, apperror.BadRequest("Cannot apply to a closed job")
	}
	if !job.ExpiresAt.IsZero() && job.ExpiresAt.Before(time.Now()) {
		return nil, apperror.BadRequest("This job posting has expired")
	}

	return uc.applications.Apply(ctx, jobID, cvID)
}

// GetMyApplications returns the current user's applications with statuses
// folded into the canonical vocabulary.
func (uc *applicationUsecase) GetMyApplications(ctx context.Context) ([]domain.Application, error) {
	apps, err := uc.applications.Mine(ctx)
	if err != nil {
		return nil, err
	}
	for i := range apps {
		apps[i].Status = domain.NormalizeStatus(apps[i].Status)
	}
	return apps, nil
}

func (uc *applicationUsecase) WithdrawApplication(ctx context.Context, id string) error {
	if id == "" {
		return apperror.BadRequest("Invalid application ID")
	}
	return uc.applications.Delete(ctx, id)
}

func (uc *applicationUsecase) ListAllApplications(ctx context.Context) ([]domain.Application, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	apps, err := uc.applications.ListAllAdmin(ctx)
	if err != nil {
		return nil, err
	}
	for i := range apps {
		apps[i].Status = domain.NormalizeStatus(apps[i].Status)
	}
	return apps, nil
}

// UpdateApplicationStatus changes an application's status through the admin
// endpoint. Legacy spellings are accepted and folded before validation.
func (uc *applicationUsecase) UpdateApplicationStatus(ctx context.Context, id, status string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	if id == "" {
		return apperror.BadRequest("Invalid application ID")
	}

	normalized := domain.NormalizeStatus(status)
	validStatuses := map[string]bool{
		domain.ApplicationStatusPending:   true,
		domain.ApplicationStatusReviewing: true,
		domain.ApplicationStatusAccepted:  true,
		domain.ApplicationStatusRejected:  true,
	}
	if !validStatuses[normalized] {
		return apperror.BadRequest("Invalid status. Must be: pending, reviewing, accepted, or rejected")
	}

	return uc.applications.UpdateStatusAdmin(ctx, id, normalized)
}

func (uc *applicationUsecase) DeleteApplication(ctx context.Context, id string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	return uc.applications.DeleteAdmin(ctx, id)
}
