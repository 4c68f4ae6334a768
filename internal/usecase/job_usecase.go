package usecase

import (
	"context"

	"go-jobboard-client/internal/domain"
	"go-jobboard-client/pkg/apperror"
)

type jobUsecase struct {
	jobs domain.JobGateway
}

// NewJobUsecase creates the job usecase
func NewJobUsecase(jobs domain.JobGateway) domain.JobUsecase {
	return &jobUsecase{jobs: jobs}
}

func (uc *jobUsecase) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return uc.jobs.List(ctx)
}

func (uc *jobUsecase) SearchJobs(ctx context.Context, filters domain.JobSearchFilters) ([]domain.Job, error) {
	if filters == (domain.JobSearchFilters{}) {
		return uc.jobs.List(ctx)
	}
	return uc.jobs.Search(ctx, filters)
}

func (uc *jobUsecase) GetJobDetails(ctx context.Context, id string) (*domain.Job, error) {
	if id == "" {
		return nil, apperror.BadRequest("Invalid job ID")
	}
	return uc.jobs.GetByID(ctx, id)
}

// CreateJob forwards a new job to the backend. The admin guard here is a UI
// courtesy; the backend enforces authorization on its own.
func (uc *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	return uc.jobs.Create(ctx, job)
}

func (uc *jobUsecase) UpdateJob(ctx context.Context, id string, job *domain.Job) (*domain.Job, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	return uc.jobs.Update(ctx, id, job)
}

func (uc *jobUsecase) DeleteJob(ctx context.Context, id string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	return uc.jobs.Delete(ctx, id)
}

func (uc *jobUsecase) ListAllJobsAdmin(ctx context.Context) ([]domain.Job, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	return uc.jobs.ListAllAdmin(ctx)
}

// ToggleJobStatus flips a job between active and closed.
func (uc *jobUsecase) ToggleJobStatus(ctx context.Context, id string) (*domain.Job, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	job, err := uc.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}

	if job.Status == domain.JobStatusActive {
		job.Status = domain.JobStatusClosed
	} else {
		job.Status = domain.JobStatusActive
	}

	return uc.jobs.Update(ctx, id, job)
}

// requireAdmin fails safe: a missing role claim is treated as non-admin.
func requireAdmin(ctx context.Context) error {
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	if role != domain.RoleAdmin {
		return apperror.Forbidden("Only admins can perform this action")
	}
	return nil
}
