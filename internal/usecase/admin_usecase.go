package usecase

import (
	"context"

	"go-jobboard-client/internal/domain"
	"go-jobboard-client/pkg/apperror"
	"go-jobboard-client/pkg/logger"
)

type adminUsecase struct {
	users        domain.UserGateway
	jobs         domain.JobGateway
	applications domain.ApplicationGateway
	cvs          domain.CVGateway
}

// NewAdminUsecase creates the admin back-office usecase
func NewAdminUsecase(users domain.UserGateway, jobs domain.JobGateway, applications domain.ApplicationGateway, cvs domain.CVGateway) domain.AdminUsecase {
	return &adminUsecase{
		users:        users,
		jobs:         jobs,
		applications: applications,
		cvs:          cvs,
	}
}

func (uc *adminUsecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	return uc.users.ListAll(ctx)
}

func (uc *adminUsecase) DeleteUser(ctx context.Context, id string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	if id == "" {
		return apperror.BadRequest("Invalid user ID")
	}

	// Admins cannot delete themselves from the table view.
	if selfID, _ := ctx.Value(domain.KeyUserID).(string); selfID == id {
		return apperror.BadRequest("You cannot delete your own account")
	}

	return uc.users.Delete(ctx, id)
}

// Analytics aggregates counts over freshly fetched lists. Each list is
// independent: a failed fetch degrades that section to zero values instead
// of failing the whole view.
func (uc *adminUsecase) Analytics(ctx context.Context) (*domain.AnalyticsSummary, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	summary := &domain.AnalyticsSummary{
		ApplicationsByStat: make(map[string]int),
		UsersByRole:        make(map[string]int),
	}

	jobs, err := uc.jobs.ListAllAdmin(ctx)
	if err != nil {
		logger.Log.Warn("admin: analytics job fetch failed", "error", err)
	}
	summary.TotalJobs = len(jobs)
	for i := range jobs {
		if jobs[i].Status == domain.JobStatusActive {
			summary.ActiveJobs++
		}
	}

	apps, err := uc.applications.ListAllAdmin(ctx)
	if err != nil {
		logger.Log.Warn("admin: analytics application fetch failed", "error", err)
	}
	summary.TotalApplications = len(apps)
	for i := range apps {
		summary.ApplicationsByStat[domain.NormalizeStatus(apps[i].Status)]++
	}

	users, err := uc.users.ListAll(ctx)
	if err != nil {
		logger.Log.Warn("admin: analytics user fetch failed", "error", err)
	}
	summary.TotalUsers = len(users)
	for i := range users {
		summary.UsersByRole[users[i].Role]++
	}

	cvs, err := uc.cvs.ListAllAdmin(ctx)
	if err != nil {
		logger.Log.Warn("admin: analytics cv fetch failed", "error", err)
	}
	summary.TotalCVs = len(cvs)

	return summary, nil
}
