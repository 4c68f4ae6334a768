package domain

import (
	"context"
	"time"
)

// Canonical application status constants.
// The backend historically answers with two vocabularies ("reviewed"/"approved"
// in admin flows, "reviewing"/"accepted" elsewhere); NormalizeStatus folds both
// into this canonical set.
const (
	ApplicationStatusPending   = "pending"
	ApplicationStatusReviewing = "reviewing"
	ApplicationStatusAccepted  = "accepted"
	ApplicationStatusRejected  = "rejected"
)

// NormalizeStatus maps legacy status spellings onto the canonical vocabulary.
// Unknown values pass through unchanged so new backend statuses degrade to the
// informational alert template instead of being dropped.
func NormalizeStatus(status string) string {
	switch status {
	case "reviewed":
		return ApplicationStatusReviewing
	case "approved":
		return ApplicationStatusAccepted
	case "applied":
		return ApplicationStatusPending
	default:
		return status
	}
}

// Application represents a user's candidacy for a job. The client holds
// ephemeral read-mostly copies; the backend owns the record.
type Application struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	UserID    string    `json:"user_id"`
	CVID      *string   `json:"cv_id,omitempty"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	AppliedAt time.Time `json:"applied_at"`

	// Expanded job reference returned by the backend for list responses
	Job *Job `json:"job,omitempty"`
}

// JobTitle returns the title of the referenced job, or a placeholder when the
// backend did not expand the reference.
func (a *Application) JobTitle() string {
	if a.Job != nil && a.Job.Title != "" {
		return a.Job.Title
	}
	return "Job"
}

// CompanyName returns the company of the referenced job, or a placeholder.
func (a *Application) CompanyName() string {
	if a.Job != nil && a.Job.CompanyName != "" {
		return a.Job.CompanyName
	}
	return "Company"
}

// ApplicationGateway defines the backend REST operations for applications
type ApplicationGateway interface {
	Apply(ctx context.Context, jobID, cvID string) (*Application, error)
	Mine(ctx context.Context) ([]Application, error)
	GetByID(ctx context.Context, id string) (*Application, error)
	Delete(ctx context.Context, id string) error
	ListAllAdmin(ctx context.Context) ([]Application, error)
	UpdateStatusAdmin(ctx context.Context, id, status string) error
	DeleteAdmin(ctx context.Context, id string) error
}

// ApplicationUsecase defines client-side orchestration for application views
type ApplicationUsecase interface {
	ApplyToJob(ctx context.Context, jobID, cvID string) (*Application, error)
	GetMyApplications(ctx context.Context) ([]Application, error)
	WithdrawApplication(ctx context.Context, id string) error

	// Admin operations
	ListAllApplications(ctx context.Context) ([]Application, error)
	UpdateApplicationStatus(ctx context.Context, id, status string) error
	DeleteApplication(ctx context.Context, id string) error
}
