package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job status constants
const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
)

// Job type constants
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
	JobTypeRemote     = "remote"
)

type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"company_name"`
	Location    string    `json:"location"`
	Type        string    `json:"type"` // full-time / part-time / contract / internship / remote
	Salary      string    `json:"salary,omitempty"`
	Description string    `json:"description"`
	Vacancies   int       `json:"vacancies"`
	ExpiresAt   time.Time `json:"expires_at"`
	Status      string    `json:"status"` // active / closed
	CreatedAt   time.Time `json:"created_at"`
}

// JobSearchFilters holds the query parameters for GET /jobs/search
type JobSearchFilters struct {
	Keyword  string
	Location string
	Type     string
}

// JobGateway defines the backend REST operations for jobs
type JobGateway interface {
	List(ctx context.Context) ([]Job, error)
	Search(ctx context.Context, filters JobSearchFilters) ([]Job, error)
	GetByID(ctx context.Context, id string) (*Job, error)
	Create(ctx context.Context, job *Job) (*Job, error)
	Update(ctx context.Context, id string, job *Job) (*Job, error)
	Delete(ctx context.Context, id string) error
	ListAllAdmin(ctx context.Context) ([]Job, error)
}

// JobUsecase defines client-side orchestration for job views
type JobUsecase interface {
	ListJobs(ctx context.Context) ([]Job, error)
	SearchJobs(ctx context.Context, filters JobSearchFilters) ([]Job, error)
	GetJobDetails(ctx context.Context, id string) (*Job, error)
	CreateJob(ctx context.Context, job *Job) (*Job, error)
	UpdateJob(ctx context.Context, id string, job *Job) (*Job, error)
	DeleteJob(ctx context.Context, id string) error
	ListAllJobsAdmin(ctx context.Context) ([]Job, error)
	ToggleJobStatus(ctx context.Context, id string) (*Job, error)
}
