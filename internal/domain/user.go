package domain

import "context"

// User role constants
const (
	RoleApplicant = "applicant"
	RoleAdmin     = "admin"
)

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// RegisterRequest is the payload sent to the backend on sign-up
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" validate:"valid_name,no_emoji"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone,omitempty" validate:"valid_phone"`
	Location string `json:"location,omitempty"`
}

// AuthResult is what the backend returns on successful login/registration
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UserGateway defines the backend REST operations for users and auth
type UserGateway interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Profile(ctx context.Context) (*User, error)
	ListAll(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id string) error
}

// AuthUsecase defines login/logout/session orchestration
type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (sessionID string, user *User, err error)
	Register(ctx context.Context, req RegisterRequest) (sessionID string, user *User, err error)
	Logout(ctx context.Context, sessionID string) error
	Profile(ctx context.Context) (*User, error)
}

// AdminUsecase defines the admin back-office operations over users
type AdminUsecase interface {
	ListUsers(ctx context.Context) ([]User, error)
	DeleteUser(ctx context.Context, id string) error
	Analytics(ctx context.Context) (*AnalyticsSummary, error)
}

// AnalyticsSummary aggregates counts for the admin analytics view.
// Computed client-side from fetched lists; never authoritative.
type AnalyticsSummary struct {
	TotalJobs          int            `json:"total_jobs"`
	ActiveJobs         int            `json:"active_jobs"`
	TotalApplications  int            `json:"total_applications"`
	ApplicationsByStat map[string]int `json:"applications_by_status"`
	TotalUsers         int            `json:"total_users"`
	UsersByRole        map[string]int `json:"users_by_role"`
	TotalCVs           int            `json:"total_cvs"`
}
