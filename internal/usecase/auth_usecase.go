package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-jobboard-client/internal/domain"
	"go-jobboard-client/internal/notifier"
	"go-jobboard-client/internal/session"
	"go-jobboard-client/pkg/apperror"
	"go-jobboard-client/pkg/logger"
	"go-jobboard-client/pkg/validation"
)

type authUsecase struct {
	users    domain.UserGateway
	sessions session.Store
	monitors *notifier.Manager
	validate *validator.Validate
}

// NewAuthUsecase creates the auth usecase. The notifier manager is started
// and stopped here so monitoring lifetime matches session lifetime.
func NewAuthUsecase(users domain.UserGateway, sessions session.Store, monitors *notifier.Manager, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		users:    users,
		sessions: sessions,
		monitors: monitors,
		validate: validate,
	}
}

// Login authenticates against the backend, persists the session and starts
// status monitoring for applicants.
func (uc *authUsecase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, apperror.BadRequest("Email and password are required")
	}

	result, err := uc.users.Login(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	sess := &session.Session{
		Token: result.Token,
		User:  result.User,
	}
	if err := uc.sessions.Save(ctx, sess); err != nil {
		return "", nil, apperror.Internal(err)
	}

	if result.User.Role == domain.RoleApplicant {
		uc.monitors.StartFor(result.User.ID, result.Token)
	}

	return sess.ID, &result.User, nil
}

// Register creates an account on the backend and signs the user in.
// Input is validated locally first so obviously bad payloads never hit the
// backend.
func (uc *authUsecase) Register(ctx context.Context, req domain.RegisterRequest) (string, *domain.User, error) {
	if err := uc.validate.Struct(req); err != nil {
		messages := validation.FormatValidationErrors(err)
		return "", nil, apperror.BadRequest(strings.Join(messages, "; "))
	}

	result, err := uc.users.Register(ctx, req)
	if err != nil {
		return "", nil, err
	}

	sess := &session.Session{
		Token: result.Token,
		User:  result.User,
	}
	if err := uc.sessions.Save(ctx, sess); err != nil {
		return "", nil, apperror.Internal(err)
	}

	if result.User.Role == domain.RoleApplicant {
		uc.monitors.StartFor(result.User.ID, result.Token)
	}

	return sess.ID, &result.User, nil
}

// Logout tears down the session and its status monitor. An unknown session
// ID is not an error; the user is logged out either way.
func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	sess, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil
		}
		logger.Log.Warn("auth: session lookup failed on logout", "error", err)
		return nil
	}

	uc.monitors.StopFor(sess.User.ID)
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		logger.Log.Warn("auth: session delete failed on logout", "error", err)
	}
	return nil
}

// Profile fetches the current user's profile from the backend.
func (uc *authUsecase) Profile(ctx context.Context) (*domain.User, error) {
	return uc.users.Profile(ctx)
}
