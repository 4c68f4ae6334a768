package rest

import (
	"context"
	"net/http"

	"go-jobboard-client/internal/domain"
)

type userGateway struct {
	client *Client
}

// NewUserGateway creates the REST gateway for user and auth resources
func NewUserGateway(client *Client) domain.UserGateway {
	return &userGateway{client: client}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (g *userGateway) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	var result domain.AuthResult
	req := loginRequest{Email: email, Password: password}
	if err := g.client.doJSON(ctx, http.MethodPost, "/auth/login", nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (g *userGateway) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResult, error) {
	var result domain.AuthResult
	if err := g.client.doJSON(ctx, http.MethodPost, "/auth/register", nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (g *userGateway) Profile(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := g.client.doJSON(ctx, http.MethodGet, "/users/profile", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *userGateway) ListAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := g.client.doJSON(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (g *userGateway) Delete(ctx context.Context, id string) error {
	return g.client.doJSON(ctx, http.MethodDelete, "/users/"+id, nil, nil, nil)
}
