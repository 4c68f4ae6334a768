package rest

import (
	"context"
	"net/http"

	"go-jobboard-client/internal/domain"
)

type applicationGateway struct {
	client *Client
}

// NewApplicationGateway creates the REST gateway for application resources
func NewApplicationGateway(client *Client) domain.ApplicationGateway {
	return &applicationGateway{client: client}
}

type applyRequest struct {
	JobID string `json:"jobId"`
	CVID  string `json:"cvId,omitempty"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func (g *applicationGateway) Apply(ctx context.Context, jobID, cvID string) (*domain.Application, error) {
	var app domain.Application
	req := applyRequest{JobID: jobID, CVID: cvID}
	if err := g.client.doJSON(ctx, http.MethodPost, "/applications", nil, req, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (g *applicationGateway) Mine(ctx context.Context) ([]domain.Application, error) {
	var apps []domain.Application
	if err := g.client.doJSON(ctx, http.MethodGet, "/applications/my", nil, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (g *applicationGateway) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	var app domain.Application
	if err := g.client.doJSON(ctx, http.MethodGet, "/applications/"+id, nil, nil, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (g *applicationGateway) Delete(ctx context.Context, id string) error {
	return g.client.doJSON(ctx, http.MethodDelete, "/applications/"+id, nil, nil, nil)
}

func (g *applicationGateway) ListAllAdmin(ctx context.Context) ([]domain.Application, error) {
	var apps []domain.Application
	if err := g.client.doJSON(ctx, http.MethodGet, "/applications/admin/all", nil, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (g *applicationGateway) UpdateStatusAdmin(ctx context.Context, id, status string) error {
	return g.client.doJSON(ctx, http.MethodPut, "/applications/admin/"+id+"/status", nil, statusRequest{Status: status}, nil)
}

func (g *applicationGateway) DeleteAdmin(ctx context.Context, id string) error {
	return g.client.doJSON(ctx, http.MethodDelete, "/applications/admin/"+id, nil, nil, nil)
}
