package rest

import (
	"context"
	"net/http"
	"net/url"

	"go-jobboard-client/internal/domain"
)

type jobGateway struct {
	client *Client
}

// NewJobGateway creates the REST gateway for job resources
func NewJobGateway(client *Client) domain.JobGateway {
	return &jobGateway{client: client}
}

func (g *jobGateway) List(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := g.client.doJSON(ctx, http.MethodGet, "/jobs", nil, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (g *jobGateway) Search(ctx context.Context, filters domain.JobSearchFilters) ([]domain.Job, error) {
	query := url.Values{}
	if filters.Keyword != "" {
		query.Set("q", filters.Keyword)
	}
	if filters.Location != "" {
		query.Set("location", filters.Location)
	}
	if filters.Type != "" {
		query.Set("type", filters.Type)
	}

	var jobs []domain.Job
	if err := g.client.doJSON(ctx, http.MethodGet, "/jobs/search", query, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (g *jobGateway) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	var job domain.Job
	if err := g.client.doJSON(ctx, http.MethodGet, "/jobs/"+id, nil, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (g *jobGateway) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	var created domain.Job
	if err := g.client.doJSON(ctx, http.MethodPost, "/jobs", nil, job, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *jobGateway) Update(ctx context.Context, id string, job *domain.Job) (*domain.Job, error) {
	var updated domain.Job
	if err := g.client.doJSON(ctx, http.MethodPut, "/jobs/"+id, nil, job, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *jobGateway) Delete(ctx context.Context, id string) error {
	return g.client.doJSON(ctx, http.MethodDelete, "/jobs/"+id, nil, nil, nil)
}

func (g *jobGateway) ListAllAdmin(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := g.client.doJSON(ctx, http.MethodGet, "/jobs/admin/all", nil, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}
