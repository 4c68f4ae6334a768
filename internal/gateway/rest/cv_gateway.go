package rest

import (
	"context"
	"net/http"

	"go-jobboard-client/internal/domain"
)

type cvGateway struct {
	client *Client
}

// NewCVGateway creates the REST gateway for CV resources
func NewCVGateway(client *Client) domain.CVGateway {
	return &cvGateway{client: client}
}

func (g *cvGateway) Upload(ctx context.Context, filename string, data []byte) (*domain.CV, error) {
	var cv domain.CV
	if err := g.client.doMultipart(ctx, "/cv", "cv", filename, data, &cv); err != nil {
		return nil, err
	}
	return &cv, nil
}

func (g *cvGateway) Mine(ctx context.Context) ([]domain.CV, error) {
	var cvs []domain.CV
	if err := g.client.doJSON(ctx, http.MethodGet, "/cv/my", nil, nil, &cvs); err != nil {
		return nil, err
	}
	return cvs, nil
}

func (g *cvGateway) View(ctx context.Context, id string) (*domain.CVBlob, error) {
	return g.client.doBlob(ctx, "/cv/"+id+"/view")
}

func (g *cvGateway) Download(ctx context.Context, id string) (*domain.CVBlob, error) {
	return g.client.doBlob(ctx, "/cv/"+id+"/download")
}

func (g *cvGateway) Delete(ctx context.Context, id string) error {
	return g.client.doJSON(ctx, http.MethodDelete, "/cv/"+id, nil, nil, nil)
}

func (g *cvGateway) ListAllAdmin(ctx context.Context) ([]domain.CV, error) {
	var cvs []domain.CV
	if err := g.client.doJSON(ctx, http.MethodGet, "/cv", nil, nil, &cvs); err != nil {
		return nil, err
	}
	return cvs, nil
}

func (g *cvGateway) DeleteAdmin(ctx context.Context, id string) error {
	return g.client.doJSON(ctx, http.MethodDelete, "/cv/admin/"+id, nil, nil, nil)
}
