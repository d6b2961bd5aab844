package services

import (
	"context"
	"errors"
	"time"

	"github.com/lucasdmesquita/consertos-cli/internal/client/api"
	"github.com/lucasdmesquita/consertos-cli/internal/client/forms"
	"github.com/lucasdmesquita/consertos-cli/internal/client/models"
)

// ErrValidationFailed marks a submit attempt that never reached the network:
// the per-field messages are on the form's error map.
var ErrValidationFailed = errors.New("form has validation errors")

// nowFn is a test seam for the validation clock.
var nowFn = time.Now

// ConsertoService exposes the record operations the console needs. Create and
// Update run the validation engine first; an invalid form never produces a
// network call.
type ConsertoService interface {
	List(ctx context.Context, page, size int) (*models.ConsertoPage, error)
	Search(ctx context.Context, marca, modelo string, page, size int) (*models.ConsertoPage, error)
	Get(ctx context.Context, id int64) (*models.Conserto, error)
	Resumo(ctx context.Context) ([]models.ConsertoResumo, error)
	Create(ctx context.Context, form *forms.Form) (*models.Conserto, error)
	Update(ctx context.Context, id int64, form *forms.Form) error
	Delete(ctx context.Context, id int64) error
}

type consertoService struct {
	client api.Client
}

func NewConsertoService(client api.Client) ConsertoService {
	return &consertoService{client: client}
}

func (s *consertoService) List(ctx context.Context, page, size int) (*models.ConsertoPage, error) {
	return s.client.List(ctx, page, size)
}

func (s *consertoService) Search(ctx context.Context, marca, modelo string, page, size int) (*models.ConsertoPage, error) {
	return s.client.Search(ctx, marca, modelo, page, size)
}

func (s *consertoService) Get(ctx context.Context, id int64) (*models.Conserto, error) {
	return s.client.Get(ctx, id)
}

func (s *consertoService) Resumo(ctx context.Context) ([]models.ConsertoResumo, error) {
	return s.client.Resumo(ctx)
}

func (s *consertoService) Create(ctx context.Context, form *forms.Form) (*models.Conserto, error) {
	if !form.Validate(nowFn()) {
		return nil, ErrValidationFailed
	}
	return s.client.Create(ctx, form.Request())
}

func (s *consertoService) Update(ctx context.Context, id int64, form *forms.Form) error {
	if !form.Validate(nowFn()) {
		return ErrValidationFailed
	}
	return s.client.Update(ctx, id, form.Request())
}

func (s *consertoService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, id)
}
