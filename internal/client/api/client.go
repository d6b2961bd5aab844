package api

import (
	"context"

	"github.com/lucasdmesquita/consertos-cli/internal/client/models"
)

// Client is the gateway to the conserto resource. Every call attaches the
// stored credential when one is present; errors are always one of the typed
// kinds in errors.go.
type Client interface {
	List(ctx context.Context, page, size int) (*models.ConsertoPage, error)
	Search(ctx context.Context, marca, modelo string, page, size int) (*models.ConsertoPage, error)
	Get(ctx context.Context, id int64) (*models.Conserto, error)
	Create(ctx context.Context, req *models.ConsertoRequest) (*models.Conserto, error)
	Update(ctx context.Context, id int64, req *models.ConsertoRequest) error
	Delete(ctx context.Context, id int64) error
	Resumo(ctx context.Context) ([]models.ConsertoResumo, error)

	// Probe checks a candidate credential with a lightweight read call,
	// without touching the stored session.
	Probe(ctx context.Context, credential string) error
}

// CredentialSource supplies the encoded Basic credential for outbound calls
// and is told to drop it when the backend reports it invalid.
type CredentialSource interface {
	Credential() (string, bool)
	Invalidate(ctx context.Context)
}
