// Package cli implements the interactive console for the consertos system:
// a REPL that drives listing, searching and (for the admin role) creating,
// editing and deleting repair records against the REST backend.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lucasdmesquita/consertos-cli/internal/client/api"
	"github.com/lucasdmesquita/consertos-cli/internal/client/config"
	"github.com/lucasdmesquita/consertos-cli/internal/client/services"
	"github.com/lucasdmesquita/consertos-cli/internal/client/session"
	"github.com/lucasdmesquita/consertos-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// adminUsername is the only account with write access; the backend enforces
// the real permissions, the console just hides mutating commands.
const adminUsername = "admin"

type App struct {
	config    *config.Config
	log       logging.Logger
	auth      services.AuthService
	consertos services.ConsertoService
	reader    *bufio.Reader
	out       io.Writer

	// current list window
	page       int
	totalPages int
	marca      string
	modelo     string
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := session.OpenDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open local database: %w", err)
	}

	sess := session.NewManager(session.NewSQLiteStore(db), log)
	if err := sess.Restore(ctx); err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	apiClient := api.NewRESTClient(cfg.ServerBaseURL, cfg.RequestTimeout, sess, log)

	return &App{
		config:    cfg,
		log:       log,
		auth:      services.NewAuthService(apiClient, sess),
		consertos: services.NewConsertoService(apiClient),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	return a.auth.Username() == adminUsername
}

func (a *App) resetListState() {
	a.page = 0
	a.totalPages = 0
	a.marca = ""
	a.modelo = ""
}
