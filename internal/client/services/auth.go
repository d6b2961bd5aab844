// Package services contains the application services behind the console:
// authentication (probe login, session restore, logout) and validated CRUD
// over repair records.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/lucasdmesquita/consertos-cli/internal/client/api"
	"github.com/lucasdmesquita/consertos-cli/internal/client/session"
)

// ErrInvalidCredentials is returned by Login when the backend rejects the
// username/password pair. Any other login failure is a connectivity problem.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService drives the session lifecycle.
//
// Contract:
//   - Login: probe the candidate credential against the backend and commit it
//     to the durable session only on success.
//   - Logout: unconditionally drop the session.
//   - Restore: pick up a session persisted by a previous run.
type AuthService interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	Restore(ctx context.Context) error
	IsAuthenticated() bool
	Username() string
}

type authService struct {
	client  api.Client
	session *session.Manager
}

func NewAuthService(client api.Client, sess *session.Manager) AuthService {
	return &authService{client: client, session: sess}
}

// Login encodes the credential pair and tests it with a lightweight read call
// before committing. On a 401 the store is left untouched and
// ErrInvalidCredentials is returned; on any other failure the probe error is
// wrapped so the caller can show a connectivity message.
func (a *authService) Login(ctx context.Context, username, password string) error {
	encoded := session.EncodeBasic(username, password)

	if err := a.client.Probe(ctx, encoded); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("login probe: %w", err)
	}

	return a.session.Begin(ctx, encoded, username)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.End(ctx)
}

func (a *authService) Restore(ctx context.Context) error {
	return a.session.Restore(ctx)
}

func (a *authService) IsAuthenticated() bool {
	return a.session.IsAuthenticated()
}

func (a *authService) Username() string {
	return a.session.Username()
}
