// Package session holds the console's single authenticated session: an
// encoded Basic credential plus a display username, persisted in durable
// local storage so it survives process restarts.
package session

import (
	"context"
	"encoding/base64"
	"sync"

	"github.com/lucasdmesquita/consertos-cli/internal/logging"
)

// EncodeBasic produces the reversible credential encoding carried in the
// Authorization header. It is an encoding, not encryption.
func EncodeBasic(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}

// Store persists the two session slots. Load returns empty strings when no
// session is stored.
type Store interface {
	Save(ctx context.Context, credential, username string) error
	Load(ctx context.Context) (credential, username string, err error)
	Clear(ctx context.Context) error
}

// Manager is the in-process view of the session. It has two states:
// unauthenticated (no credential) and authenticated (credential + username).
// Transitions go through Begin/End; Invalidate is the teardown path taken
// when the backend rejects the credential mid-flight.
type Manager struct {
	mu         sync.Mutex
	store      Store
	credential string
	username   string
	log        logging.Logger
}

func NewManager(store Store, log logging.Logger) *Manager {
	return &Manager{store: store, log: log.With("component", "session")}
}

// Restore loads a previously persisted session, if any, into memory.
// Called once at startup.
func (m *Manager) Restore(ctx context.Context) error {
	cred, user, err := m.store.Load(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = cred
	m.username = user
	return nil
}

// Begin transitions to the authenticated state and persists the session.
func (m *Manager) Begin(ctx context.Context, credential, username string) error {
	if err := m.store.Save(ctx, credential, username); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = credential
	m.username = username
	return nil
}

// End transitions to the unauthenticated state, erasing the persisted
// credential and username unconditionally.
func (m *Manager) End(ctx context.Context) error {
	m.mu.Lock()
	m.credential = ""
	m.username = ""
	m.mu.Unlock()

	return m.store.Clear(ctx)
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.credential != ""
}

func (m *Manager) Username() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.username
}

// Credential returns the encoded credential and whether one is held.
// Implements api.CredentialSource.
func (m *Manager) Credential() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.credential, m.credential != ""
}

// Invalidate is the authorization-failure teardown: same effect as End, but
// a storage failure only gets logged since the caller is already handling an
// unauthorized error.
func (m *Manager) Invalidate(ctx context.Context) {
	if err := m.End(ctx); err != nil {
		m.log.Error(ctx, "failed to clear persisted session", "error", err)
	}
}
