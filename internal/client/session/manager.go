package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/earnhub/adminctl/internal/client/api"
	"github.com/earnhub/adminctl/internal/client/models"
	"github.com/earnhub/adminctl/internal/client/repositories/tokens"
	"github.com/earnhub/adminctl/internal/logging"
	"github.com/earnhub/adminctl/internal/retryx"
	"github.com/earnhub/adminctl/internal/textx"
)

// State is the session lifecycle state.
type State string

const (
	StateUnvalidated     State = "unvalidated"
	StateValidating      State = "validating"
	StateAuthenticated   State = "authenticated"
	StateUnauthenticated State = "unauthenticated"
)

var (
	// ErrEmptySecret is a local validation failure: no network call is made.
	ErrEmptySecret = errors.New("admin secret is required")

	// ErrNoToken means the login exchange succeeded but returned no token.
	ErrNoToken = errors.New("backend returned no session token")

	// ErrStaleToken means a previously persisted token failed startup
	// validation and has been discarded; the admin must log in again.
	ErrStaleToken = errors.New("stored session token is no longer valid, please log in again")
)

// startupRetries bounds re-attempts for the startup validation and login
// exchange calls.
const startupRetries = 2

// Manager owns the session token and the admin profile.
type Manager struct {
	client api.Client
	store  tokens.Repository
	log    logging.Logger
	retry  retryx.Policy

	state         State
	volatileToken string
	profile       *models.Admin
}

// NewManager builds a Manager in the unvalidated state. The API client is
// attached afterwards with Bind, because it is itself constructed around the
// manager's Token accessor.
func NewManager(store tokens.Repository, log logging.Logger) *Manager {
	return &Manager{
		store: store,
		log:   log,
		retry: retryx.Policy{
			MaxRetries: startupRetries,
			BaseDelay:  retryx.DefaultBaseDelay,
			Retryable:  api.Transient,
		},
		state: StateUnvalidated,
	}
}

// Bind attaches the API client. Must be called once before any lifecycle
// operation.
func (m *Manager) Bind(client api.Client) {
	m.client = client
}

// SetRetryBaseDelay overrides the backoff base delay. Used to wire
// configuration in at startup.
func (m *Manager) SetRetryBaseDelay(d time.Duration) {
	m.retry.BaseDelay = d
}

// Token returns the current volatile token, or "" when unauthenticated.
// Wire this accessor into the API client.
func (m *Manager) Token() string {
	return m.volatileToken
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	return m.state
}

// Profile returns the current admin profile, or nil when unauthenticated.
func (m *Manager) Profile() *models.Admin {
	return m.profile
}

// Startup restores and validates a persisted session, if any.
//
// With no persisted token it transitions straight to unauthenticated without
// a network call. Otherwise it validates the token against the backend
// (retried on transient failures); on any failure the token is discarded
// from memory and storage and ErrStaleToken is returned.
func (m *Manager) Startup(ctx context.Context) error {
	token, err := m.store.Load(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to read persisted token", "error", err)
	}
	if token == "" {
		m.state = StateUnauthenticated
		return nil
	}

	m.volatileToken = token
	m.state = StateValidating
	m.log.Debug(ctx, "validating persisted session")

	profile, err := m.fetchProfileRetried(ctx)
	if err != nil {
		m.log.Info(ctx, "persisted session rejected", "error", err)
		m.teardown(ctx)
		return ErrStaleToken
	}

	m.profile = profile
	m.state = StateAuthenticated
	m.log.Info(ctx, "session restored", "admin", profile.Name)
	return nil
}

// Login exchanges the admin secret for a session token and confirms it by
// fetching the profile.
//
// The secret is sanitized first; an empty secret fails locally with
// ErrEmptySecret and no network call. The token is always kept in memory;
// it is persisted only when remember is set, otherwise any stale persisted
// copy is actively cleared.
func (m *Manager) Login(ctx context.Context, secret string, remember bool) error {
	secret = textx.Clean(secret)
	if secret == "" {
		return ErrEmptySecret
	}

	var token string
	err := m.retry.Do(ctx, func(ctx context.Context) error {
		t, err := m.client.Authenticate(ctx, secret)
		token = t
		return err
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if token == "" {
		return ErrNoToken
	}

	m.volatileToken = token
	if remember {
		if err := m.store.Save(ctx, token); err != nil {
			m.log.Warn(ctx, "failed to persist token", "error", err)
		}
	} else {
		if err := m.store.Clear(ctx); err != nil {
			m.log.Warn(ctx, "failed to clear persisted token", "error", err)
		}
	}

	// Confirm end-to-end validity and populate the profile. Deliberately
	// not retried: the exchange above just succeeded, so a failure here is
	// a real signal.
	profile, err := m.client.Profile(ctx)
	if err != nil {
		m.teardown(ctx)
		return fmt.Errorf("login failed: %w", err)
	}

	m.profile = profile
	m.state = StateAuthenticated
	m.log.Info(ctx, "logged in", "admin", profile.Name, "remember", remember)
	return nil
}

// Logout invalidates the session locally and asks the backend to revoke the
// token as a courtesy. The revoke call is best effort: its failure is logged
// and ignored, local teardown always completes.
func (m *Manager) Logout(ctx context.Context) error {
	if m.volatileToken != "" {
		if err := m.client.Logout(ctx); err != nil {
			m.log.Debug(ctx, "server-side revoke failed", "error", err)
		}
	}
	m.teardown(ctx)
	m.log.Info(ctx, "logged out")
	return nil
}

// Invalidate tears the session down after an unauthorized answer from any
// backend call.
func (m *Manager) Invalidate(ctx context.Context) {
	if m.state != StateAuthenticated && m.volatileToken == "" {
		return
	}
	m.log.Warn(ctx, "session no longer authorized, logging out")
	m.teardown(ctx)
}

func (m *Manager) fetchProfileRetried(ctx context.Context) (*models.Admin, error) {
	var profile *models.Admin
	err := m.retry.Do(ctx, func(ctx context.Context) error {
		p, err := m.client.Profile(ctx)
		profile = p
		return err
	})
	return profile, err
}

func (m *Manager) teardown(ctx context.Context) {
	m.volatileToken = ""
	m.profile = nil
	m.state = StateUnauthenticated
	if err := m.store.Clear(ctx); err != nil {
		m.log.Warn(ctx, "failed to clear persisted token", "error", err)
	}
}
