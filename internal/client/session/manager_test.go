package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earnhub/adminctl/internal/client/api"
	"github.com/earnhub/adminctl/internal/client/models"
	"github.com/earnhub/adminctl/internal/logging"
)

// ---- fakes ----

type fakeStore struct {
	token    string
	loadErr  error
	saveErr  error
	clearErr error

	saves  []string
	clears int
}

func (f *fakeStore) Load(ctx context.Context) (string, error) { return f.token, f.loadErr }
func (f *fakeStore) Save(ctx context.Context, token string) error {
	f.saves = append(f.saves, token)
	f.token = token
	return f.saveErr
}
func (f *fakeStore) Clear(ctx context.Context) error {
	f.clears++
	f.token = ""
	return f.clearErr
}

type fakeAPI struct {
	api.Client

	authToken string
	authErr   error
	authCalls int

	profile      *models.Admin
	profileErr   error
	profileCalls int

	logoutErr   error
	logoutCalls int
}

func (f *fakeAPI) Authenticate(ctx context.Context, secret string) (string, error) {
	f.authCalls++
	return f.authToken, f.authErr
}

func (f *fakeAPI) Profile(ctx context.Context) (*models.Admin, error) {
	f.profileCalls++
	return f.profile, f.profileErr
}

func (f *fakeAPI) Logout(ctx context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func newManager(store *fakeStore, client *fakeAPI) *Manager {
	m := NewManager(store, logging.Nop())
	m.retry.BaseDelay = time.Millisecond
	m.Bind(client)
	return m
}

// ---- startup ----

func TestStartup_NoStoredToken(t *testing.T) {
	store := &fakeStore{}
	client := &fakeAPI{}
	m := newManager(store, client)

	require.NoError(t, m.Startup(context.Background()))
	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Zero(t, client.profileCalls, "must not touch the network without a token")
	assert.Zero(t, client.authCalls)
}

func TestStartup_ValidToken(t *testing.T) {
	store := &fakeStore{token: "tok_xyz"}
	client := &fakeAPI{profile: &models.Admin{ID: "1", Name: "root"}}
	m := newManager(store, client)

	require.NoError(t, m.Startup(context.Background()))
	assert.Equal(t, StateAuthenticated, m.State())
	assert.Equal(t, "tok_xyz", m.Token())
	assert.Equal(t, "root", m.Profile().Name)
}

func TestStartup_InvalidTokenIsDiscarded(t *testing.T) {
	store := &fakeStore{token: "stale"}
	client := &fakeAPI{profileErr: api.ErrUnauthorized}
	m := newManager(store, client)

	err := m.Startup(context.Background())
	require.ErrorIs(t, err, ErrStaleToken)
	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, m.Token())
	assert.Empty(t, store.token, "persisted copy must be discarded too")
	assert.Equal(t, 1, client.profileCalls, "401 is permanent, no retries")
}

func TestStartup_TransientFailureIsRetried(t *testing.T) {
	store := &fakeStore{token: "tok"}
	client := &fakeAPI{profileErr: &api.StatusError{Status: 503}}
	m := newManager(store, client)

	err := m.Startup(context.Background())
	require.ErrorIs(t, err, ErrStaleToken)
	assert.Equal(t, 3, client.profileCalls, "initial call plus two retries")
}

// ---- login ----

func TestLogin_EmptySecretFailsLocally(t *testing.T) {
	client := &fakeAPI{}
	m := newManager(&fakeStore{}, client)

	err := m.Login(context.Background(), "   ", false)
	require.ErrorIs(t, err, ErrEmptySecret)
	assert.Zero(t, client.authCalls, "validation failures must not reach the network")
}

func TestLogin_RememberPersistsToken(t *testing.T) {
	store := &fakeStore{}
	client := &fakeAPI{authToken: "tok_xyz", profile: &models.Admin{Name: "root"}}
	m := newManager(store, client)

	require.NoError(t, m.Login(context.Background(), "abc123", true))
	assert.Equal(t, StateAuthenticated, m.State())
	assert.Equal(t, "tok_xyz", m.Token())
	assert.Equal(t, []string{"tok_xyz"}, store.saves)
	assert.Equal(t, "root", m.Profile().Name)
}

func TestLogin_NoRememberClearsPersistedCopy(t *testing.T) {
	store := &fakeStore{token: "previous"}
	client := &fakeAPI{authToken: "tok_new", profile: &models.Admin{Name: "root"}}
	m := newManager(store, client)

	require.NoError(t, m.Login(context.Background(), "abc123", false))
	assert.Equal(t, "tok_new", m.Token())
	assert.Empty(t, store.saves)
	assert.Equal(t, 1, store.clears)
	assert.Empty(t, store.token)
}

func TestLogin_EmptyTokenFromBackend(t *testing.T) {
	client := &fakeAPI{authToken: ""}
	m := newManager(&fakeStore{}, client)

	err := m.Login(context.Background(), "abc123", false)
	require.ErrorIs(t, err, ErrNoToken)
	assert.Equal(t, StateUnvalidated, m.State())
}

func TestLogin_BadSecretSurfacesBackendMessage(t *testing.T) {
	client := &fakeAPI{authErr: &api.StatusError{Status: 403, Message: "bad secret"}}
	m := newManager(&fakeStore{}, client)

	err := m.Login(context.Background(), "wrong", false)
	require.Error(t, err)

	var se *api.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "bad secret", se.Message)
	assert.Equal(t, 1, client.authCalls, "4xx is permanent, no retries")
}

func TestLogin_TransientAuthFailureIsRetried(t *testing.T) {
	client := &fakeAPI{authErr: api.ErrUnavailable}
	m := newManager(&fakeStore{}, client)

	err := m.Login(context.Background(), "abc123", false)
	require.Error(t, err)
	assert.Equal(t, 3, client.authCalls)
}

func TestLogin_ProfileFetchFailureTearsDown(t *testing.T) {
	store := &fakeStore{}
	client := &fakeAPI{authToken: "tok", profileErr: errors.New("boom")}
	m := newManager(store, client)

	err := m.Login(context.Background(), "abc123", true)
	require.Error(t, err)
	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, m.Token())
	assert.Empty(t, store.token)
	assert.Equal(t, 1, client.profileCalls, "post-login confirmation is not retried")
}

// ---- logout / invalidate ----

func TestLogout_ClearsEverything(t *testing.T) {
	store := &fakeStore{token: "tok"}
	client := &fakeAPI{profile: &models.Admin{Name: "root"}}
	m := newManager(store, client)
	require.NoError(t, m.Startup(context.Background()))

	require.NoError(t, m.Logout(context.Background()))
	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, m.Token())
	assert.Nil(t, m.Profile())
	assert.Empty(t, store.token)
	assert.Equal(t, 1, client.logoutCalls)
}

func TestLogout_RevokeFailureStillTearsDown(t *testing.T) {
	store := &fakeStore{token: "tok"}
	client := &fakeAPI{profile: &models.Admin{Name: "root"}, logoutErr: api.ErrUnavailable}
	m := newManager(store, client)
	require.NoError(t, m.Startup(context.Background()))

	require.NoError(t, m.Logout(context.Background()))
	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, m.Token())
}

func TestInvalidate(t *testing.T) {
	store := &fakeStore{token: "tok"}
	client := &fakeAPI{profile: &models.Admin{Name: "root"}}
	m := newManager(store, client)
	require.NoError(t, m.Startup(context.Background()))

	m.Invalidate(context.Background())
	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, m.Token())
	assert.Nil(t, m.Profile())
}
