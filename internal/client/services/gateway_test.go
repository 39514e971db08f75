package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earnhub/adminctl/internal/client/api"
	"github.com/earnhub/adminctl/internal/client/models"
	"github.com/earnhub/adminctl/internal/logging"
)

// fakeBackend records every call in order and lets tests script errors
// per operation.
type fakeBackend struct {
	api.Client

	calls []string
	errs  map[string]error

	users       []models.User
	tasks       []models.Task
	withdrawals []models.Withdrawal
}

func (f *fakeBackend) record(op string) error {
	f.calls = append(f.calls, op)
	return f.errs[op]
}

func (f *fakeBackend) Overview(ctx context.Context) (*models.Overview, error) {
	return &models.Overview{Users: 10}, f.record("overview")
}
func (f *fakeBackend) ListUsers(ctx context.Context) ([]models.User, error) {
	return f.users, f.record("listUsers")
}
func (f *fakeBackend) BanUser(ctx context.Context, id string) error {
	return f.record("ban:" + id)
}
func (f *fakeBackend) UnbanUser(ctx context.Context, id string) error {
	return f.record("unban:" + id)
}
func (f *fakeBackend) ListTasks(ctx context.Context) ([]models.Task, error) {
	return f.tasks, f.record("listTasks")
}
func (f *fakeBackend) CreateTask(ctx context.Context, d models.TaskDraft) error {
	return f.record("createTask:" + d.Title)
}
func (f *fakeBackend) ListWithdrawals(ctx context.Context) ([]models.Withdrawal, error) {
	return f.withdrawals, f.record("listWithdrawals")
}
func (f *fakeBackend) ApproveWithdrawal(ctx context.Context, id string) error {
	return f.record("approve:" + id)
}
func (f *fakeBackend) RejectWithdrawal(ctx context.Context, id, reason string) error {
	return f.record("reject:" + id + ":" + reason)
}
func (f *fakeBackend) Settings(ctx context.Context) (*models.Settings, error) {
	return &models.Settings{Conversion: 0.01}, f.record("settings")
}
func (f *fakeBackend) SaveSettings(ctx context.Context, s models.Settings) error {
	return f.record("saveSettings")
}

type fakeSession struct {
	invalidated int
}

func (f *fakeSession) Invalidate(ctx context.Context) { f.invalidated++ }

func newGateway(backend *fakeBackend) (*Gateway, *fakeSession) {
	sess := &fakeSession{}
	g := NewGateway(backend, sess, logging.Nop())
	g.retry.BaseDelay = time.Millisecond
	return g, sess
}

// ---- confirmation flow ----

func TestBanUser_ArmsConfirmationWithoutNetworkCall(t *testing.T) {
	backend := &fakeBackend{users: []models.User{{ID: "u1"}}}
	g, _ := newGateway(backend)

	require.NoError(t, g.BanUser(context.Background(), "u1"))
	require.NotNil(t, g.Pending())
	assert.Contains(t, g.Pending().Message, "u1")
	assert.Empty(t, backend.calls, "no network call before confirmation")

	require.NoError(t, g.Confirm(context.Background()))
	assert.Equal(t, []string{"ban:u1", "listUsers"}, backend.calls)
	assert.Nil(t, g.Pending(), "confirmation is consumed")
	assert.Equal(t, "User banned.", g.Status())
}

func TestConfirm_WithNothingPendingIsNoOp(t *testing.T) {
	backend := &fakeBackend{}
	g, _ := newGateway(backend)

	require.NoError(t, g.Confirm(context.Background()))
	assert.Empty(t, backend.calls)
}

func TestCancel_DiscardsWithoutSideEffects(t *testing.T) {
	backend := &fakeBackend{}
	g, _ := newGateway(backend)

	require.NoError(t, g.ApproveWithdrawal(context.Background(), "w9"))
	assert.True(t, g.Cancel())
	assert.Nil(t, g.Pending())
	assert.Empty(t, backend.calls)

	assert.False(t, g.Cancel(), "nothing left to cancel")
}

func TestArm_SecondConfirmationReplacesFirst(t *testing.T) {
	backend := &fakeBackend{}
	g, _ := newGateway(backend)

	require.NoError(t, g.BanUser(context.Background(), "u1"))
	require.NoError(t, g.ApproveWithdrawal(context.Background(), "w9"))

	require.NotNil(t, g.Pending())
	assert.Contains(t, g.Pending().Message, "w9")

	require.NoError(t, g.Confirm(context.Background()))
	assert.Equal(t, []string{"approve:w9", "listWithdrawals"}, backend.calls,
		"only the replacement action runs")
}

func TestApproveWithdrawal_ConfirmRefreshesWithdrawals(t *testing.T) {
	backend := &fakeBackend{withdrawals: []models.Withdrawal{{ID: "w9", Status: "approved"}}}
	g, _ := newGateway(backend)

	require.NoError(t, g.ApproveWithdrawal(context.Background(), "w9"))
	require.NoError(t, g.Confirm(context.Background()))

	assert.Equal(t, []string{"approve:w9", "listWithdrawals"}, backend.calls)
	require.Len(t, g.Withdrawals(), 1)
	assert.Equal(t, "approved", g.Withdrawals()[0].Status)
}

func TestRejectWithdrawal_SanitizesReason(t *testing.T) {
	backend := &fakeBackend{}
	g, _ := newGateway(backend)

	require.NoError(t, g.RejectWithdrawal(context.Background(), "w2", "  <b>fraud</b>\x00  "))
	require.NoError(t, g.Confirm(context.Background()))

	assert.Equal(t, "reject:w2:bfraud/b", backend.calls[0])
}

// ---- validation ----

func TestMutations_ValidationFailuresStayLocal(t *testing.T) {
	backend := &fakeBackend{}
	g, _ := newGateway(backend)
	ctx := context.Background()

	assert.ErrorIs(t, g.BanUser(ctx, "   "), ErrValidation)
	assert.ErrorIs(t, g.UnbanUser(ctx, ""), ErrValidation)
	assert.ErrorIs(t, g.ApproveWithdrawal(ctx, "\x00<>"), ErrValidation)
	assert.ErrorIs(t, g.RejectWithdrawal(ctx, "", "reason"), ErrValidation)
	assert.ErrorIs(t, g.CreateTask(ctx, "", "desc", 5), ErrValidation)
	assert.ErrorIs(t, g.CreateTask(ctx, "title", "desc", 0), ErrValidation)
	assert.ErrorIs(t, g.CreateTask(ctx, "title", "desc", -3), ErrValidation)
	assert.ErrorIs(t, g.SaveSettings(ctx, false, -0.5), ErrValidation)

	assert.Empty(t, backend.calls, "validation failures must not reach the network")
	assert.Nil(t, g.Pending())
}

// ---- direct mutations ----

func TestCreateTask_SuccessRefreshesTasks(t *testing.T) {
	backend := &fakeBackend{tasks: []models.Task{{ID: "t1", Title: "Survey"}}}
	g, _ := newGateway(backend)

	require.NoError(t, g.CreateTask(context.Background(), " Survey ", "fill the form", 2.5))
	assert.Equal(t, []string{"createTask:Survey", "listTasks"}, backend.calls)
	require.Len(t, g.Tasks(), 1)
	assert.Equal(t, "Task created.", g.Status())
}

func TestSaveSettings_Success(t *testing.T) {
	backend := &fakeBackend{}
	g, _ := newGateway(backend)

	require.NoError(t, g.SaveSettings(context.Background(), true, 0.02))
	assert.Equal(t, []string{"saveSettings", "settings"}, backend.calls)
	assert.Equal(t, "Settings saved.", g.Status())
}

// ---- failure handling ----

func TestRefreshUsers_FailureLeavesCacheUntouched(t *testing.T) {
	backend := &fakeBackend{users: []models.User{{ID: "u1"}}}
	g, _ := newGateway(backend)

	_, err := g.RefreshUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, g.Users(), 1)

	backend.errs = map[string]error{"listUsers": &api.StatusError{Status: 400}}
	_, err = g.RefreshUsers(context.Background())
	require.Error(t, err)

	assert.Len(t, g.Users(), 1, "failed refresh must not clobber prior state")
	assert.Contains(t, g.Status(), "Could not load users.")
}

func TestCall_TransientFailureIsRetried(t *testing.T) {
	backend := &fakeBackend{errs: map[string]error{"overview": &api.StatusError{Status: 502}}}
	g, _ := newGateway(backend)

	_, err := g.RefreshOverview(context.Background())
	require.Error(t, err)
	assert.Len(t, backend.calls, 3, "initial call plus two retries")
}

func TestCall_UnauthorizedTearsSessionDown(t *testing.T) {
	backend := &fakeBackend{errs: map[string]error{"listWithdrawals": api.ErrUnauthorized}}
	g, sess := newGateway(backend)

	_, err := g.RefreshWithdrawals(context.Background())
	require.ErrorIs(t, err, api.ErrUnauthorized)
	assert.Equal(t, 1, sess.invalidated)
	assert.Len(t, backend.calls, 1, "401 is permanent, no retries")
}

func TestConfirmedMutation_FailureLeavesListUntouched(t *testing.T) {
	backend := &fakeBackend{users: []models.User{{ID: "u1"}}}
	g, _ := newGateway(backend)

	_, err := g.RefreshUsers(context.Background())
	require.NoError(t, err)

	backend.errs = map[string]error{"ban:u1": &api.StatusError{Status: 409}}
	require.NoError(t, g.BanUser(context.Background(), "u1"))
	require.Error(t, g.Confirm(context.Background()))

	assert.Len(t, g.Users(), 1)
	assert.Contains(t, g.Status(), "Could not ban the user.")
	// the ban was attempted once, and no refresh followed the failure
	assert.Equal(t, []string{"listUsers", "ban:u1"}, backend.calls)
}
