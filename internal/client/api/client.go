package api

import (
	"context"

	"github.com/earnhub/adminctl/internal/client/models"
)

// Client is the transport-agnostic contract for the admin backend.
type Client interface {
	// Authenticate exchanges the admin secret for a session token.
	Authenticate(ctx context.Context, secret string) (string, error)

	// Profile validates the current token and returns the admin profile.
	Profile(ctx context.Context) (*models.Admin, error)

	// Logout asks the backend to revoke the current token. Best effort:
	// local teardown must not depend on it succeeding.
	Logout(ctx context.Context) error

	Overview(ctx context.Context) (*models.Overview, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	BanUser(ctx context.Context, userID string) error
	UnbanUser(ctx context.Context, userID string) error

	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, draft models.TaskDraft) error

	ListWithdrawals(ctx context.Context) ([]models.Withdrawal, error)
	ApproveWithdrawal(ctx context.Context, id string) error
	RejectWithdrawal(ctx context.Context, id, reason string) error

	Settings(ctx context.Context) (*models.Settings, error)
	SaveSettings(ctx context.Context, s models.Settings) error
}
