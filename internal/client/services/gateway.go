// Package services contains the action gateway between the UI layer and the
// admin backend: thin per-action operations that sanitize input, gate
// irreversible actions behind an explicit confirmation, run backend calls
// through the shared retry policy, and cache the last successfully fetched
// view state.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/earnhub/adminctl/internal/client/api"
	"github.com/earnhub/adminctl/internal/client/models"
	"github.com/earnhub/adminctl/internal/logging"
	"github.com/earnhub/adminctl/internal/retryx"
	"github.com/earnhub/adminctl/internal/textx"
)

// ErrValidation marks a local input failure. Validation failures never reach
// the network.
var ErrValidation = errors.New("validation failed")

// actionRetries bounds re-attempts for gateway loaders and mutations.
const actionRetries = 2

// sessionInvalidator is the slice of the session manager the gateway needs:
// tearing the session down when the backend answers unauthorized.
type sessionInvalidator interface {
	Invalidate(ctx context.Context)
}

// Gateway orchestrates admin actions against the backend.
//
// Cached lists and the overview are view state: they are replaced only by a
// successful refresh, never mutated optimistically. Status holds the
// transient outcome message of the most recent action.
type Gateway struct {
	client api.Client
	sess   sessionInvalidator
	log    logging.Logger
	retry  retryx.Policy

	pending *Confirmation

	users       []models.User
	tasks       []models.Task
	withdrawals []models.Withdrawal
	overview    *models.Overview
	settings    *models.Settings

	status string
}

// NewGateway builds a Gateway around the given client and session.
func NewGateway(client api.Client, sess sessionInvalidator, log logging.Logger) *Gateway {
	return &Gateway{
		client: client,
		sess:   sess,
		log:    log,
		retry: retryx.Policy{
			MaxRetries: actionRetries,
			BaseDelay:  retryx.DefaultBaseDelay,
			Retryable:  api.Transient,
		},
	}
}

// SetRetryBaseDelay overrides the backoff base delay. Used to wire
// configuration in at startup.
func (g *Gateway) SetRetryBaseDelay(d time.Duration) {
	g.retry.BaseDelay = d
}

// Status returns the outcome message of the most recent action.
func (g *Gateway) Status() string { return g.status }

// Users returns the last successfully fetched user list.
func (g *Gateway) Users() []models.User { return g.users }

// Tasks returns the last successfully fetched task list.
func (g *Gateway) Tasks() []models.Task { return g.tasks }

// Withdrawals returns the last successfully fetched withdrawal list.
func (g *Gateway) Withdrawals() []models.Withdrawal { return g.withdrawals }

// Overview returns the last successfully fetched dashboard overview.
func (g *Gateway) Overview() *models.Overview { return g.overview }

// Settings returns the last successfully fetched settings.
func (g *Gateway) Settings() *models.Settings { return g.settings }

// call runs op through the retry policy and tears the session down when the
// backend reports the token unauthorized.
func (g *Gateway) call(ctx context.Context, op func(ctx context.Context) error) error {
	err := g.retry.Do(ctx, op)
	if errors.Is(err, api.ErrUnauthorized) {
		g.sess.Invalidate(ctx)
	}
	return err
}

// ---- read-only loaders ----

func (g *Gateway) RefreshOverview(ctx context.Context) (*models.Overview, error) {
	var o *models.Overview
	err := g.call(ctx, func(ctx context.Context) error {
		v, err := g.client.Overview(ctx)
		o = v
		return err
	})
	if err != nil {
		g.fail(ctx, "Could not load the dashboard overview.", err)
		return nil, err
	}
	g.overview = o
	return o, nil
}

func (g *Gateway) RefreshUsers(ctx context.Context) ([]models.User, error) {
	var list []models.User
	err := g.call(ctx, func(ctx context.Context) error {
		v, err := g.client.ListUsers(ctx)
		list = v
		return err
	})
	if err != nil {
		g.fail(ctx, "Could not load users.", err)
		return nil, err
	}
	g.users = list
	return list, nil
}

func (g *Gateway) RefreshTasks(ctx context.Context) ([]models.Task, error) {
	var list []models.Task
	err := g.call(ctx, func(ctx context.Context) error {
		v, err := g.client.ListTasks(ctx)
		list = v
		return err
	})
	if err != nil {
		g.fail(ctx, "Could not load tasks.", err)
		return nil, err
	}
	g.tasks = list
	return list, nil
}

func (g *Gateway) RefreshWithdrawals(ctx context.Context) ([]models.Withdrawal, error) {
	var list []models.Withdrawal
	err := g.call(ctx, func(ctx context.Context) error {
		v, err := g.client.ListWithdrawals(ctx)
		list = v
		return err
	})
	if err != nil {
		g.fail(ctx, "Could not load withdrawals.", err)
		return nil, err
	}
	g.withdrawals = list
	return list, nil
}

func (g *Gateway) RefreshSettings(ctx context.Context) (*models.Settings, error) {
	var s *models.Settings
	err := g.call(ctx, func(ctx context.Context) error {
		v, err := g.client.Settings(ctx)
		s = v
		return err
	})
	if err != nil {
		g.fail(ctx, "Could not load settings.", err)
		return nil, err
	}
	g.settings = s
	return s, nil
}

// ---- confirmed mutations ----

// BanUser validates the id and arms a confirmation for the ban. The backend
// call happens only when the confirmation is executed.
func (g *Gateway) BanUser(ctx context.Context, userID string) error {
	userID = textx.Clean(userID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrValidation)
	}

	g.arm(ctx, fmt.Sprintf("Ban user %q? They will no longer be able to earn or withdraw.", userID),
		func(ctx context.Context) error {
			if err := g.call(ctx, func(ctx context.Context) error {
				return g.client.BanUser(ctx, userID)
			}); err != nil {
				g.fail(ctx, "Could not ban the user.", err)
				return err
			}
			g.status = "User banned."
			_, err := g.RefreshUsers(ctx)
			return err
		})
	return nil
}

// UnbanUser validates the id and arms a confirmation for the unban.
func (g *Gateway) UnbanUser(ctx context.Context, userID string) error {
	userID = textx.Clean(userID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrValidation)
	}

	g.arm(ctx, fmt.Sprintf("Unban user %q?", userID),
		func(ctx context.Context) error {
			if err := g.call(ctx, func(ctx context.Context) error {
				return g.client.UnbanUser(ctx, userID)
			}); err != nil {
				g.fail(ctx, "Could not unban the user.", err)
				return err
			}
			g.status = "User unbanned."
			_, err := g.RefreshUsers(ctx)
			return err
		})
	return nil
}

// ApproveWithdrawal arms a confirmation for paying out the withdrawal.
func (g *Gateway) ApproveWithdrawal(ctx context.Context, id string) error {
	id = textx.Clean(id)
	if id == "" {
		return fmt.Errorf("%w: withdrawal id is required", ErrValidation)
	}

	g.arm(ctx, fmt.Sprintf("Approve withdrawal %q? The payout cannot be recalled.", id),
		func(ctx context.Context) error {
			if err := g.call(ctx, func(ctx context.Context) error {
				return g.client.ApproveWithdrawal(ctx, id)
			}); err != nil {
				g.fail(ctx, "Could not approve the withdrawal.", err)
				return err
			}
			g.status = "Withdrawal approved."
			_, err := g.RefreshWithdrawals(ctx)
			return err
		})
	return nil
}

// RejectWithdrawal arms a confirmation for rejecting the withdrawal with an
// optional reason.
func (g *Gateway) RejectWithdrawal(ctx context.Context, id, reason string) error {
	id = textx.Clean(id)
	if id == "" {
		return fmt.Errorf("%w: withdrawal id is required", ErrValidation)
	}
	reason = textx.Clean(reason)

	g.arm(ctx, fmt.Sprintf("Reject withdrawal %q? The user will see the rejection.", id),
		func(ctx context.Context) error {
			if err := g.call(ctx, func(ctx context.Context) error {
				return g.client.RejectWithdrawal(ctx, id, reason)
			}); err != nil {
				g.fail(ctx, "Could not reject the withdrawal.", err)
				return err
			}
			g.status = "Withdrawal rejected."
			_, err := g.RefreshWithdrawals(ctx)
			return err
		})
	return nil
}

// ---- direct mutations ----

// CreateTask validates and creates a new earning task, then refreshes the
// task list. Creating a task is not destructive, so no confirmation is
// required.
func (g *Gateway) CreateTask(ctx context.Context, title, description string, reward float64) error {
	title = textx.Clean(title)
	description = textx.Clean(description)
	if title == "" {
		return fmt.Errorf("%w: task title is required", ErrValidation)
	}
	if reward <= 0 {
		return fmt.Errorf("%w: task reward must be a positive number", ErrValidation)
	}

	draft := models.TaskDraft{Title: title, Description: description, Reward: reward}
	if err := g.call(ctx, func(ctx context.Context) error {
		return g.client.CreateTask(ctx, draft)
	}); err != nil {
		g.fail(ctx, "Could not create the task.", err)
		return err
	}
	g.status = "Task created."
	_, err := g.RefreshTasks(ctx)
	return err
}

// SaveSettings validates and saves the global settings, then refreshes them.
func (g *Gateway) SaveSettings(ctx context.Context, maintenance bool, conversion float64) error {
	if conversion < 0 {
		return fmt.Errorf("%w: conversion rate cannot be negative", ErrValidation)
	}

	s := models.Settings{Maintenance: maintenance, Conversion: conversion}
	if err := g.call(ctx, func(ctx context.Context) error {
		return g.client.SaveSettings(ctx, s)
	}); err != nil {
		g.fail(ctx, "Could not save settings.", err)
		return err
	}
	g.status = "Settings saved."
	_, err := g.RefreshSettings(ctx)
	return err
}

func (g *Gateway) fail(ctx context.Context, msg string, err error) {
	g.status = msg + " Please try again."
	g.log.Error(ctx, "action failed", "error", err)
}
