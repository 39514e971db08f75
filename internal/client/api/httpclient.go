package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/earnhub/adminctl/internal/client/models"
	"github.com/earnhub/adminctl/internal/common"
	"github.com/google/uuid"
)

// RequestTimeout is the fixed per-request timeout. A timed-out request is
// classified the same as any other "no response" failure.
const RequestTimeout = 12 * time.Second

const maxResponseBody = 4 << 20

// HTTPClient is the concrete Client talking JSON over HTTP.
//
// The token accessor is consulted on every request; when it returns a
// non-empty token the Authorization and client-timestamp headers are
// attached, otherwise the request goes out unauthenticated.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	token   func() string

	// test seams
	now   func() time.Time
	newID func() string
}

// NewHTTPClient builds an HTTPClient for the given base address.
func NewHTTPClient(baseURL string, token func() string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: RequestTimeout},
		token:   token,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.CSRFHintHeaderName, common.CSRFHintValue)
	req.Header.Set(common.RequestIDHeaderName, c.newID())
	if t := c.token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
		req.Header.Set(common.ClientTimeHeaderName, strconv.FormatInt(c.now().UnixMilli(), 10))
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode >= 400:
		return &StatusError{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage pulls a human-readable message out of an error payload.
// Backends answer either {"error": "..."} or {"message": "..."}.
func errorMessage(data []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}

func (c *HTTPClient) Authenticate(ctx context.Context, secret string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/admin/auth", map[string]string{"secret": secret}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.Admin, error) {
	var resp struct {
		Admin models.Admin `json:"admin"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Admin, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/admin/logout", nil, nil)
}

func (c *HTTPClient) Overview(ctx context.Context) (*models.Overview, error) {
	var resp models.Overview
	if err := c.do(ctx, http.MethodGet, "/admin/overview", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var resp userList
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *HTTPClient) BanUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPost, "/admin/user/ban", map[string]string{"userId": userID}, nil)
}

func (c *HTTPClient) UnbanUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPost, "/admin/user/unban", map[string]string{"userId": userID}, nil)
}

func (c *HTTPClient) ListTasks(ctx context.Context) ([]models.Task, error) {
	var resp taskList
	if err := c.do(ctx, http.MethodGet, "/admin/tasks", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *HTTPClient) CreateTask(ctx context.Context, draft models.TaskDraft) error {
	return c.do(ctx, http.MethodPost, "/admin/task/add", draft, nil)
}

func (c *HTTPClient) ListWithdrawals(ctx context.Context) ([]models.Withdrawal, error) {
	var resp withdrawalList
	if err := c.do(ctx, http.MethodGet, "/admin/withdrawals", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *HTTPClient) ApproveWithdrawal(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/admin/withdraw/approve", map[string]string{"id": id}, nil)
}

func (c *HTTPClient) RejectWithdrawal(ctx context.Context, id, reason string) error {
	payload := map[string]string{"id": id, "reason": reason}
	return c.do(ctx, http.MethodPost, "/admin/withdraw/reject", payload, nil)
}

func (c *HTTPClient) Settings(ctx context.Context) (*models.Settings, error) {
	var resp models.Settings
	if err := c.do(ctx, http.MethodGet, "/admin/settings", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) SaveSettings(ctx context.Context, s models.Settings) error {
	return c.do(ctx, http.MethodPost, "/admin/settings", s, nil)
}
