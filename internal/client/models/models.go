// Package models defines the display records returned by the admin backend.
//
// These are presentation values only: identifiers are opaque strings and
// numeric fields are non-negative floating-point display values. No
// relationships between records are modeled locally; everything is fetched,
// displayed, and mutated by id-addressed remote calls.
package models

// Admin is the authenticated administrator's profile, replaced wholesale on
// every validation or login and cleared on logout.
type Admin struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Overview holds the dashboard statistics.
type Overview struct {
	Users              int64   `json:"users"`
	TotalRevenue       float64 `json:"totalRevenue"`
	PendingWithdrawals int64   `json:"pendingWithdrawals"`
}

// User is a platform member as the backend reports it.
type User struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
	Banned  bool    `json:"banned"`
}

// Task is an earning task offered to users.
type Task struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Reward      float64 `json:"reward"`
}

// TaskDraft is the payload for creating a new task.
type TaskDraft struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Reward      float64 `json:"reward"`
}

// Withdrawal is a pending or settled payout request.
type Withdrawal struct {
	ID     string  `json:"id"`
	UserID string  `json:"userId"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

// Settings holds the global platform settings. Conversion is the
// point-to-currency rate; both fields are pass-through values with no
// declared backend bounds.
type Settings struct {
	Maintenance bool    `json:"maintenance"`
	Conversion  float64 `json:"conversion"`
}
