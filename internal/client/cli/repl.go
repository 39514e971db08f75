package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Overview(ctx context.Context) error
	Users(ctx context.Context) error
	Ban(ctx context.Context, args []string) error
	Unban(ctx context.Context, args []string) error
	Tasks(ctx context.Context) error
	AddTask(ctx context.Context) error
	Withdrawals(ctx context.Context) error
	Approve(ctx context.Context, args []string) error
	Reject(ctx context.Context, args []string) error
	ShowSettings(ctx context.Context) error
	EditSettings(ctx context.Context) error
	Yes(ctx context.Context) error
	No(ctx context.Context) error
}

// runREPL starts the read-eval-print loop of the admin console, writing all
// prompts and loop-level messages to w.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Every command except login, help and exit requires an authenticated
// session: the loop refuses to dispatch them while logged out, so no data
// or mutation call can ever leave the machine without a validated token.
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help                     — show available commands
//	  - login                    — authenticate with the admin secret
//	  - exit | quit              — leave the program
//
//	Logged in:
//	  - overview                 — dashboard statistics
//	  - users                    — list users
//	  - ban <id> / unban <id>    — ban or unban a user (confirmed)
//	  - tasks                    — list earning tasks
//	  - addtask                  — create a new task (interactive)
//	  - withdrawals              — list withdrawal requests
//	  - approve <id>             — approve a withdrawal (confirmed)
//	  - reject <id> [reason]     — reject a withdrawal (confirmed)
//	  - settings                 — show platform settings
//	  - setsettings              — edit platform settings (interactive)
//	  - yes | no                 — resolve the outstanding confirmation
//	  - logout                   — log out
//	  - exit | quit              — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	requireLogin := func() bool {
		if a.isLoggedIn() {
			return true
		}
		fmt.Fprintln(w, "Please log in first.")
		return false
	}

	for {
		fmt.Fprintf(w, "admin %s> \n", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: overview, users, ban <id>, unban <id>, tasks, addtask, withdrawals, approve <id>, reject <id> [reason], settings, setsettings, yes, no, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			if !requireLogin() {
				continue
			}
			_ = a.Logout(ctx)

		case "overview":
			if !requireLogin() {
				continue
			}
			_ = a.Overview(ctx)

		case "users":
			if !requireLogin() {
				continue
			}
			_ = a.Users(ctx)

		case "ban":
			if !requireLogin() {
				continue
			}
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: ban <user-id>")
				continue
			}
			_ = a.Ban(ctx, args)

		case "unban":
			if !requireLogin() {
				continue
			}
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: unban <user-id>")
				continue
			}
			_ = a.Unban(ctx, args)

		case "tasks":
			if !requireLogin() {
				continue
			}
			_ = a.Tasks(ctx)

		case "addtask":
			if !requireLogin() {
				continue
			}
			_ = a.AddTask(ctx)

		case "withdrawals":
			if !requireLogin() {
				continue
			}
			_ = a.Withdrawals(ctx)

		case "approve":
			if !requireLogin() {
				continue
			}
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: approve <withdrawal-id>")
				continue
			}
			_ = a.Approve(ctx, args)

		case "reject":
			if !requireLogin() {
				continue
			}
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: reject <withdrawal-id> [reason]")
				continue
			}
			_ = a.Reject(ctx, args)

		case "settings":
			if !requireLogin() {
				continue
			}
			_ = a.ShowSettings(ctx)

		case "setsettings":
			if !requireLogin() {
				continue
			}
			_ = a.EditSettings(ctx)

		case "yes", "y":
			if !requireLogin() {
				continue
			}
			_ = a.Yes(ctx)

		case "no", "n":
			if !requireLogin() {
				continue
			}
			_ = a.No(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
