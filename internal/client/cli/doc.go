// Package cli implements the interactive admin console.
//
// # Overview
//
// The console is a small read-eval-print loop on top of the session manager
// and the action gateway. Each command maps to one gateway operation; the
// REPL itself holds no state beyond the prompt. Irreversible actions (ban,
// unban, approve, reject) do not run immediately: they arm a confirmation
// on the gateway, and the user resolves it with "yes" or "no" on the next
// line.
//
// Interactive input goes through small helpers with test seams, so command
// handlers can be exercised without a terminal. The admin secret is read
// without echo via golang.org/x/term.
package cli
