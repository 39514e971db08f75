package services

import "context"

// Confirmation pairs a human-readable warning with a single deferred action.
// At most one is outstanding at a time; arming a new one replaces it.
type Confirmation struct {
	Message string
	run     func(ctx context.Context) error
}

func (g *Gateway) arm(ctx context.Context, message string, run func(ctx context.Context) error) {
	if g.pending != nil {
		g.log.Debug(ctx, "replacing outstanding confirmation")
	}
	g.pending = &Confirmation{Message: message, run: run}
}

// Pending returns the outstanding confirmation, or nil.
func (g *Gateway) Pending() *Confirmation {
	return g.pending
}

// Confirm consumes the outstanding confirmation and executes its deferred
// action. The confirmation is gone regardless of the outcome; a failed
// action must be re-armed by triggering it again.
func (g *Gateway) Confirm(ctx context.Context) error {
	c := g.pending
	if c == nil {
		return nil
	}
	g.pending = nil
	return c.run(ctx)
}

// Cancel discards the outstanding confirmation with no side effects.
// It reports whether there was one to discard.
func (g *Gateway) Cancel() bool {
	if g.pending == nil {
		return false
	}
	g.pending = nil
	g.status = "Action cancelled."
	return true
}
