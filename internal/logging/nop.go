package logging

import "github.com/rs/zerolog"

// Nop returns a logger that discards everything. Intended for tests and for
// callers that have no logging configured yet.
func Nop() Logger {
	return &ZerologLogger{l: zerolog.Nop()}
}
