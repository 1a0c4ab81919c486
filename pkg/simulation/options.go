package simulation

import "log/slog"

type config struct {
	enforceReservedNames bool
	reservedNamesSet     bool
	logger               *slog.Logger
}

// Option configures simulation construction.
type Option func(*config)

// WithReservedNameChars turns on rejection of names containing '[' or ']',
// the characters used by synthesized default names. Off by default.
//
// Enforcement also applies to names synthesized earlier: passing a
// simulation's own sequence back to Set fails once an element carries a
// default name such as "sources[0]". Pass WithReservedNameChars(false) to
// that Set call to re-assign it.
func WithReservedNameChars(enforce bool) Option {
	return func(c *config) {
		c.enforceReservedNames = enforce
		c.reservedNamesSet = true
	}
}

// WithLogger sets the logger used to report rejected records.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
