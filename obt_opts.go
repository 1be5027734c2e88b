package obt

import "log/slog"

// Option configures an Archive.
type Option func(*Archive)

// WithLogger sets the logger used for load and finalize diagnostics.
//
// If not set, logging is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Archive) {
		a.logger = logger
	}
}
