// Package probe checks reachability of the service's backing dependencies.
// Every check acquires a fresh connection, does the least work that proves
// the peer is alive, and releases the connection before returning.
package probe

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when a probe has no endpoint to dial.
var ErrNotConfigured = errors.New("probe: endpoint not configured")

// Probe is a single dependency check.
type Probe interface {
	// Name is the human label used in responses, e.g. "Postgres".
	Name() string
	// Check returns nil when the dependency accepted a connection.
	Check(ctx context.Context) error
}
