// Package delivery defines the contract every transport entrypoint
// (HTTP API, worker) implements so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport server. Serve blocks until the
// server stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
