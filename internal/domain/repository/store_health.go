package repository

import "context"

// StoreHealth reports reachability of the main table store. The health
// endpoint uses it next to the identity-store and RLS probes.
type StoreHealth interface {
	// Ping round-trips the underlying connection pool.
	Ping(ctx context.Context) error
}
