// Package lifecycle holds shared constants for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a component may take to start or shut
// down before the hook gives up.
const DefaultTimeout = 30 * time.Second
