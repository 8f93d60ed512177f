// Package lifecycle holds the timeouts shared by fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start and stop hook (pings, graceful shutdowns, flushes).
const DefaultTimeout = 10 * time.Second
