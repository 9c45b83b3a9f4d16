// Package lifecycle holds shared limits for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start-up checks and graceful shutdown of a single component.
const DefaultTimeout = 10 * time.Second
