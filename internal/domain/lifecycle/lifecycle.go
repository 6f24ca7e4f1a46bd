// Package lifecycle holds process lifecycle constants shared by the
// delivery servers and background workers.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and workers.
const DefaultTimeout = 10 * time.Second
