// Package lifecycle holds shared application lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown operations such as the initial
// database ping and the HTTP server drain.
const DefaultTimeout = 30 * time.Second
