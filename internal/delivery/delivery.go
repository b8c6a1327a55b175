// Package delivery defines the contract every transport surface of the
// application fulfils.
package delivery

import "context"

// Delivery is a long-running transport (HTTP today) started by the
// application container.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
