// Package delivery holds the transports that expose the use cases: the HTTP
// API and the booking event worker.
package delivery

import "context"

// Delivery is a long-running transport started by the application root.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
