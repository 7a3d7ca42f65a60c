// Package delivery defines the contract for the service's inbound transports.
package delivery

import "context"

// Delivery is a long-running inbound transport started by the composition root.
type Delivery interface {
	// Serve blocks until the transport stops. It returns nil on graceful shutdown.
	Serve(ctx context.Context) error
}
