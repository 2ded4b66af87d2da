// Package delivery defines the contract every transport adapter fulfills.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the composition root.
// Serve blocks until the surface shuts down.
type Delivery interface {
	Serve(ctx context.Context) error
}
