// Package delivery defines the contract every transport front end
// satisfies.
package delivery

import "context"

// Delivery is a serving surface started by main and stopped through fx
// lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
