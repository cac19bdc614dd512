// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP, worker) started by the composition
// root and stopped through its fx lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
