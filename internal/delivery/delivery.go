// Package delivery holds the outer surfaces that drive the storefront usecases.
package delivery

import "context"

// Delivery is a long-running surface started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
