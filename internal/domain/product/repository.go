package product

import "context"

// Repository defines the interface for product persistence operations
type Repository interface {
	// Create creates a new product
	Create(ctx context.Context, product *Product) error

	// Get retrieves a product by ID
	Get(ctx context.Context, id string) (*Product, error)

	// List retrieves all products for the user
	List(ctx context.Context) ([]*Product, error)

	// Update updates an existing product
	Update(ctx context.Context, product *Product) error

	// Delete removes a product
	Delete(ctx context.Context, id string) error

	// Count returns the number of products for the user
	Count(ctx context.Context) (int64, error)
}
