package ports

import (
	"context"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/product"
)

// ProductRepository defines the read-only contract with the product store.
type ProductRepository interface {
	// Get retrieves a product by id.
	// Returns ObjectNotFoundError if the product does not exist.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByIDs retrieves the products for the given ids. Missing ids are
	// simply absent from the result; callers decide whether that is an error.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}
