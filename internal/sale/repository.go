package sale

import (
	"context"

	"github.com/fekuna/secure-duka/internal/model"
)

type Repository interface {
	// Create appends a historical sale without touching stock.
	Create(ctx context.Context, sale *model.Sale) error
	// ListByProduct returns the product's sales oldest first.
	ListByProduct(ctx context.Context, productID int64) ([]model.Sale, error)

	// RecordWithStock decrements stock and appends the sale atomically and
	// returns the product as it stands after the sale.
	RecordWithStock(ctx context.Context, sale *model.Sale) (*model.Product, error)
}
