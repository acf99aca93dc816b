package product

import (
	"context"

	"github.com/fekuna/secure-duka/internal/model"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)

	// AddStock increments stock in one transaction and returns the updated row.
	AddStock(ctx context.Context, id int64, quantity int) (*model.Product, error)
}
