package product

import (
	"context"

	"github.com/fekuna/secure-duka/internal/model"
	"github.com/fekuna/secure-duka/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	Restock(ctx context.Context, input *dto.RestockInput) (*model.Product, error)
}
