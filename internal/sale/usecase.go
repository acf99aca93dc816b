package sale

import (
	"context"

	"github.com/fekuna/secure-duka/internal/model"
	"github.com/fekuna/secure-duka/internal/sale/dto"
)

type UseCase interface {
	RecordSale(ctx context.Context, input *dto.RecordSaleInput) (*dto.SaleResult, error)
	ImportSale(ctx context.Context, input *dto.ImportSaleInput) (*model.Sale, error)
	ListSales(ctx context.Context, productID int64) ([]model.Sale, error)
}
