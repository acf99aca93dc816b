package analytics

import (
	"context"

	"github.com/fekuna/secure-duka/internal/analytics/dto"
	"github.com/fekuna/secure-duka/internal/forecast"
)

type UseCase interface {
	Forecast(ctx context.Context, productID int64) (*forecast.ProductForecast, error)
	RestockReport(ctx context.Context, daysThreshold int) (*forecast.RestockReport, error)
	RawSales(ctx context.Context, productID int64) ([]dto.RawSale, error)
}
