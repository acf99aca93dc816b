package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/secure-duka/internal/analytics"
	"github.com/fekuna/secure-duka/internal/analytics/dto"
	"github.com/fekuna/secure-duka/internal/apperror"
	"github.com/fekuna/secure-duka/internal/forecast"
	"github.com/fekuna/secure-duka/internal/logger"
	"github.com/fekuna/secure-duka/internal/product"
	"github.com/fekuna/secure-duka/internal/sale"
	"go.uber.org/zap"
)

type analyticsUseCase struct {
	products product.Repository
	sales    sale.Repository
	now      func() time.Time
	logger   logger.ZapLogger
}

func NewAnalyticsUseCase(products product.Repository, sales sale.Repository, log logger.ZapLogger) analytics.UseCase {
	return &analyticsUseCase{
		products: products,
		sales:    sales,
		now:      time.Now,
		logger:   log,
	}
}

func (uc *analyticsUseCase) Forecast(ctx context.Context, productID int64) (*forecast.ProductForecast, error) {
	p, err := uc.products.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if p == nil {
		return nil, apperror.ErrNotFound
	}

	sales, err := uc.sales.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	return forecast.ForecastProduct(*p, sales)
}

func (uc *analyticsUseCase) RestockReport(ctx context.Context, daysThreshold int) (*forecast.RestockReport, error) {
	if daysThreshold < 0 {
		return nil, fmt.Errorf("%w: days_threshold must not be negative", apperror.ErrInvalidInput)
	}

	products, err := uc.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	histories := make([]forecast.History, 0, len(products))
	for _, p := range products {
		sales, err := uc.sales.ListByProduct(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load sales for product %d: %w", p.ID, err)
		}
		histories = append(histories, forecast.History{Product: p, Sales: sales})
	}

	report := forecast.BuildRestockReport(histories, daysThreshold, uc.now())
	uc.logger.Debug("restock report built",
		zap.Int("days_threshold", daysThreshold),
		zap.Int("monitored", report.TotalItemsMonitored),
		zap.Int("flagged", len(report.UrgentRestocks)),
	)
	return report, nil
}

func (uc *analyticsUseCase) RawSales(ctx context.Context, productID int64) ([]dto.RawSale, error) {
	sales, err := uc.sales.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	rows := make([]dto.RawSale, len(sales))
	for i, s := range sales {
		rows[i] = dto.RawSale{
			Date:     s.SaleDate.UTC().Format(dto.RawSaleDateFormat),
			Quantity: s.QuantitySold,
		}
	}
	return rows, nil
}
