package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/secure-duka/internal/apperror"
	"github.com/fekuna/secure-duka/internal/database"
	"github.com/fekuna/secure-duka/internal/forecast"
	"github.com/fekuna/secure-duka/internal/logger"
	"github.com/fekuna/secure-duka/internal/model"
	prodRepo "github.com/fekuna/secure-duka/internal/product/repository"
	saleRepo "github.com/fekuna/secure-duka/internal/sale/repository"
	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	uc       *analyticsUseCase
	products *prodRepo.SQLRepository
	sales    *saleRepo.SQLRepository
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := database.NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	f := &fixture{products: prodRepo.NewSQLRepository(db), sales: saleRepo.NewSQLRepository(db)}
	f.uc = NewAnalyticsUseCase(f.products, f.sales, logger.NewNop()).(*analyticsUseCase)
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func (f *fixture) product(t *testing.T, name string, stock int, quantities ...int) int64 {
	t.Helper()
	ctx := context.Background()
	p := &model.Product{Name: name, Price: decimal.NewFromInt(100), Stock: stock}
	if err := f.products.Create(ctx, p); err != nil {
		t.Fatalf("create product: %v", err)
	}
	// one sale per day, oldest first
	for i, q := range quantities {
		s := &model.Sale{ProductID: p.ID, QuantitySold: q, SaleDate: fixedNow.AddDate(0, 0, i-len(quantities))}
		if err := f.sales.Create(ctx, s); err != nil {
			t.Fatalf("create sale: %v", err)
		}
	}
	return p.ID
}

func TestForecast(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	id := f.product(t, "Blue Band 500g", 10, 2, 3, 3, 2)

	got, err := f.uc.Forecast(ctx, id)
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	// 10 units over a 3 day span
	if got.AvgDailyVelocity != 3.33 || got.EstimatedDaysRemaining != 3.0 || got.CurrentStock != 10 {
		t.Fatalf("unexpected forecast: %+v", got)
	}
}

func TestForecastFailures(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	if _, err := f.uc.Forecast(ctx, 77); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	id := f.product(t, "Never sold", 4)
	if _, err := f.uc.Forecast(ctx, id); !errors.Is(err, apperror.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestRestockReport(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.product(t, "Healthy", 500, 1, 1, 1)
	urgent := f.product(t, "Almost gone", 2, 4, 4, 4)
	f.product(t, "One sale", 1, 5)

	report, err := f.uc.RestockReport(ctx, forecast.DefaultDaysThreshold)
	if err != nil {
		t.Fatalf("RestockReport: %v", err)
	}
	if report.TotalItemsMonitored != 3 {
		t.Fatalf("TotalItemsMonitored = %d, want 3", report.TotalItemsMonitored)
	}
	if len(report.UrgentRestocks) != 1 {
		t.Fatalf("expected one flagged product, got %+v", report.UrgentRestocks)
	}
	item := report.UrgentRestocks[0]
	if item.ProductID != urgent || item.Status != forecast.StatusUrgent || item.DaysRemaining != 0.3 {
		t.Fatalf("unexpected item: %+v", item)
	}
	if !report.ReportGeneratedAt.Equal(fixedNow) {
		t.Fatalf("ReportGeneratedAt = %v", report.ReportGeneratedAt)
	}

	if _, err := f.uc.RestockReport(ctx, -1); !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRestockReportEmptyLedger(t *testing.T) {
	f := setup(t)
	report, err := f.uc.RestockReport(context.Background(), forecast.DefaultDaysThreshold)
	if err != nil {
		t.Fatalf("RestockReport: %v", err)
	}
	if report.TotalItemsMonitored != 0 || report.UrgentRestocks == nil || len(report.UrgentRestocks) != 0 {
		t.Fatalf("unexpected empty report: %+v", report)
	}
}

func TestRawSales(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	id := f.product(t, "Milk", 10, 2, 7)

	rows, err := f.uc.RawSales(ctx, id)
	if err != nil {
		t.Fatalf("RawSales: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %+v", rows)
	}
	if rows[0].Date != "2024-05-08" || rows[0].Quantity != 2 || rows[1].Date != "2024-05-09" {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	unknown, err := f.uc.RawSales(ctx, 404)
	if err != nil || unknown == nil || len(unknown) != 0 {
		t.Fatalf("unknown product should yield an empty list, got %#v, %v", unknown, err)
	}
}
