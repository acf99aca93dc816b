package forecast

import (
	"errors"
	"testing"
	"time"

	"github.com/fekuna/secure-duka/internal/apperror"
	"github.com/fekuna/secure-duka/internal/model"
	"github.com/shopspring/decimal"
)

var day0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func at(days int, hours int) time.Time {
	return day0.Add(time.Duration(days)*day + time.Duration(hours)*time.Hour)
}

func TestVelocity(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   float64
	}{
		{"four day span", []Point{{at(0, 0), 2}, {at(4, 0), 8}}, 2.5},
		{"single record floors to one day", []Point{{at(0, 0), 7}}, 7},
		{"same day floors to one day", []Point{{at(0, 0), 3}, {at(0, 5), 4}}, 7},
		{"partial days are floored", []Point{{at(0, 0), 3}, {at(2, 20), 3}}, 3},
		{"unordered input", []Point{{at(4, 0), 8}, {at(0, 0), 2}}, 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Velocity(tt.points)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Velocity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVelocityNoSales(t *testing.T) {
	if _, err := Velocity(nil); !errors.Is(err, apperror.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestDaysRemaining(t *testing.T) {
	days, err := DaysRemaining(10, 2.5)
	if err != nil || days != 4.0 {
		t.Fatalf("DaysRemaining(10, 2.5) = %v, %v", days, err)
	}
	days, err = DaysRemaining(2, 2.5)
	if err != nil || round(days, 1) != 0.8 {
		t.Fatalf("DaysRemaining(2, 2.5) = %v, %v", days, err)
	}
	if _, err := DaysRemaining(5, 0); !errors.Is(err, apperror.ErrNoVelocity) {
		t.Fatalf("expected ErrNoVelocity, got %v", err)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		days      float64
		threshold float64
		want      Status
		reported  bool
	}{
		{0.8, 3, StatusUrgent, true},
		{1, 3, StatusUrgent, true},
		{1.01, 3, StatusWarning, true},
		{3, 3, StatusWarning, true},
		{4, 3, "", false},
		{4, 5, StatusWarning, true},
		{0, 0, StatusUrgent, true},
		{0.5, 0, "", false},
	}
	for _, tt := range tests {
		got, ok := Classify(tt.days, tt.threshold)
		if got != tt.want || ok != tt.reported {
			t.Errorf("Classify(%v, %v) = %q, %v; want %q, %v", tt.days, tt.threshold, got, ok, tt.want, tt.reported)
		}
	}
}

func product(id int64, name string, stock int) model.Product {
	return model.Product{ID: id, Name: name, Price: decimal.NewFromInt(10), Stock: stock}
}

func sales(productID int64, entries ...Point) []model.Sale {
	out := make([]model.Sale, len(entries))
	for i, e := range entries {
		out[i] = model.Sale{ID: int64(i + 1), ProductID: productID, QuantitySold: e.Quantity, SaleDate: e.Date}
	}
	return out
}

func TestForecastProduct(t *testing.T) {
	f, err := ForecastProduct(product(1, "Blue Band 500g", 10), sales(1, Point{at(0, 0), 2}, Point{at(4, 0), 8}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Product != "Blue Band 500g" || f.CurrentStock != 10 || f.AvgDailyVelocity != 2.5 || f.EstimatedDaysRemaining != 4.0 {
		t.Fatalf("unexpected forecast: %+v", f)
	}

	f, err = ForecastProduct(product(2, "Sugar 1kg", 10), sales(2, Point{at(0, 0), 1}, Point{at(3, 0), 1}, Point{at(3, 1), 1}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.AvgDailyVelocity != 1 || f.EstimatedDaysRemaining != 10 {
		t.Fatalf("unexpected rounding: %+v", f)
	}

	if _, err := ForecastProduct(product(3, "Salt", 5), nil); !errors.Is(err, apperror.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestBuildRestockReport(t *testing.T) {
	now := at(10, 0)
	histories := []History{
		{Product: product(1, "Warning stock", 10), Sales: sales(1, Point{at(0, 0), 2}, Point{at(4, 0), 8})},
		{Product: product(2, "Urgent stock", 2), Sales: sales(2, Point{at(0, 0), 2}, Point{at(4, 0), 8})},
		{Product: product(3, "Single sale", 0), Sales: sales(3, Point{at(0, 0), 50})},
		{Product: product(4, "Never sold", 0)},
		{Product: product(5, "Healthy", 500), Sales: sales(5, Point{at(0, 0), 1}, Point{at(1, 0), 1})},
	}

	report := BuildRestockReport(histories, DefaultDaysThreshold, now)
	if report.TotalItemsMonitored != 5 {
		t.Fatalf("TotalItemsMonitored = %d", report.TotalItemsMonitored)
	}
	if !report.ReportGeneratedAt.Equal(now) {
		t.Fatalf("ReportGeneratedAt = %v", report.ReportGeneratedAt)
	}
	if len(report.UrgentRestocks) != 1 {
		t.Fatalf("expected one item at threshold 3, got %+v", report.UrgentRestocks)
	}
	got := report.UrgentRestocks[0]
	if got.ProductID != 2 || got.DaysRemaining != 0.8 || got.Status != StatusUrgent {
		t.Fatalf("unexpected item: %+v", got)
	}

	report = BuildRestockReport(histories, 5, now)
	if len(report.UrgentRestocks) != 2 {
		t.Fatalf("expected two items at threshold 5, got %+v", report.UrgentRestocks)
	}
	if report.UrgentRestocks[0].ProductID != 1 || report.UrgentRestocks[0].Status != StatusWarning {
		t.Fatalf("report must follow product order: %+v", report.UrgentRestocks)
	}
	if report.UrgentRestocks[1].ProductID != 2 {
		t.Fatalf("report must follow product order: %+v", report.UrgentRestocks)
	}
}

func TestBuildRestockReportEmpty(t *testing.T) {
	report := BuildRestockReport(nil, DefaultDaysThreshold, day0)
	if report.TotalItemsMonitored != 0 {
		t.Fatalf("TotalItemsMonitored = %d", report.TotalItemsMonitored)
	}
	if report.UrgentRestocks == nil || len(report.UrgentRestocks) != 0 {
		t.Fatalf("UrgentRestocks must be an empty, non-nil slice: %#v", report.UrgentRestocks)
	}
}
