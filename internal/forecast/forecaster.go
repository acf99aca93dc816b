package forecast

import (
	"github.com/fekuna/secure-duka/internal/apperror"
	"github.com/fekuna/secure-duka/internal/model"
)

const DefaultDaysThreshold = 3

type Status string

const (
	StatusUrgent  Status = "URGENT"
	StatusWarning Status = "WARNING"
)

// DaysRemaining estimates days until stockout at the given velocity.
func DaysRemaining(stock int, velocity float64) (float64, error) {
	if velocity <= 0 {
		return 0, apperror.ErrNoVelocity
	}
	return float64(stock) / velocity, nil
}

// Classify reports whether days falls within threshold and, if so, which
// tier it belongs to. Anything at or below one day is urgent.
func Classify(days float64, threshold float64) (Status, bool) {
	if days > threshold {
		return "", false
	}
	if days <= 1 {
		return StatusUrgent, true
	}
	return StatusWarning, true
}

type ProductForecast struct {
	ProductID              int64   `json:"product_id"`
	Product                string  `json:"product"`
	CurrentStock           int     `json:"current_stock"`
	AvgDailyVelocity       float64 `json:"avg_daily_velocity"`
	EstimatedDaysRemaining float64 `json:"estimated_days_remaining"`
}

// ForecastProduct needs at least one sale; velocity is rounded to two
// places and days remaining to one.
func ForecastProduct(p model.Product, sales []model.Sale) (*ProductForecast, error) {
	velocity, err := Velocity(PointsFromSales(sales))
	if err != nil {
		return nil, err
	}
	days, err := DaysRemaining(p.Stock, velocity)
	if err != nil {
		return nil, err
	}
	return &ProductForecast{
		ProductID:              p.ID,
		Product:                p.Name,
		CurrentStock:           p.Stock,
		AvgDailyVelocity:       round(velocity, 2),
		EstimatedDaysRemaining: round(days, 1),
	}, nil
}
