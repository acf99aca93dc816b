// Package forecast turns a product's sale history into a daily sales
// velocity, an estimated number of days until stockout, and an aggregated
// restock report. Everything here is pure; callers load the data.
package forecast

import (
	"math"
	"time"

	"github.com/fekuna/secure-duka/internal/apperror"
	"github.com/fekuna/secure-duka/internal/model"
)

const day = 24 * time.Hour

// Point is one observation of units sold at a moment in time.
type Point struct {
	Date     time.Time
	Quantity int
}

func PointsFromSales(sales []model.Sale) []Point {
	points := make([]Point, len(sales))
	for i, s := range sales {
		points[i] = Point{Date: s.SaleDate, Quantity: s.QuantitySold}
	}
	return points
}

// SpanDays is the number of whole days between the earliest and the latest
// point, floored to 1. A single point or same-day history counts as one day.
func SpanDays(points []Point) int {
	if len(points) == 0 {
		return 1
	}
	earliest, latest := points[0].Date, points[0].Date
	for _, p := range points[1:] {
		if p.Date.Before(earliest) {
			earliest = p.Date
		}
		if p.Date.After(latest) {
			latest = p.Date
		}
	}
	days := int(latest.Sub(earliest) / day)
	if days < 1 {
		return 1
	}
	return days
}

// Velocity returns total units sold divided by SpanDays. It is an
// approximation: the divisor counts whole elapsed days, not calendar days
// with sales.
func Velocity(points []Point) (float64, error) {
	if len(points) == 0 {
		return 0, apperror.ErrInsufficientData
	}
	total := 0
	for _, p := range points {
		total += p.Quantity
	}
	return float64(total) / float64(SpanDays(points)), nil
}

func round(v float64, places int) float64 {
	f := math.Pow(10, float64(places))
	return math.Round(v*f) / f
}
