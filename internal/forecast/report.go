package forecast

import (
	"time"

	"github.com/fekuna/secure-duka/internal/model"
)

// minReportSales is the number of sales a product needs before it shows a
// trend worth reporting.
const minReportSales = 2

type History struct {
	Product model.Product
	Sales   []model.Sale
}

type RestockItem struct {
	ProductID     int64   `json:"product_id"`
	Product       string  `json:"product"`
	CurrentStock  int     `json:"current_stock"`
	DaysRemaining float64 `json:"days_remaining"`
	Status        Status  `json:"status"`
}

type RestockReport struct {
	ReportGeneratedAt   time.Time     `json:"report_generated_at"`
	UrgentRestocks      []RestockItem `json:"urgent_restocks"`
	TotalItemsMonitored int           `json:"total_items_monitored"`
}

// BuildRestockReport keeps the order of histories. Classification uses the
// unrounded days remaining; the reported value is rounded to one place.
func BuildRestockReport(histories []History, threshold int, now time.Time) *RestockReport {
	report := &RestockReport{
		ReportGeneratedAt:   now.UTC(),
		UrgentRestocks:      []RestockItem{},
		TotalItemsMonitored: len(histories),
	}

	for _, h := range histories {
		if len(h.Sales) < minReportSales {
			continue
		}
		velocity, err := Velocity(PointsFromSales(h.Sales))
		if err != nil {
			continue
		}
		days, err := DaysRemaining(h.Product.Stock, velocity)
		if err != nil {
			continue
		}
		status, ok := Classify(days, float64(threshold))
		if !ok {
			continue
		}
		report.UrgentRestocks = append(report.UrgentRestocks, RestockItem{
			ProductID:     h.Product.ID,
			Product:       h.Product.Name,
			CurrentStock:  h.Product.Stock,
			DaysRemaining: round(days, 1),
			Status:        status,
		})
	}
	return report
}
