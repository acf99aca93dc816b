package dto

import (
	"time"

	"github.com/fekuna/secure-duka/internal/model"
)

type RecordSaleInput struct {
	ProductID int64
	Quantity  int
}

// ImportSaleInput backfills history, e.g. from the seeder. SaleDate is kept
// as given.
type ImportSaleInput struct {
	ProductID int64
	Quantity  int
	SaleDate  time.Time
}

type SaleResult struct {
	Sale    model.Sale
	Product model.Product
}
