package model

import "time"

// Sale is an append-only ledger entry. It is never updated once written.
type Sale struct {
	ID           int64     `db:"id" json:"id"`
	ProductID    int64     `db:"product_id" json:"product_id"`
	QuantitySold int       `db:"quantity_sold" json:"quantity_sold"`
	SaleDate     time.Time `db:"sale_date" json:"sale_date"`
}
