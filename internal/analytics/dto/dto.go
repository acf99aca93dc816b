package dto

// RawSaleDateFormat is the date layout of raw sales rows.
const RawSaleDateFormat = "2006-01-02"

type RawSale struct {
	Date     string `json:"date"`
	Quantity int    `json:"quantity"`
}
