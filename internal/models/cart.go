package models

// CartLine is one aggregated product entry in the shopping cart. Price is a
// snapshot taken when the product was first added; adding the same product
// again increments Quantity instead of appending a second line.
type CartLine struct {
	ProductID string `json:"id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"qty"`
}
