package handlers

type ProductRequest struct {
	Id          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Description string `json:"desc"`
	Color       string `json:"color"`
}

type ProductResponse struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Description string `json:"desc"`
	Color       string `json:"color"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type CartAddRequest struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"qty"`
}

type CartLineResponse struct {
	ProductID string `json:"id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"qty"`
	LineTotal int64  `json:"line_total"`
}

type CartSummary struct {
	Lines         []CartLineResponse `json:"lines"`
	TotalQuantity int                `json:"total_qty"`
	TotalPrice    int64              `json:"total_price"`
}

type CartCountResult struct {
	Count int `json:"count"`
}

type ActionResponse struct {
	Message   string `json:"action"`
	Timestamp string `json:"timestamp"`
}
