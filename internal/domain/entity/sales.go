package entity

// SalesEntry ventas diarias de un producto, según el back-end de ventas.
type SalesEntry struct {
	ID        int    `json:"id"`
	ProductID string `json:"product_id"`
	Month     int    `json:"month"`
	Year      int    `json:"year"`
	Sales     int    `json:"sales"`
	Date      string `json:"date"` // YYYY-MM-DD
}
