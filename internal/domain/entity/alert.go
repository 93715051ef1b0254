package entity

import "strings"

// SensorAlert alerta emitida por los sensores de stock del almacén.
type SensorAlert struct {
	ID        int    `json:"id"`
	ProductID string `json:"product_id"`
	Stock     int    `json:"stock"`
	Alert     string `json:"alert"`
	Timestamp string `json:"timestamp"`
}

// IsRestock indica si la alerta pide reposición: el mensaje contiene la
// subcadena "restock" (sin distinguir mayúsculas).
func (a SensorAlert) IsRestock() bool {
	return strings.Contains(strings.ToLower(a.Alert), "restock")
}
