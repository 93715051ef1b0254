package entity

// ScanType tipo de lectura RFID.
type ScanType string

const (
	ScanIn   ScanType = "in"
	ScanOut  ScanType = "out"
	ScanMove ScanType = "move"
)

// RFIDLog es una lectura individual del escáner RFID.
type RFIDLog struct {
	ID        int      `json:"id"`
	ProductID string   `json:"product_id"`
	Location  string   `json:"location"`
	Timestamp string   `json:"timestamp"`
	ScanType  ScanType `json:"scan_type"`
}

// HeatmapCell es el conteo de actividad agrupado por (ubicación, hora del día).
// Es la unidad del heatmap: toda celda válida tiene hour ∈ [0,23] y
// activity_count ≥ 0.
type HeatmapCell struct {
	Location      string `json:"location"`
	Hour          int    `json:"hour"`
	ActivityCount int    `json:"activity_count"`
}
