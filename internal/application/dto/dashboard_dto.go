// Package dto define las formas de respuesta y petición de la API HTTP.
package dto

import "github.com/tu-usuario/warehouse-analytics/internal/application/store"

// ErrorResponse cuerpo de error estándar de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SnapshotResponse respuesta de GET /api/dashboard/snapshot.
//
// Error es null cuando el último ciclo publicó con éxito; Data es null solo
// si aún no se ha publicado ningún snapshot (primer arranque con fallo de
// agregación).
type SnapshotResponse struct {
	Loading bool            `json:"loading"`
	Error   *string         `json:"error"`
	Data    *store.Snapshot `json:"data"`
}

// SetIntervalRequest cuerpo de PUT /api/dashboard/interval.
// Los valores habituales de la UI son 10000, 30000, 60000 y 300000 ms, pero
// se acepta cualquier valor positivo.
type SetIntervalRequest struct {
	IntervalMS int64 `json:"interval_ms"`
}
