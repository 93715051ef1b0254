package upstream

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/tu-usuario/warehouse-analytics/internal/application/refresh"
	"github.com/tu-usuario/warehouse-analytics/internal/domain/entity"
)

// Verificar en tiempo de compilación que Client implementa el puerto del
// controlador de refresco.
var _ refresh.UpstreamAPI = (*Client)(nil)

// InventoryLevels obtiene las instantáneas de stock del back-end operacional.
// GET /inventory-levels
func (c *Client) InventoryLevels(ctx context.Context) ([]entity.InventoryRecord, error) {
	var out []entity.InventoryRecord
	if err := c.getJSON(ctx, c.apiBaseURL, "/inventory-levels", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SensorAlerts obtiene las alertas de sensores.
// GET /sensor-alert — acepta array pelado o {sensor_alerts: [...]} (forma legada).
func (c *Client) SensorAlerts(ctx context.Context) ([]entity.SensorAlert, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, c.apiBaseURL, "/sensor-alert", nil, &raw); err != nil {
		return nil, err
	}
	return decodeListOrEnvelope[entity.SensorAlert](raw, "/sensor-alert", "sensor_alerts")
}

// RFIDLogs obtiene las lecturas RFID, opcionalmente acotadas por fecha
// (YYYY-MM-DD; cadena vacía = sin acotar).
// GET /rfid-logs?start_date=&end_date=
func (c *Client) RFIDLogs(ctx context.Context, startDate, endDate string) ([]entity.RFIDLog, error) {
	query := url.Values{}
	if startDate != "" {
		query.Set("start_date", startDate)
	}
	if endDate != "" {
		query.Set("end_date", endDate)
	}

	var out []entity.RFIDLog
	if err := c.getJSON(ctx, c.apiBaseURL, "/rfid-logs", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DemandPredictions obtiene las predicciones de demanda, de todos los
// productos o de uno solo si productID no es vacío.
// GET /predict-demand[/{product_id}] — acepta array pelado o {predictions: [...]}.
func (c *Client) DemandPredictions(ctx context.Context, productID string) ([]entity.DemandPrediction, error) {
	path := "/predict-demand"
	if productID != "" {
		path += "/" + url.PathEscape(productID)
	}

	var raw json.RawMessage
	if err := c.getJSON(ctx, c.apiBaseURL, path, nil, &raw); err != nil {
		return nil, err
	}
	return decodeListOrEnvelope[entity.DemandPrediction](raw, path, "predictions")
}

// Sales obtiene las ventas diarias del back-end de ventas.
// GET /sales
func (c *Client) Sales(ctx context.Context) ([]entity.SalesEntry, error) {
	var out []entity.SalesEntry
	if err := c.getJSON(ctx, c.salesAPIURL, "/sales", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
