package dto

import "github.com/shopspring/decimal"

// CreateUpdateRequest registro (upsert) del valor de un KPI para un outlet en un periodo.
type CreateUpdateRequest struct {
	OutletID string          `json:"outlet_id"`
	PeriodID string          `json:"period_id"`
	KPIID    string          `json:"kpi_id"`
	Value    decimal.Decimal `json:"value"`
	Note     *string         `json:"note,omitempty"`
}

// UpdateResponse valor registrado.
type UpdateResponse struct {
	ID       string          `json:"id"`
	OutletID string          `json:"outlet_id"`
	PeriodID string          `json:"period_id"`
	KPIID    string          `json:"kpi_id"`
	Value    decimal.Decimal `json:"value"`
	Note     *string         `json:"note"`
}
