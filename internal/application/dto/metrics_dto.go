package dto

import "github.com/shopspring/decimal"

// SeriesPointResponse un punto de la serie temporal de un KPI para un outlet.
// Period siempre en formato "YYYY-MM" (mes a dos dígitos).
type SeriesPointResponse struct {
	Period string          `json:"period"`
	Value  decimal.Decimal `json:"value"`
	Note   *string         `json:"note"`
}
