package dto

// CreatePeriodRequest alta de periodo mensual.
type CreatePeriodRequest struct {
	Month int `json:"month"` // 1-12
	Year  int `json:"year"`
}

// PeriodResponse periodo.
type PeriodResponse struct {
	ID    string `json:"id"`
	Month int    `json:"month"`
	Year  int    `json:"year"`
}
