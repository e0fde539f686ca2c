package dto

// CreateFeedbackRequest alta de comentario para un outlet en un periodo.
type CreateFeedbackRequest struct {
	OutletID string `json:"outlet_id"`
	PeriodID string `json:"period_id"`
	Text     string `json:"text"`
}

// FeedbackResponse comentario registrado.
type FeedbackResponse struct {
	ID       string `json:"id"`
	OutletID string `json:"outlet_id"`
	PeriodID string `json:"period_id"`
	Text     string `json:"text"`
}
