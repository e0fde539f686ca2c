package dto

// CreateKPIRequest alta de indicador.
type CreateKPIRequest struct {
	Name string `json:"name"`
}

// KPIResponse indicador.
type KPIResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
