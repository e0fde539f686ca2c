package dto

// CreateFileRequest registro de metadatos de un adjunto.
type CreateFileRequest struct {
	OutletID string `json:"outlet_id"`
	PeriodID string `json:"period_id"`
	Path     string `json:"path"`
}

// FileResponse adjunto registrado.
type FileResponse struct {
	ID       string `json:"id"`
	OutletID string `json:"outlet_id"`
	PeriodID string `json:"period_id"`
	Path     string `json:"path"`
}
