package dto

// CreateOutletRequest alta de punto de venta.
type CreateOutletRequest struct {
	Name string `json:"name"`
}

// OutletResponse punto de venta.
type OutletResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ManagerID string `json:"manager_id,omitempty"`
}
