package entity

import "time"

// Outlet representa un punto de venta evaluado. ManagerID referencia al User
// que lo administra (opcional).
type Outlet struct {
	ID        string
	Name      string
	ManagerID string // vacío = sin manager asignado
	CreatedAt time.Time
}
