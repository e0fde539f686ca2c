package entity

import "time"

// KPI indicador de desempeño con nombre único (ej. "Revenue", "NPS").
type KPI struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
