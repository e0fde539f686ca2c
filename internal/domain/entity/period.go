package entity

import (
	"fmt"
	"time"
)

// Period ventana de evaluación mensual. El par (Month, Year) es único en el store.
type Period struct {
	ID        string
	Month     int // 1-12
	Year      int
	CreatedAt time.Time
}

// Label etiqueta "YYYY-MM" con mes a dos dígitos (2024-03, nunca 2024-3).
func (p Period) Label() string {
	return fmt.Sprintf("%d-%02d", p.Year, p.Month)
}
