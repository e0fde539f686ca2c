package entity

import "time"

// Feedback comentario de texto libre sobre un Outlet en un Period.
type Feedback struct {
	ID        string
	OutletID  string
	PeriodID  string
	Text      string
	CreatedAt time.Time
}
