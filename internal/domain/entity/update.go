package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Update valor registrado de un KPI para un Outlet en un Period.
// La tripleta (OutletID, PeriodID, KPIID) es única: escrituras repetidas
// sobre la misma tripleta hacen upsert (última escritura gana).
type Update struct {
	ID        string
	OutletID  string
	PeriodID  string
	KPIID     string
	Value     decimal.Decimal
	Note      *string // nil = sin nota
	CreatedAt time.Time
}
