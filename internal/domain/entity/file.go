package entity

import "time"

// File adjunto subido para un Outlet en un Period. Path es el identificador
// del artefacto en el almacenamiento externo; el contenido no se gestiona aquí.
type File struct {
	ID        string
	OutletID  string
	PeriodID  string
	Path      string
	CreatedAt time.Time
}
