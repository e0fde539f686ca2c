package repository

import "github.com/tu-usuario/performance-hub/internal/domain/entity"

// PeriodRepository puerto de persistencia para Period.
// Create devuelve domain.ErrDuplicate si (month, year) ya existe.
type PeriodRepository interface {
	Create(period *entity.Period) error
	GetByID(id string) (*entity.Period, error)
	// List devuelve los periodos ordenados ascendente por (year, month).
	List() ([]*entity.Period, error)
}
