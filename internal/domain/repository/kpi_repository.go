package repository

import "github.com/tu-usuario/performance-hub/internal/domain/entity"

// KPIRepository puerto de persistencia para KPI.
type KPIRepository interface {
	Create(kpi *entity.KPI) error
	GetByID(id string) (*entity.KPI, error)
	List() ([]*entity.KPI, error)
}
