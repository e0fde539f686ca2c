package repository

import "github.com/tu-usuario/performance-hub/internal/domain/entity"

// OutletRepository puerto de persistencia para Outlet.
type OutletRepository interface {
	Create(outlet *entity.Outlet) error
	GetByID(id string) (*entity.Outlet, error)
	List() ([]*entity.Outlet, error)
}
