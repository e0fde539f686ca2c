package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/performance-hub/internal/application/dto"
	"github.com/tu-usuario/performance-hub/internal/domain/entity"
	"github.com/tu-usuario/performance-hub/internal/domain/repository"
)

// OutletUseCase casos de uso para puntos de venta.
type OutletUseCase struct {
	repo repository.OutletRepository
}

// NewOutletUseCase construye el caso de uso.
func NewOutletUseCase(repo repository.OutletRepository) *OutletUseCase {
	return &OutletUseCase{repo: repo}
}

// Create crea un outlet; el principal autenticado queda como manager.
func (uc *OutletUseCase) Create(managerID string, in dto.CreateOutletRequest) (*dto.OutletResponse, error) {
	outlet := &entity.Outlet{
		ID:        uuid.New().String(),
		Name:      in.Name,
		ManagerID: managerID,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(outlet); err != nil {
		return nil, err
	}
	return toOutletResponse(outlet), nil
}

// List devuelve todos los outlets.
func (uc *OutletUseCase) List() ([]*dto.OutletResponse, error) {
	outlets, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OutletResponse, 0, len(outlets))
	for _, o := range outlets {
		out = append(out, toOutletResponse(o))
	}
	return out, nil
}

func toOutletResponse(o *entity.Outlet) *dto.OutletResponse {
	return &dto.OutletResponse{ID: o.ID, Name: o.Name, ManagerID: o.ManagerID}
}
