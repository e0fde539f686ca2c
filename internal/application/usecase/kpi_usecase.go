package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/performance-hub/internal/application/dto"
	"github.com/tu-usuario/performance-hub/internal/domain/entity"
	"github.com/tu-usuario/performance-hub/internal/domain/repository"
)

// KPIUseCase casos de uso para indicadores.
type KPIUseCase struct {
	repo repository.KPIRepository
}

// NewKPIUseCase construye el caso de uso.
func NewKPIUseCase(repo repository.KPIRepository) *KPIUseCase {
	return &KPIUseCase{repo: repo}
}

// Create crea un KPI. Nombre duplicado lo rechaza el constraint único.
func (uc *KPIUseCase) Create(in dto.CreateKPIRequest) (*dto.KPIResponse, error) {
	kpi := &entity.KPI{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(kpi); err != nil {
		return nil, err
	}
	return &dto.KPIResponse{ID: kpi.ID, Name: kpi.Name}, nil
}

// List devuelve todos los KPIs.
func (uc *KPIUseCase) List() ([]*dto.KPIResponse, error) {
	kpis, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.KPIResponse, 0, len(kpis))
	for _, k := range kpis {
		out = append(out, &dto.KPIResponse{ID: k.ID, Name: k.Name})
	}
	return out, nil
}
