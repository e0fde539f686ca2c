package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/performance-hub/internal/application/dto"
	"github.com/tu-usuario/performance-hub/internal/domain"
	"github.com/tu-usuario/performance-hub/internal/domain/entity"
	"github.com/tu-usuario/performance-hub/internal/domain/repository"
)

// PeriodUseCase casos de uso para periodos de evaluación.
type PeriodUseCase struct {
	repo repository.PeriodRepository
}

// NewPeriodUseCase construye el caso de uso.
func NewPeriodUseCase(repo repository.PeriodRepository) *PeriodUseCase {
	return &PeriodUseCase{repo: repo}
}

// Create crea un periodo. Mes fuera de 1-12 es entrada inválida; el par
// (month, year) duplicado lo rechaza el constraint único del store.
func (uc *PeriodUseCase) Create(in dto.CreatePeriodRequest) (*dto.PeriodResponse, error) {
	if in.Month < 1 || in.Month > 12 || in.Year <= 0 {
		return nil, domain.ErrInvalidInput
	}
	period := &entity.Period{
		ID:        uuid.New().String(),
		Month:     in.Month,
		Year:      in.Year,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(period); err != nil {
		return nil, err
	}
	return toPeriodResponse(period), nil
}

// List devuelve los periodos ordenados ascendente por (year, month).
func (uc *PeriodUseCase) List() ([]*dto.PeriodResponse, error) {
	periods, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		out = append(out, toPeriodResponse(p))
	}
	return out, nil
}

func toPeriodResponse(p *entity.Period) *dto.PeriodResponse {
	return &dto.PeriodResponse{ID: p.ID, Month: p.Month, Year: p.Year}
}
