package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/performance-hub/internal/application/dto"
	"github.com/tu-usuario/performance-hub/internal/domain/entity"
	"github.com/tu-usuario/performance-hub/internal/domain/repository"
)

// UpdateUseCase casos de uso para valores de KPI por outlet y periodo.
type UpdateUseCase struct {
	repo repository.UpdateRepository
}

// NewUpdateUseCase construye el caso de uso.
func NewUpdateUseCase(repo repository.UpdateRepository) *UpdateUseCase {
	return &UpdateUseCase{repo: repo}
}

// Create registra el valor de la tripleta (outlet, period, kpi). Si la tripleta
// ya tenía valor se reemplaza (última escritura gana); las referencias a
// outlet/period/kpi inexistentes las rechazan las FK del store.
func (uc *UpdateUseCase) Create(in dto.CreateUpdateRequest) (*dto.UpdateResponse, error) {
	update := &entity.Update{
		ID:        uuid.New().String(),
		OutletID:  in.OutletID,
		PeriodID:  in.PeriodID,
		KPIID:     in.KPIID,
		Value:     in.Value,
		Note:      in.Note,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Upsert(update); err != nil {
		return nil, err
	}
	return toUpdateResponse(update), nil
}

// ListByOutletAndKPI devuelve los updates del par ordenados por period_id.
func (uc *UpdateUseCase) ListByOutletAndKPI(outletID, kpiID string) ([]*dto.UpdateResponse, error) {
	updates, err := uc.repo.ListByOutletAndKPI(outletID, kpiID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UpdateResponse, 0, len(updates))
	for _, u := range updates {
		out = append(out, toUpdateResponse(u))
	}
	return out, nil
}

func toUpdateResponse(u *entity.Update) *dto.UpdateResponse {
	return &dto.UpdateResponse{
		ID:       u.ID,
		OutletID: u.OutletID,
		PeriodID: u.PeriodID,
		KPIID:    u.KPIID,
		Value:    u.Value,
		Note:     u.Note,
	}
}
