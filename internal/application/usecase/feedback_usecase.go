package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/performance-hub/internal/application/dto"
	"github.com/tu-usuario/performance-hub/internal/domain/entity"
	"github.com/tu-usuario/performance-hub/internal/domain/repository"
)

// FeedbackUseCase casos de uso para feedback textual.
type FeedbackUseCase struct {
	repo repository.FeedbackRepository
}

// NewFeedbackUseCase construye el caso de uso.
func NewFeedbackUseCase(repo repository.FeedbackRepository) *FeedbackUseCase {
	return &FeedbackUseCase{repo: repo}
}

// Create registra un comentario para (outlet, period).
func (uc *FeedbackUseCase) Create(in dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	fb := &entity.Feedback{
		ID:        uuid.New().String(),
		OutletID:  in.OutletID,
		PeriodID:  in.PeriodID,
		Text:      in.Text,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(fb); err != nil {
		return nil, err
	}
	return toFeedbackResponse(fb), nil
}

// ListByOutlet devuelve el feedback de un outlet ordenado por period_id.
func (uc *FeedbackUseCase) ListByOutlet(outletID string) ([]*dto.FeedbackResponse, error) {
	items, err := uc.repo.ListByOutlet(outletID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FeedbackResponse, 0, len(items))
	for _, fb := range items {
		out = append(out, toFeedbackResponse(fb))
	}
	return out, nil
}

func toFeedbackResponse(fb *entity.Feedback) *dto.FeedbackResponse {
	return &dto.FeedbackResponse{ID: fb.ID, OutletID: fb.OutletID, PeriodID: fb.PeriodID, Text: fb.Text}
}
