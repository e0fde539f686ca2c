package repository

import "github.com/tu-usuario/performance-hub/internal/domain/entity"

// FeedbackRepository puerto de persistencia para Feedback.
type FeedbackRepository interface {
	Create(feedback *entity.Feedback) error
	// ListByOutlet devuelve el feedback de un outlet ordenado por period_id.
	ListByOutlet(outletID string) ([]*entity.Feedback, error)
}
