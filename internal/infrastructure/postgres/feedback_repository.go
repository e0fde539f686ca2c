package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/performance-hub/internal/domain"
	"github.com/tu-usuario/performance-hub/internal/domain/entity"
	"github.com/tu-usuario/performance-hub/internal/domain/repository"
)

var _ repository.FeedbackRepository = (*FeedbackRepo)(nil)

// FeedbackRepo implementación del puerto FeedbackRepository sobre PostgreSQL.
type FeedbackRepo struct {
	pool *pgxpool.Pool
}

// NewFeedbackRepository construye el adaptador de persistencia para feedback.
func NewFeedbackRepository(pool *pgxpool.Pool) *FeedbackRepo {
	return &FeedbackRepo{pool: pool}
}

// Create persiste un comentario.
func (r *FeedbackRepo) Create(feedback *entity.Feedback) error {
	query := `
		INSERT INTO feedback (id, outlet_id, period_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		feedback.ID, feedback.OutletID, feedback.PeriodID, feedback.Text, feedback.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

// ListByOutlet devuelve el feedback de un outlet ordenado por period_id.
func (r *FeedbackRepo) ListByOutlet(outletID string) ([]*entity.Feedback, error) {
	query := `
		SELECT id, outlet_id, period_id, text, created_at
		FROM feedback WHERE outlet_id = $1 ORDER BY period_id`
	rows, err := r.pool.Query(context.Background(), query, outletID)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()
	var list []*entity.Feedback
	for rows.Next() {
		var fb entity.Feedback
		if err := rows.Scan(&fb.ID, &fb.OutletID, &fb.PeriodID, &fb.Text, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		list = append(list, &fb)
	}
	return list, rows.Err()
}
