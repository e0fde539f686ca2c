package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/performance-hub/internal/domain"
	"github.com/tu-usuario/performance-hub/internal/domain/entity"
	"github.com/tu-usuario/performance-hub/internal/domain/repository"
)

var _ repository.PeriodRepository = (*PeriodRepo)(nil)

// PeriodRepo implementación del puerto PeriodRepository sobre PostgreSQL.
type PeriodRepo struct {
	pool *pgxpool.Pool
}

// NewPeriodRepository construye el adaptador de persistencia para periodos.
func NewPeriodRepository(pool *pgxpool.Pool) *PeriodRepo {
	return &PeriodRepo{pool: pool}
}

// Create persiste un nuevo periodo. El constraint único sobre (month, year)
// rechaza duplicados con domain.ErrDuplicate.
func (r *PeriodRepo) Create(period *entity.Period) error {
	query := `
		INSERT INTO periods (id, month, year, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(context.Background(), query,
		period.ID, period.Month, period.Year, period.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert period: %w", err)
	}
	return nil
}

// GetByID obtiene un periodo por ID.
func (r *PeriodRepo) GetByID(id string) (*entity.Period, error) {
	query := `SELECT id, month, year, created_at FROM periods WHERE id = $1`
	var p entity.Period
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Month, &p.Year, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get period by id: %w", err)
	}
	return &p, nil
}

// List devuelve los periodos ordenados ascendente por (year, month).
func (r *PeriodRepo) List() ([]*entity.Period, error) {
	query := `SELECT id, month, year, created_at FROM periods ORDER BY year, month`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}
	defer rows.Close()
	var list []*entity.Period
	for rows.Next() {
		var p entity.Period
		if err := rows.Scan(&p.ID, &p.Month, &p.Year, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan period: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
