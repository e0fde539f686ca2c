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

var _ repository.KPIRepository = (*KPIRepo)(nil)

// KPIRepo implementación del puerto KPIRepository sobre PostgreSQL.
type KPIRepo struct {
	pool *pgxpool.Pool
}

// NewKPIRepository construye el adaptador de persistencia para KPIs.
func NewKPIRepository(pool *pgxpool.Pool) *KPIRepo {
	return &KPIRepo{pool: pool}
}

// Create persiste un nuevo KPI.
func (r *KPIRepo) Create(kpi *entity.KPI) error {
	query := `INSERT INTO kpis (id, name, created_at) VALUES ($1, $2, $3)`
	_, err := r.pool.Exec(context.Background(), query, kpi.ID, kpi.Name, kpi.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert kpi: %w", err)
	}
	return nil
}

// GetByID obtiene un KPI por ID.
func (r *KPIRepo) GetByID(id string) (*entity.KPI, error) {
	query := `SELECT id, name, created_at FROM kpis WHERE id = $1`
	var k entity.KPI
	err := r.pool.QueryRow(context.Background(), query, id).Scan(&k.ID, &k.Name, &k.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get kpi by id: %w", err)
	}
	return &k, nil
}

// List devuelve todos los KPIs.
func (r *KPIRepo) List() ([]*entity.KPI, error) {
	query := `SELECT id, name, created_at FROM kpis ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list kpis: %w", err)
	}
	defer rows.Close()
	var list []*entity.KPI
	for rows.Next() {
		var k entity.KPI
		if err := rows.Scan(&k.ID, &k.Name, &k.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan kpi: %w", err)
		}
		list = append(list, &k)
	}
	return list, rows.Err()
}
