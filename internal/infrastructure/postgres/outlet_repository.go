package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/performance-hub/internal/domain"
	"github.com/tu-usuario/performance-hub/internal/domain/entity"
	"github.com/tu-usuario/performance-hub/internal/domain/repository"
)

var _ repository.OutletRepository = (*OutletRepo)(nil)

// OutletRepo implementación del puerto OutletRepository sobre PostgreSQL.
type OutletRepo struct {
	pool *pgxpool.Pool
}

// NewOutletRepository construye el adaptador de persistencia para outlets.
func NewOutletRepository(pool *pgxpool.Pool) *OutletRepo {
	return &OutletRepo{pool: pool}
}

// Create persiste un nuevo outlet. ManagerID vacío se guarda como NULL.
func (r *OutletRepo) Create(outlet *entity.Outlet) error {
	query := `
		INSERT INTO outlets (id, name, manager_id, created_at)
		VALUES ($1, $2, $3, $4)`
	managerID := sql.NullString{String: outlet.ManagerID, Valid: outlet.ManagerID != ""}
	_, err := r.pool.Exec(context.Background(), query,
		outlet.ID, outlet.Name, managerID, outlet.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert outlet: %w", err)
	}
	return nil
}

// GetByID obtiene un outlet por ID.
func (r *OutletRepo) GetByID(id string) (*entity.Outlet, error) {
	query := `
		SELECT id, name, COALESCE(manager_id, ''), created_at
		FROM outlets WHERE id = $1`
	var o entity.Outlet
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Name, &o.ManagerID, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get outlet by id: %w", err)
	}
	return &o, nil
}

// List devuelve todos los outlets.
func (r *OutletRepo) List() ([]*entity.Outlet, error) {
	query := `
		SELECT id, name, COALESCE(manager_id, ''), created_at
		FROM outlets ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list outlets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Outlet
	for rows.Next() {
		var o entity.Outlet
		if err := rows.Scan(&o.ID, &o.Name, &o.ManagerID, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan outlet: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
