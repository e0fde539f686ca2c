package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/performance-hub/internal/domain"
	"github.com/tu-usuario/performance-hub/internal/domain/entity"
	"github.com/tu-usuario/performance-hub/internal/domain/repository"
)

var _ repository.FileRepository = (*FileRepo)(nil)

// FileRepo implementación del puerto FileRepository sobre PostgreSQL.
type FileRepo struct {
	pool *pgxpool.Pool
}

// NewFileRepository construye el adaptador de persistencia para adjuntos.
func NewFileRepository(pool *pgxpool.Pool) *FileRepo {
	return &FileRepo{pool: pool}
}

// Create persiste los metadatos de un adjunto.
func (r *FileRepo) Create(file *entity.File) error {
	query := `
		INSERT INTO files (id, outlet_id, period_id, path, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		file.ID, file.OutletID, file.PeriodID, file.Path, file.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert file: %w", err)
	}
	return nil
}

// ListByOutletAndPeriod devuelve los adjuntos del par.
func (r *FileRepo) ListByOutletAndPeriod(outletID, periodID string) ([]*entity.File, error) {
	query := `
		SELECT id, outlet_id, period_id, path, created_at
		FROM files WHERE outlet_id = $1 AND period_id = $2`
	rows, err := r.pool.Query(context.Background(), query, outletID, periodID)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()
	var list []*entity.File
	for rows.Next() {
		var f entity.File
		if err := rows.Scan(&f.ID, &f.OutletID, &f.PeriodID, &f.Path, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
