package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/performance-hub/internal/domain"
	"github.com/tu-usuario/performance-hub/internal/domain/entity"
	"github.com/tu-usuario/performance-hub/internal/domain/repository"
)

var _ repository.UpdateRepository = (*UpdateRepo)(nil)

// UpdateRepo implementación del puerto UpdateRepository sobre PostgreSQL.
// Los joins con periods/kpis se hacen aquí, explícitos, en vez de un grafo
// de objetos con carga perezosa: el costo del fetch queda a la vista.
type UpdateRepo struct {
	pool *pgxpool.Pool
}

// NewUpdateRepository construye el adaptador de persistencia para updates.
func NewUpdateRepository(pool *pgxpool.Pool) *UpdateRepo {
	return &UpdateRepo{pool: pool}
}

// Upsert inserta el valor de la tripleta (outlet, period, kpi) o lo reemplaza
// si ya existía: última escritura gana.
func (r *UpdateRepo) Upsert(update *entity.Update) error {
	query := `
		INSERT INTO updates (id, outlet_id, period_id, kpi_id, value, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (outlet_id, period_id, kpi_id)
		DO UPDATE SET value = EXCLUDED.value, note = EXCLUDED.note, created_at = EXCLUDED.created_at`
	_, err := r.pool.Exec(context.Background(), query,
		update.ID, update.OutletID, update.PeriodID, update.KPIID,
		update.Value, update.Note, update.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("upsert update: %w", err)
	}
	return nil
}

// ListByOutletAndKPI devuelve los updates del par ordenados por period_id.
func (r *UpdateRepo) ListByOutletAndKPI(outletID, kpiID string) ([]*entity.Update, error) {
	query := `
		SELECT id, outlet_id, period_id, kpi_id, value, note, created_at
		FROM updates
		WHERE outlet_id = $1 AND kpi_id = $2
		ORDER BY period_id`
	rows, err := r.pool.Query(context.Background(), query, outletID, kpiID)
	if err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}
	defer rows.Close()
	var list []*entity.Update
	for rows.Next() {
		var u entity.Update
		if err := rows.Scan(&u.ID, &u.OutletID, &u.PeriodID, &u.KPIID, &u.Value, &u.Note, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan update: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// ListSeries join updates × periods del par (outlet, kpi), ordenado
// cronológicamente. Proyecta solo lo que necesita la serie.
func (r *UpdateRepo) ListSeries(ctx context.Context, outletID, kpiID string) ([]repository.SeriesPoint, error) {
	query := `
		SELECT p.year, p.month, u.value, u.note
		FROM updates u
		JOIN periods p ON p.id = u.period_id
		WHERE u.outlet_id = $1 AND u.kpi_id = $2
		ORDER BY p.year, p.month`
	rows, err := r.pool.Query(ctx, query, outletID, kpiID)
	if err != nil {
		return nil, fmt.Errorf("query series: %w", err)
	}
	defer rows.Close()
	var points []repository.SeriesPoint
	for rows.Next() {
		var pt repository.SeriesPoint
		if err := rows.Scan(&pt.Year, &pt.Month, &pt.Value, &pt.Note); err != nil {
			return nil, fmt.Errorf("scan series point: %w", err)
		}
		points = append(points, pt)
	}
	return points, rows.Err()
}

// ListForDeck join updates × kpis del par (outlet, period). El orden por
// nombre de KPI es deliberado: un render estable entre motores de storage.
func (r *UpdateRepo) ListForDeck(ctx context.Context, outletID, periodID string) ([]repository.DeckRow, error) {
	query := `
		SELECT k.name, u.value, u.note
		FROM updates u
		JOIN kpis k ON k.id = u.kpi_id
		WHERE u.outlet_id = $1 AND u.period_id = $2
		ORDER BY k.name`
	rows, err := r.pool.Query(ctx, query, outletID, periodID)
	if err != nil {
		return nil, fmt.Errorf("query deck rows: %w", err)
	}
	defer rows.Close()
	var list []repository.DeckRow
	for rows.Next() {
		var d repository.DeckRow
		if err := rows.Scan(&d.KPIName, &d.Value, &d.Note); err != nil {
			return nil, fmt.Errorf("scan deck row: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
