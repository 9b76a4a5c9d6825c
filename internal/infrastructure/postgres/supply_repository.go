package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

var _ repository.SupplyRepository = (*SupplyRepo)(nil)

// SupplyRepo implementación del puerto SupplyRepository sobre PostgreSQL.
type SupplyRepo struct {
	q Querier
}

// NewSupplyRepository construye el adaptador de persistencia para artículos del hogar.
func NewSupplyRepository(q Querier) *SupplyRepo {
	return &SupplyRepo{q: q}
}

const supplyColumns = `id, name, stock_level, created_at, updated_at`

// List devuelve todos los artículos ordenados por nombre ascendente.
func (r *SupplyRepo) List(ctx context.Context) ([]entity.SupplyItem, error) {
	query := `SELECT ` + supplyColumns + ` FROM supply_items ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list supplies: %w", err)
	}
	defer rows.Close()
	return scanSupplies(rows)
}

// ListLow devuelve los artículos con stock 少ない ordenados por nombre.
func (r *SupplyRepo) ListLow(ctx context.Context) ([]entity.SupplyItem, error) {
	query := `SELECT ` + supplyColumns + ` FROM supply_items WHERE stock_level = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, string(entity.StockLow))
	if err != nil {
		return nil, fmt.Errorf("list low supplies: %w", err)
	}
	defer rows.Close()
	return scanSupplies(rows)
}

// Create persiste un artículo nuevo y rellena su ID generado.
func (r *SupplyRepo) Create(ctx context.Context, item *entity.SupplyItem) error {
	query := `
		INSERT INTO supply_items (name, stock_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		item.Name, string(item.StockLevel), item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert supply: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID. Devuelve (nil, nil) si no existe.
func (r *SupplyRepo) GetByID(ctx context.Context, id int64) (*entity.SupplyItem, error) {
	query := `SELECT ` + supplyColumns + ` FROM supply_items WHERE id = $1`
	var s entity.SupplyItem
	var level string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &level, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supply: %w", err)
	}
	s.StockLevel = entity.StockLevel(level)
	return &s, nil
}

// Update actualiza un artículo existente.
func (r *SupplyRepo) Update(ctx context.Context, item *entity.SupplyItem) error {
	query := `
		UPDATE supply_items SET name = $2, stock_level = $3, updated_at = $4
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		item.ID, item.Name, string(item.StockLevel), item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supply: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un artículo. domain.ErrNotFound si el id no existe.
func (r *SupplyRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM supply_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supply: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSupplies(rows pgx.Rows) ([]entity.SupplyItem, error) {
	var list []entity.SupplyItem
	for rows.Next() {
		var s entity.SupplyItem
		var level string
		if err := rows.Scan(&s.ID, &s.Name, &level, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supply: %w", err)
		}
		s.StockLevel = entity.StockLevel(level)
		list = append(list, s)
	}
	return list, rows.Err()
}
