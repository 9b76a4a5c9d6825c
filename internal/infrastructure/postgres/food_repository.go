package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

var _ repository.FoodRepository = (*FoodRepo)(nil)

// FoodRepo implementación del puerto FoodRepository sobre PostgreSQL.
type FoodRepo struct {
	q Querier
}

// NewFoodRepository construye el adaptador de persistencia para alimentos.
func NewFoodRepository(q Querier) *FoodRepo {
	return &FoodRepo{q: q}
}

const foodColumns = `id, name, quantity, expiry_date, created_at, updated_at`

// List devuelve todos los alimentos ordenados por fecha de vencimiento ascendente.
func (r *FoodRepo) List(ctx context.Context) ([]entity.FoodItem, error) {
	query := `SELECT ` + foodColumns + ` FROM food_items ORDER BY expiry_date`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	defer rows.Close()
	return scanFoods(rows)
}

// ListExpiring devuelve los alimentos con expiry_date <= threshold en orden de vencimiento.
func (r *FoodRepo) ListExpiring(ctx context.Context, threshold time.Time) ([]entity.FoodItem, error) {
	query := `SELECT ` + foodColumns + ` FROM food_items WHERE expiry_date <= $1 ORDER BY expiry_date`
	rows, err := r.q.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("list expiring foods: %w", err)
	}
	defer rows.Close()
	return scanFoods(rows)
}

// Create persiste un alimento nuevo y rellena su ID generado.
func (r *FoodRepo) Create(ctx context.Context, item *entity.FoodItem) error {
	query := `
		INSERT INTO food_items (name, quantity, expiry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		item.Name, item.Quantity, item.ExpiryDate, item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert food: %w", err)
	}
	return nil
}

// GetByID obtiene un alimento por ID. Devuelve (nil, nil) si no existe.
func (r *FoodRepo) GetByID(ctx context.Context, id int64) (*entity.FoodItem, error) {
	query := `SELECT ` + foodColumns + ` FROM food_items WHERE id = $1`
	var f entity.FoodItem
	err := r.q.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.Name, &f.Quantity, &f.ExpiryDate, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get food: %w", err)
	}
	return &f, nil
}

// Update actualiza un alimento existente.
func (r *FoodRepo) Update(ctx context.Context, item *entity.FoodItem) error {
	query := `
		UPDATE food_items SET name = $2, quantity = $3, expiry_date = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Quantity, item.ExpiryDate, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update food: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un alimento. domain.ErrNotFound si el id no existe.
func (r *FoodRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM food_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete food: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanFoods(rows pgx.Rows) ([]entity.FoodItem, error) {
	var list []entity.FoodItem
	for rows.Next() {
		var f entity.FoodItem
		if err := rows.Scan(&f.ID, &f.Name, &f.Quantity, &f.ExpiryDate, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}
