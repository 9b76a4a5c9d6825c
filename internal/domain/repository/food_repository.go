package repository

import (
	"context"
	"time"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// FoodRepository define el puerto de persistencia para FoodItem (DIP).
// Las lecturas devuelven (nil, nil) cuando el registro no existe.
type FoodRepository interface {
	// List devuelve todos los alimentos ordenados por fecha de vencimiento ascendente.
	// Sin paginación: el inventario de un hogar es acotado.
	List(ctx context.Context) ([]entity.FoodItem, error)
	// ListExpiring devuelve los alimentos con expiry_date <= threshold,
	// ordenados por fecha de vencimiento ascendente.
	ListExpiring(ctx context.Context, threshold time.Time) ([]entity.FoodItem, error)
	Create(ctx context.Context, item *entity.FoodItem) error
	GetByID(ctx context.Context, id int64) (*entity.FoodItem, error)
	Update(ctx context.Context, item *entity.FoodItem) error
	// Delete devuelve domain.ErrNotFound si el id no existe.
	Delete(ctx context.Context, id int64) error
}
