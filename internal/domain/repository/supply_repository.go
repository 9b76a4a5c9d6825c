package repository

import (
	"context"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// SupplyRepository define el puerto de persistencia para SupplyItem (DIP).
// Las lecturas devuelven (nil, nil) cuando el registro no existe.
type SupplyRepository interface {
	// List devuelve todos los artículos ordenados por nombre ascendente.
	List(ctx context.Context) ([]entity.SupplyItem, error)
	// ListLow devuelve los artículos con stock_level = 少ない, ordenados por nombre.
	ListLow(ctx context.Context) ([]entity.SupplyItem, error)
	Create(ctx context.Context, item *entity.SupplyItem) error
	GetByID(ctx context.Context, id int64) (*entity.SupplyItem, error)
	Update(ctx context.Context, item *entity.SupplyItem) error
	// Delete devuelve domain.ErrNotFound si el id no existe.
	Delete(ctx context.Context, id int64) error
}
