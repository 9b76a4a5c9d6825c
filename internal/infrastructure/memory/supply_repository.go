package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

var _ repository.SupplyRepository = (*SupplyRepo)(nil)

// SupplyRepo implementación en memoria de SupplyRepository.
type SupplyRepo struct {
	mu     sync.RWMutex
	items  map[int64]entity.SupplyItem
	nextID int64
}

// NewSupplyRepository construye el repositorio vacío.
func NewSupplyRepository() *SupplyRepo {
	return &SupplyRepo{items: make(map[int64]entity.SupplyItem), nextID: 1}
}

// List devuelve todos los artículos ordenados por nombre ascendente.
func (r *SupplyRepo) List(_ context.Context) ([]entity.SupplyItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(entity.SupplyItem) bool { return true }), nil
}

// ListLow devuelve los artículos con stock 少ない ordenados por nombre.
func (r *SupplyRepo) ListLow(_ context.Context) ([]entity.SupplyItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(s entity.SupplyItem) bool { return s.StockLevel == entity.StockLow }), nil
}

// Create asigna un ID nuevo y guarda el artículo.
func (r *SupplyRepo) Create(_ context.Context, item *entity.SupplyItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = *item
	return nil
}

// GetByID devuelve (nil, nil) si el id no existe.
func (r *SupplyRepo) GetByID(_ context.Context, id int64) (*entity.SupplyItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

// Update reemplaza el registro completo.
func (r *SupplyRepo) Update(_ context.Context, item *entity.SupplyItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[item.ID] = *item
	return nil
}

// Delete devuelve domain.ErrNotFound si el id no existe.
func (r *SupplyRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *SupplyRepo) sorted(keep func(entity.SupplyItem) bool) []entity.SupplyItem {
	var list []entity.SupplyItem
	for _, item := range r.items {
		if keep(item) {
			list = append(list, item)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name == list[j].Name {
			return list[i].ID < list[j].ID
		}
		return list[i].Name < list[j].Name
	})
	return list
}
