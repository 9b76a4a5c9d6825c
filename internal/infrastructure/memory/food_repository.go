// Package memory contiene implementaciones en memoria de los puertos de
// persistencia. Se usan en los tests y al arrancar con DB_DRIVER=memory
// (desarrollo sin PostgreSQL); los datos se pierden al apagar el proceso.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

var _ repository.FoodRepository = (*FoodRepo)(nil)

// FoodRepo implementación en memoria de FoodRepository.
type FoodRepo struct {
	mu     sync.RWMutex
	items  map[int64]entity.FoodItem
	nextID int64
}

// NewFoodRepository construye el repositorio vacío.
func NewFoodRepository() *FoodRepo {
	return &FoodRepo{items: make(map[int64]entity.FoodItem), nextID: 1}
}

// List devuelve todos los alimentos ordenados por fecha de vencimiento ascendente.
// Empate de fechas: orden por ID para una salida estable.
func (r *FoodRepo) List(_ context.Context) ([]entity.FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(entity.FoodItem) bool { return true }), nil
}

// ListExpiring devuelve los alimentos con expiry_date <= threshold en orden de vencimiento.
func (r *FoodRepo) ListExpiring(_ context.Context, threshold time.Time) ([]entity.FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(f entity.FoodItem) bool { return !f.ExpiryDate.After(threshold) }), nil
}

// Create asigna un ID nuevo y guarda el alimento.
func (r *FoodRepo) Create(_ context.Context, item *entity.FoodItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = *item
	return nil
}

// GetByID devuelve (nil, nil) si el id no existe.
func (r *FoodRepo) GetByID(_ context.Context, id int64) (*entity.FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

// Update reemplaza el registro completo.
func (r *FoodRepo) Update(_ context.Context, item *entity.FoodItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[item.ID] = *item
	return nil
}

// Delete devuelve domain.ErrNotFound si el id no existe.
func (r *FoodRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *FoodRepo) sorted(keep func(entity.FoodItem) bool) []entity.FoodItem {
	var list []entity.FoodItem
	for _, item := range r.items {
		if keep(item) {
			list = append(list, item)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].ExpiryDate.Equal(list[j].ExpiryDate) {
			return list[i].ID < list[j].ID
		}
		return list[i].ExpiryDate.Before(list[j].ExpiryDate)
	})
	return list
}
