package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

// DashboardUseCase construye las vistas derivadas de solo lectura: el panel
// de inicio y la lista de compras. Ambas parten de las mismas dos consultas
// filtradas (alimentos por vencer, artículos escasos); nada se almacena.
type DashboardUseCase struct {
	foods    repository.FoodRepository
	supplies repository.SupplyRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(foods repository.FoodRepository, supplies repository.SupplyRepository) *DashboardUseCase {
	return &DashboardUseCase{foods: foods, supplies: supplies}
}

// GetSummary devuelve el panel: alimentos con expiry_date <= hoy+3d en orden
// de vencimiento y artículos con stock 少ない en orden de nombre.
//
// Las dos consultas se lanzan en goroutines paralelas; son independientes
// y el panel es la pantalla más consultada de la app.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	expiring, low, err := uc.fetch(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := &dto.DashboardResponse{
		ExpiringFoods: make([]dto.FoodResponse, 0, len(expiring)),
		LowSupplies:   make([]dto.SupplyResponse, 0, len(low)),
	}
	for _, f := range expiring {
		out.ExpiringFoods = append(out.ExpiringFoods, toFoodResponse(f, now))
	}
	for _, s := range low {
		out.LowSupplies = append(out.LowSupplies, toSupplyResponse(s))
	}
	return out, nil
}

// GetShoppingList aplana las mismas dos consultas del panel en una sola
// secuencia: alimentos primero (orden de vencimiento) y artículos después
// (orden de nombre), cada uno con su línea de detalle ya formateada.
func (uc *DashboardUseCase) GetShoppingList(ctx context.Context) (*dto.ShoppingListResponse, error) {
	expiring, low, err := uc.fetch(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ShoppingItem, 0, len(expiring)+len(low))
	for _, f := range expiring {
		items = append(items, dto.ShoppingItem{
			Type:   "food",
			Name:   f.Name,
			Detail: fmt.Sprintf("期限: %s", f.ExpiryDate.Format(dto.DateLayout)),
		})
	}
	for _, s := range low {
		items = append(items, dto.ShoppingItem{
			Type:   "supply",
			Name:   s.Name,
			Detail: "残量: 少ない",
		})
	}
	return &dto.ShoppingListResponse{Items: items}, nil
}

// fetch lanza en paralelo las dos consultas filtradas que comparten el panel
// y la lista de compras.
func (uc *DashboardUseCase) fetch(ctx context.Context) ([]entity.FoodItem, []entity.SupplyItem, error) {
	threshold := entity.ExpiryThreshold(time.Now())

	type foodsResult struct {
		items []entity.FoodItem
		err   error
	}
	type suppliesResult struct {
		items []entity.SupplyItem
		err   error
	}

	foodsCh := make(chan foodsResult, 1)
	suppliesCh := make(chan suppliesResult, 1)

	go func() {
		items, err := uc.foods.ListExpiring(ctx, threshold)
		foodsCh <- foodsResult{items, err}
	}()
	go func() {
		items, err := uc.supplies.ListLow(ctx)
		suppliesCh <- suppliesResult{items, err}
	}()

	foods := <-foodsCh
	supplies := <-suppliesCh

	if foods.err != nil {
		return nil, nil, fmt.Errorf("dashboard: alimentos por vencer: %w", foods.err)
	}
	if supplies.err != nil {
		return nil, nil, fmt.Errorf("dashboard: artículos escasos: %w", supplies.err)
	}
	return foods.items, supplies.items, nil
}
