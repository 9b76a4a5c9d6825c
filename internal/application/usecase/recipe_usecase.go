package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/application/ports"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
	"github.com/jhoicas/despensa-api/pkg/metrics"
)

// RecipeUseCase orquesta la sugerencia de recetas. El generador concreto
// (plantilla determinista o proveedor de IA) se inyecta al construir la app;
// aquí no hay ramificación por modo.
type RecipeUseCase struct {
	foods repository.FoodRepository
	gen   ports.RecipeGenerator
}

// NewRecipeUseCase construye el caso de uso inyectando el puerto RecipeGenerator.
func NewRecipeUseCase(foods repository.FoodRepository, gen ports.RecipeGenerator) *RecipeUseCase {
	return &RecipeUseCase{foods: foods, gen: gen}
}

// Suggest carga el inventario de alimentos (orden de vencimiento ascendente)
// y delega en el generador. Inventario vacío: domain.ErrEmptyInventory.
// Fallo del proveedor: domain.ErrAIProvider envolviendo la causa; no hay
// reintento ni caída silenciosa al modo demo.
func (uc *RecipeUseCase) Suggest(ctx context.Context) (*dto.RecipeResponse, error) {
	foods, err := uc.foods.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("receta: cargar inventario: %w", err)
	}
	if len(foods) == 0 {
		metrics.RecipeRequests.WithLabelValues(uc.gen.Mode(), "empty_inventory").Inc()
		return nil, domain.ErrEmptyInventory
	}

	recipe, err := uc.gen.Generate(ctx, foods)
	if err != nil {
		metrics.RecipeRequests.WithLabelValues(uc.gen.Mode(), "provider_error").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrAIProvider, err)
	}

	metrics.RecipeRequests.WithLabelValues(uc.gen.Mode(), "ok").Inc()
	return &dto.RecipeResponse{Recipe: recipe}, nil
}
