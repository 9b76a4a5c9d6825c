package ports

import (
	"context"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// RecipeGenerator define el puerto de salida del motor de recetas.
// Dos adaptadores lo implementan: la plantilla determinista (modo demo) y el
// proveedor externo de IA. El modo se decide una sola vez al construir la app,
// según haya o no credencial configurada; los call sites no ramifican.
type RecipeGenerator interface {
	// Generate propone una receta a partir del inventario de alimentos,
	// que llega ordenado por fecha de vencimiento ascendente y nunca vacío.
	Generate(ctx context.Context, foods []entity.FoodItem) (string, error)

	// Mode identifica el adaptador ("mock" o "anthropic") para logs y métricas.
	Mode() string
}
