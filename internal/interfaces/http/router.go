package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/despensa-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	FoodUC      *usecase.FoodUseCase
	SupplyUC    *usecase.SupplyUseCase
	DashboardUC *usecase.DashboardUseCase
	RecipeUC    *usecase.RecipeUseCase
	ExportUC    *usecase.ExportUseCase
	Validator   *validator.Validate
}

// Router registra las rutas de la API. No hay autenticación: la app sirve a
// un solo hogar y se despliega en red privada.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	foods := api.Group("/foods")
	foodHandler := NewFoodHandler(deps.FoodUC, deps.Validator)
	foods.Get("/", foodHandler.List)
	foods.Post("/", foodHandler.Create)
	foods.Put("/:id", foodHandler.Update)
	foods.Delete("/:id", foodHandler.Delete)

	supplies := api.Group("/supplies")
	supplyHandler := NewSupplyHandler(deps.SupplyUC, deps.Validator)
	supplies.Get("/", supplyHandler.List)
	supplies.Post("/", supplyHandler.Create)
	supplies.Put("/:id", supplyHandler.Update)
	supplies.Delete("/:id", supplyHandler.Delete)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.GetSummary)
	api.Get("/shopping", dashboardHandler.GetShoppingList)

	recipeHandler := NewRecipeHandler(deps.RecipeUC)
	api.Post("/recipe", recipeHandler.Suggest)

	exportHandler := NewExportHandler(deps.ExportUC)
	api.Get("/export/inventory", exportHandler.Download)
}
