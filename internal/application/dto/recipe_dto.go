package dto

// RecipeResponse respuesta de POST /api/recipe: el texto completo de la receta,
// ya sea del generador determinista o del proveedor de IA.
type RecipeResponse struct {
	Recipe string `json:"recipe"`
}
