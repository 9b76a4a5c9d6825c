package dto

// DashboardResponse respuesta de GET /api/dashboard: alimentos por vencer
// (orden por fecha de vencimiento) y artículos escasos (orden por nombre).
type DashboardResponse struct {
	ExpiringFoods []FoodResponse   `json:"expiring_foods"`
	LowSupplies   []SupplyResponse `json:"low_supplies"`
}

// ShoppingItem una línea de la lista de compras.
// Type distingue el origen: "food" o "supply".
// Detail es texto ya formateado para la UI: "期限: <fecha>" o "残量: 少ない".
type ShoppingItem struct {
	Type   string `json:"type"`
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

// ShoppingListResponse respuesta de GET /api/shopping. Los alimentos van
// primero (en orden de vencimiento) y después los artículos (en orden de nombre).
type ShoppingListResponse struct {
	Items []ShoppingItem `json:"items"`
}
