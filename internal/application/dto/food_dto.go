package dto

// DateLayout formato de fecha de calendario usado en toda la API (sin hora).
const DateLayout = "2006-01-02"

// CreateFoodRequest entrada para registrar un alimento.
// Quantity sin cota inferior a propósito: 0 puede representar "agotado".
type CreateFoodRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Quantity   *int   `json:"quantity" validate:"omitempty"`
	ExpiryDate string `json:"expiry_date" validate:"required,datetime=2006-01-02"`
}

// UpdateFoodRequest entrada parcial: un campo ausente (puntero nil) significa
// "no tocar", distinto de enviarlo con su valor cero.
type UpdateFoodRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=200"`
	Quantity   *int    `json:"quantity" validate:"omitempty"`
	ExpiryDate *string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

// FoodResponse salida de un alimento con su bandera derivada.
type FoodResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	ExpiryDate     string `json:"expiry_date"`
	IsExpiringSoon bool   `json:"is_expiring_soon"`
}
