package dto

// CreateSupplyRequest entrada para registrar un artículo del hogar.
// StockLevel es un conjunto cerrado; vacío toma el valor por defecto 普通.
type CreateSupplyRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	StockLevel string `json:"stock_level" validate:"omitempty,oneof=多い 普通 少ない"`
}

// UpdateSupplyRequest entrada parcial (puntero nil = "no tocar").
type UpdateSupplyRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=200"`
	StockLevel *string `json:"stock_level" validate:"omitempty,oneof=多い 普通 少ない"`
}

// SupplyResponse salida de un artículo con su bandera derivada.
type SupplyResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	StockLevel string `json:"stock_level"`
	IsLow      bool   `json:"is_low"`
}
