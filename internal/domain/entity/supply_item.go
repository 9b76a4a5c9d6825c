package entity

import "time"

// StockLevel nivel de existencias de un artículo del hogar.
// Conjunto cerrado de valores en japonés (la app es para el mercado japonés);
// cualquier otro valor se rechaza en la frontera de entrada, nunca se persiste.
type StockLevel string

const (
	StockHigh   StockLevel = "多い"   // abundante
	StockNormal StockLevel = "普通"   // normal (valor por defecto)
	StockLow    StockLevel = "少ない" // escaso
)

// Valid indica si el valor pertenece al conjunto cerrado.
func (s StockLevel) Valid() bool {
	switch s {
	case StockHigh, StockNormal, StockLow:
		return true
	}
	return false
}

// SupplyItem representa un artículo no perecedero del hogar (detergente, papel, etc.).
type SupplyItem struct {
	ID         int64
	Name       string
	StockLevel StockLevel
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsLow bandera derivada: se recalcula en cada lectura, nunca se almacena.
func (s SupplyItem) IsLow() bool {
	return s.StockLevel == StockLow
}
