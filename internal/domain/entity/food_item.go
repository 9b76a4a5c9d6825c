package entity

import "time"

// ExpiryWindowDays ventana de alerta de caducidad: un alimento cuya fecha de
// vencimiento cae dentro de los próximos 3 días (inclusive) se considera "por vencer".
const ExpiryWindowDays = 3

// FoodItem representa un alimento perecedero del inventario doméstico.
// Quantity no tiene cota inferior: 0 o negativo se aceptan (puede representar "agotado").
type FoodItem struct {
	ID         int64
	Name       string
	Quantity   int
	ExpiryDate time.Time // solo fecha; la hora se trunca a medianoche
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DaysLeft días de calendario entre hoy y la fecha de vencimiento (negativo
// si ya venció). Las fechas de vencimiento llegan en UTC (time.Parse de
// "2006-01-02") y hoy en la zona del servidor; ambas se proyectan a
// medianoche UTC para que la resta sea un múltiplo exacto de 24 h.
func (f FoodItem) DaysLeft(today time.Time) int {
	t := atMidnight(today)
	e := atMidnight(f.ExpiryDate)
	return int(e.Sub(t).Hours() / 24)
}

// IsExpiringSoon indica si el alimento vence dentro de la ventana de alerta.
// Límite inclusivo: vencer en exactamente 3 días sí marca; en 4 días no.
func (f FoodItem) IsExpiringSoon(today time.Time) bool {
	return f.DaysLeft(today) <= ExpiryWindowDays
}

// ExpiryThreshold fecha límite inclusiva de la ventana de alerta: la
// medianoche UTC de hoy más ExpiryWindowDays. Las consultas filtradas usan
// este mismo valor para que el filtro coincida con IsExpiringSoon.
func ExpiryThreshold(today time.Time) time.Time {
	return atMidnight(today).AddDate(0, 0, ExpiryWindowDays)
}

// atMidnight proyecta la fecha de calendario a medianoche UTC; la zona del
// valor original deja de influir en la comparación.
func atMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
