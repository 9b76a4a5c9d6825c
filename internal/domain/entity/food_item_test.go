package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// La ventana de caducidad tiene límite inclusivo: un alimento que vence en
// exactamente 3 días SÍ está "por vencer"; en 4 días NO. Estos tests fijan
// ese borde para que nadie lo mueva sin darse cuenta.
// ──────────────────────────────────────────────────────────────────────────────

// hoy fijo para que los tests no dependan del reloj.
var today = time.Date(2026, time.June, 15, 10, 30, 0, 0, time.UTC)

func foodExpiringIn(days int) entity.FoodItem {
	return entity.FoodItem{
		Name:       "にんじん",
		Quantity:   2,
		ExpiryDate: today.AddDate(0, 0, days),
	}
}

func TestDaysLeft_IgnoraLaHoraDelDia(t *testing.T) {
	f := entity.FoodItem{
		// Vence mañana a medianoche; hoy son las 10:30.
		ExpiryDate: time.Date(2026, time.June, 16, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 1, f.DaysLeft(today), "la hora del día no debe alterar el conteo de días")
}

func TestDaysLeft_NegativoSiYaVencio(t *testing.T) {
	f := foodExpiringIn(-2)
	assert.Equal(t, -2, f.DaysLeft(today))
}

func TestIsExpiringSoon_LimiteInclusivo(t *testing.T) {
	casos := []struct {
		nombre string
		dias   int
		quiere bool
	}{
		{"ya vencido", -1, true},
		{"vence hoy", 0, true},
		{"vence en 3 días (borde)", 3, true},
		{"vence en 4 días", 4, false},
		{"vence en 10 días", 10, false},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			f := foodExpiringIn(tc.dias)
			assert.Equal(t, tc.quiere, f.IsExpiringSoon(today))
		})
	}
}

// La fecha de vencimiento se parsea en UTC pero "hoy" llega en la zona del
// servidor. El conteo de días es de calendario: la zona no debe correr el
// borde de la ventana ni en servidores al oeste ni al este de UTC.
func TestDaysLeft_IndependienteDeLaZonaDelServidor(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	tokio, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// Vence el 19 de junio (medianoche UTC, como sale de time.Parse).
	f := entity.FoodItem{ExpiryDate: time.Date(2026, time.June, 19, 0, 0, 0, 0, time.UTC)}

	for _, hoy := range []time.Time{
		time.Date(2026, time.June, 15, 10, 0, 0, 0, ny),
		time.Date(2026, time.June, 15, 10, 0, 0, 0, tokio),
		time.Date(2026, time.June, 15, 10, 0, 0, 0, time.UTC),
	} {
		assert.Equal(t, 4, f.DaysLeft(hoy), "hoy en %s", hoy.Location())
		assert.False(t, f.IsExpiringSoon(hoy), "vencer en 4 días no marca, sin importar la zona")
	}
}

func TestExpiryThreshold_MedianocheUTCMasVentana(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	hoy := time.Date(2026, time.June, 15, 23, 30, 0, 0, ny)
	want := time.Date(2026, time.June, 18, 0, 0, 0, 0, time.UTC)
	assert.True(t, want.Equal(entity.ExpiryThreshold(hoy)))
}

// El umbral de las consultas filtradas y la bandera por elemento usan el
// mismo marco: un alimento marcado por IsExpiringSoon nunca queda fuera del
// filtro expiry_date <= threshold, y viceversa.
func TestExpiryThreshold_CoherenteConIsExpiringSoon(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	hoy := time.Date(2026, time.June, 15, 10, 0, 0, 0, ny)
	threshold := entity.ExpiryThreshold(hoy)

	for dias := -1; dias <= 5; dias++ {
		f := entity.FoodItem{ExpiryDate: time.Date(2026, time.June, 15+dias, 0, 0, 0, 0, time.UTC)}
		enFiltro := !f.ExpiryDate.After(threshold)
		assert.Equal(t, f.IsExpiringSoon(hoy), enFiltro, "desacuerdo con vencimiento a %+d días", dias)
	}
}

func TestStockLevel_ConjuntoCerrado(t *testing.T) {
	assert.True(t, entity.StockHigh.Valid())
	assert.True(t, entity.StockNormal.Valid())
	assert.True(t, entity.StockLow.Valid())
	assert.False(t, entity.StockLevel("mucho").Valid(), "valores fuera del conjunto se rechazan")
	assert.False(t, entity.StockLevel("").Valid())
}

func TestSupplyItem_IsLow(t *testing.T) {
	assert.True(t, entity.SupplyItem{StockLevel: entity.StockLow}.IsLow())
	assert.False(t, entity.SupplyItem{StockLevel: entity.StockNormal}.IsLow())
	assert.False(t, entity.SupplyItem{StockLevel: entity.StockHigh}.IsLow())
}
