package ports

import (
	"time"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// InventoryExporter define el puerto de salida para exportar el inventario
// completo a un archivo descargable (hoy: libro xlsx).
type InventoryExporter interface {
	// Build genera el archivo en memoria. now fija el "hoy" con el que se
	// calculan las banderas derivadas incluidas en el archivo.
	Build(foods []entity.FoodItem, supplies []entity.SupplyItem, now time.Time) ([]byte, error)
}
