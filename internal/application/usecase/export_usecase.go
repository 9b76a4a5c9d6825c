package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/despensa-api/internal/application/ports"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

// ExportUseCase genera el libro xlsx con el inventario completo
// (alimentos y artículos del hogar, cada uno en su hoja).
type ExportUseCase struct {
	foods    repository.FoodRepository
	supplies repository.SupplyRepository
	exporter ports.InventoryExporter
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	foods repository.FoodRepository,
	supplies repository.SupplyRepository,
	exporter ports.InventoryExporter,
) *ExportUseCase {
	return &ExportUseCase{foods: foods, supplies: supplies, exporter: exporter}
}

// BuildWorkbook carga ambos inventarios y devuelve el archivo junto con un
// nombre con marca de tiempo, ej: "inventario_20260831_154500.xlsx".
func (uc *ExportUseCase) BuildWorkbook(ctx context.Context) (data []byte, filename string, err error) {
	foods, err := uc.foods.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("export: cargar alimentos: %w", err)
	}
	supplies, err := uc.supplies.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("export: cargar artículos: %w", err)
	}

	now := time.Now()
	data, err = uc.exporter.Build(foods, supplies, now)
	if err != nil {
		return nil, "", fmt.Errorf("export: generar libro: %w", err)
	}

	filename = fmt.Sprintf("inventario_%s.xlsx", now.Format("20060102_150405"))
	return data, filename, nil
}
