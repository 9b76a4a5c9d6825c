// Package excel genera el libro xlsx de exportación del inventario.
package excel

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/despensa-api/internal/application/ports"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

var _ ports.InventoryExporter = (*Exporter)(nil)

// Nombres de hoja en japonés, como el resto de la UI.
const (
	sheetFoods    = "食材"
	sheetSupplies = "日用品"
)

// Exporter construye el libro con una hoja por tipo de artículo.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Build genera el libro en memoria. Las banderas derivadas (期限間近,
// 残りわずか) se calculan contra now, igual que en las respuestas JSON.
func (e *Exporter) Build(foods []entity.FoodItem, supplies []entity.SupplyItem, now time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// La hoja por defecto ("Sheet1") se renombra a la de alimentos.
	defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(defaultSheet, sheetFoods); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}
	if _, err := f.NewSheet(sheetSupplies); err != nil {
		return nil, fmt.Errorf("crear hoja: %w", err)
	}

	foodHeader := []interface{}{"ID", "名前", "数量", "賞味期限", "期限間近"}
	if err := f.SetSheetRow(sheetFoods, "A1", &foodHeader); err != nil {
		return nil, fmt.Errorf("cabecera alimentos: %w", err)
	}
	for i, item := range foods {
		row := []interface{}{
			item.ID,
			item.Name,
			item.Quantity,
			item.ExpiryDate.Format("2006-01-02"),
			boolMark(item.IsExpiringSoon(now)),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("celda alimentos: %w", err)
		}
		if err := f.SetSheetRow(sheetFoods, cell, &row); err != nil {
			return nil, fmt.Errorf("fila alimentos: %w", err)
		}
	}

	supplyHeader := []interface{}{"ID", "名前", "残量", "残りわずか"}
	if err := f.SetSheetRow(sheetSupplies, "A1", &supplyHeader); err != nil {
		return nil, fmt.Errorf("cabecera artículos: %w", err)
	}
	for i, item := range supplies {
		row := []interface{}{
			item.ID,
			item.Name,
			string(item.StockLevel),
			boolMark(item.IsLow()),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("celda artículos: %w", err)
		}
		if err := f.SetSheetRow(sheetSupplies, cell, &row); err != nil {
			return nil, fmt.Errorf("fila artículos: %w", err)
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// boolMark marca visible para celdas booleanas: "○" sí, vacío no.
func boolMark(v bool) string {
	if v {
		return "○"
	}
	return ""
}
