package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/infrastructure/excel"
)

var now = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestBuild_HojasYCabeceras(t *testing.T) {
	data, err := excel.NewExporter().Build(nil, nil, now)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.ElementsMatch(t, []string{"食材", "日用品"}, f.GetSheetList())

	foodHeader, err := f.GetRows("食材")
	require.NoError(t, err)
	require.Len(t, foodHeader, 1)
	assert.Equal(t, []string{"ID", "名前", "数量", "賞味期限", "期限間近"}, foodHeader[0])

	supplyHeader, err := f.GetRows("日用品")
	require.NoError(t, err)
	require.Len(t, supplyHeader, 1)
	assert.Equal(t, []string{"ID", "名前", "残量", "残りわずか"}, supplyHeader[0])
}

func TestBuild_FilasConBanderasDerivadas(t *testing.T) {
	foods := []entity.FoodItem{
		{ID: 1, Name: "にんじん", Quantity: 2, ExpiryDate: now.AddDate(0, 0, 1)},
		{ID: 2, Name: "牛乳", Quantity: 1, ExpiryDate: now.AddDate(0, 0, 10)},
	}
	supplies := []entity.SupplyItem{
		{ID: 1, Name: "洗剤", StockLevel: entity.StockLow},
		{ID: 2, Name: "ティッシュ", StockLevel: entity.StockHigh},
	}

	data, err := excel.NewExporter().Build(foods, supplies, now)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	foodRows, err := f.GetRows("食材")
	require.NoError(t, err)
	require.Len(t, foodRows, 3)
	assert.Equal(t, []string{"1", "にんじん", "2", now.AddDate(0, 0, 1).Format("2006-01-02"), "○"}, foodRows[1])
	// 牛乳 no está por vencer: la celda de la marca queda vacía y GetRows la recorta.
	assert.Equal(t, []string{"2", "牛乳", "1", now.AddDate(0, 0, 10).Format("2006-01-02")}, foodRows[2])

	supplyRows, err := f.GetRows("日用品")
	require.NoError(t, err)
	require.Len(t, supplyRows, 3)
	assert.Equal(t, []string{"1", "洗剤", "少ない", "○"}, supplyRows[1])
	assert.Equal(t, []string{"2", "ティッシュ", "多い"}, supplyRows[2])
}
