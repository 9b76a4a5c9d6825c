package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/infrastructure/memory"
)

var base = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

func seedFood(t *testing.T, r *memory.FoodRepo, name string, days int) entity.FoodItem {
	t.Helper()
	item := &entity.FoodItem{Name: name, Quantity: 1, ExpiryDate: base.AddDate(0, 0, days)}
	require.NoError(t, r.Create(context.Background(), item))
	return *item
}

func TestFoodRepo_ListOrdenadoPorVencimiento(t *testing.T) {
	r := memory.NewFoodRepository()
	seedFood(t, r, "牛乳", 10)
	seedFood(t, r, "にんじん", 1)
	seedFood(t, r, "豚肉", 5)

	list, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "にんじん", list[0].Name)
	assert.Equal(t, "豚肉", list[1].Name)
	assert.Equal(t, "牛乳", list[2].Name)
}

func TestFoodRepo_ListExpiring_LimiteInclusivo(t *testing.T) {
	r := memory.NewFoodRepository()
	seedFood(t, r, "dentro", 3)
	seedFood(t, r, "fuera", 4)

	threshold := base.AddDate(0, 0, 3)
	list, err := r.ListExpiring(context.Background(), threshold)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "dentro", list[0].Name, "expiry_date == threshold debe incluirse")
}

func TestFoodRepo_IDsSecuenciales(t *testing.T) {
	r := memory.NewFoodRepository()
	a := seedFood(t, r, "a", 1)
	b := seedFood(t, r, "b", 2)
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
}

func TestFoodRepo_GetByID_NilNilSiNoExiste(t *testing.T) {
	r := memory.NewFoodRepository()
	item, err := r.GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, item, "id inexistente devuelve (nil, nil), no error")
}

func TestFoodRepo_DeleteDosVeces(t *testing.T) {
	r := memory.NewFoodRepository()
	item := seedFood(t, r, "a", 1)

	require.NoError(t, r.Delete(context.Background(), item.ID))
	err := r.Delete(context.Background(), item.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "el segundo borrado del mismo id debe fallar")
}

func TestFoodRepo_UpdateInexistente(t *testing.T) {
	r := memory.NewFoodRepository()
	err := r.Update(context.Background(), &entity.FoodItem{ID: 42, Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── SupplyRepo ────────────────────────────────────────────────────────────────

func TestSupplyRepo_ListOrdenadoPorNombre(t *testing.T) {
	r := memory.NewSupplyRepository()
	ctx := context.Background()
	for _, name := range []string{"洗剤", "シャンプー", "ティッシュ"} {
		require.NoError(t, r.Create(ctx, &entity.SupplyItem{Name: name, StockLevel: entity.StockNormal}))
	}

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "シャンプー", list[0].Name)
	assert.Equal(t, "ティッシュ", list[1].Name)
	assert.Equal(t, "洗剤", list[2].Name)
}

func TestSupplyRepo_ListLow_SoloEscasos(t *testing.T) {
	r := memory.NewSupplyRepository()
	ctx := context.Background()
	require.NoError(t, r.Create(ctx, &entity.SupplyItem{Name: "洗剤", StockLevel: entity.StockLow}))
	require.NoError(t, r.Create(ctx, &entity.SupplyItem{Name: "ティッシュ", StockLevel: entity.StockHigh}))
	require.NoError(t, r.Create(ctx, &entity.SupplyItem{Name: "シャンプー", StockLevel: entity.StockLow}))

	list, err := r.ListLow(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "シャンプー", list[0].Name)
	assert.Equal(t, "洗剤", list[1].Name)
}
