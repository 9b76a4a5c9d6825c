package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// newTestGenerator apunta el adaptador a un servidor HTTP de prueba.
func newTestGenerator(t *testing.T, handler http.HandlerFunc) *AnthropicGenerator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g := NewAnthropicGenerator("test-key", "test-model")
	g.baseURL = srv.URL
	return g
}

func TestAnthropicGenerate_RespuestaExitosa(t *testing.T) {
	var got anthropicRequest
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]string{{"type": "text", "text": "にんじんと豚肉の炒め物レシピ"}},
		})
	})

	recipe, err := g.Generate(context.Background(), []entity.FoodItem{
		{Name: "にんじん", Quantity: 2, ExpiryDate: time.Now().AddDate(0, 0, 1)},
	})
	require.NoError(t, err)
	assert.Equal(t, "にんじんと豚肉の炒め物レシピ", recipe)

	assert.Equal(t, "test-model", got.Model)
	assert.Equal(t, recipeMaxTokens, got.MaxTokens)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Contains(t, got.Messages[0].Content, "にんじん")
}

func TestAnthropicGenerate_ErrorDelAPI(t *testing.T) {
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"type": "rate_limit_error", "message": "rate limited"},
		})
	})

	_, err := g.Generate(context.Background(), []entity.FoodItem{{Name: "にんじん"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit_error")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestAnthropicGenerate_ErrorHTTPSinCuerpoJSON(t *testing.T) {
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := g.Generate(context.Background(), []entity.FoodItem{{Name: "にんじん"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestAnthropicGenerate_RespuestaSinContenido(t *testing.T) {
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"content": []interface{}{}})
	})

	_, err := g.Generate(context.Background(), []entity.FoodItem{{Name: "にんじん"}})
	assert.Error(t, err, "content vacío es un error, no una receta vacía")
}

// ── buildRecipePrompt ─────────────────────────────────────────────────────────

func TestBuildRecipePrompt_MarcaUrgencia(t *testing.T) {
	today := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	prompt := buildRecipePrompt([]entity.FoodItem{
		{Name: "にんじん", Quantity: 2, ExpiryDate: today.AddDate(0, 0, 1)},
		{Name: "牛乳", Quantity: 1, ExpiryDate: today.AddDate(0, 0, 10)},
	}, today)

	assert.Contains(t, prompt, "- 【期限切れ間近！】にんじん (数量: 2, 期限まで: 1日)")
	assert.Contains(t, prompt, "- 牛乳 (数量: 1, 期限まで: 10日)")
	assert.False(t, strings.Contains(prompt, "【期限切れ間近！】牛乳"),
		"un alimento lejano no lleva el prefijo de urgencia")
}

func TestBuildRecipePrompt_ReglasFijas(t *testing.T) {
	today := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	prompt := buildRecipePrompt([]entity.FoodItem{{Name: "卵", Quantity: 6, ExpiryDate: today}}, today)

	for _, regla := range []string{
		"## 現在の食材在庫",
		"## ルール",
		"賞味期限が近い食材を優先的に使うこと",
		"日本語で回答すること",
	} {
		assert.Contains(t, prompt, regla)
	}
}
