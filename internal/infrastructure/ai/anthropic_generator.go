package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/despensa-api/internal/application/ports"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que AnthropicGenerator implementa RecipeGenerator.
var _ ports.RecipeGenerator = (*AnthropicGenerator)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	// DefaultAnthropicModel modelo usado si ANTHROPIC_MODEL no está configurado.
	DefaultAnthropicModel = "claude-sonnet-4-5-20250929"

	recipeMaxTokens = 1024
)

// AnthropicGenerator adaptador que implementa RecipeGenerator usando la API
// REST de Anthropic (Claude). Usa net/http; no requiere el SDK oficial.
// Sin reintentos: un fallo del proveedor sube tal cual al caso de uso.
type AnthropicGenerator struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewAnthropicGenerator construye el adaptador. Solo se instancia cuando hay
// ANTHROPIC_API_KEY; sin credencial la app arma el MockGenerator en su lugar.
func NewAnthropicGenerator(apiKey, model string) *AnthropicGenerator {
	if model == "" {
		model = DefaultAnthropicModel
	}
	return &AnthropicGenerator{
		apiKey:  apiKey,
		model:   model,
		baseURL: anthropicMessagesURL,
		// Timeout de transporte de 60 s; no hay timeout adicional en el
		// caso de uso, la generación de una receta puede tardar.
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Mode identifica el adaptador para logs y métricas.
func (g *AnthropicGenerator) Mode() string { return "anthropic" }

// ── Estructuras del protocolo Anthropic Messages API ──────────────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate arma el prompt en japonés con el inventario completo y envía una
// petición al Messages API. El primer segmento de texto de la respuesta se
// devuelve tal cual como receta.
func (g *AnthropicGenerator) Generate(ctx context.Context, foods []entity.FoodItem) (string, error) {
	payload := anthropicRequest{
		Model:     g.model,
		MaxTokens: recipeMaxTokens,
		Messages: []anthropicMessage{
			{Role: "user", Content: buildRecipePrompt(foods, time.Now())},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", g.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}
	if len(anthResp.Content) == 0 {
		return "", fmt.Errorf("AI: Claude devolvió respuesta vacía")
	}

	return anthResp.Content[0].Text, nil
}

// buildRecipePrompt enumera cada alimento con cantidad y días de margen,
// prefijando 【期限切れ間近！】 a los que vencen en 3 días o menos, y cierra
// con las cuatro reglas fijas del prompt original.
func buildRecipePrompt(foods []entity.FoodItem, today time.Time) string {
	lines := make([]string, 0, len(foods))
	for _, f := range foods {
		daysLeft := f.DaysLeft(today)
		urgency := ""
		if daysLeft <= entity.ExpiryWindowDays {
			urgency = "【期限切れ間近！】"
		}
		lines = append(lines, fmt.Sprintf("- %s%s (数量: %d, 期限まで: %d日)", urgency, f.Name, f.Quantity, daysLeft))
	}

	var b strings.Builder
	b.WriteString("あなたは家庭料理の専門家です。以下の食材在庫をもとに、作れるレシピを1つ提案してください。\n\n")
	b.WriteString("## 現在の食材在庫\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n## ルール\n")
	b.WriteString("- 賞味期限が近い食材を優先的に使うこと\n")
	b.WriteString("- 家庭で簡単に作れるレシピにすること\n")
	b.WriteString("- 材料・手順・ポイントを含めること\n")
	b.WriteString("- 日本語で回答すること\n")
	return b.String()
}
