// Package ai contiene los adaptadores del puerto RecipeGenerator: la
// plantilla determinista (modo demo, sin credencial) y el cliente de la
// API de Anthropic.
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/despensa-api/internal/application/ports"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

var _ ports.RecipeGenerator = (*MockGenerator)(nil)

// mockFallbackCount si ningún alimento está por vencer, la plantilla usa
// los primeros 3 del inventario (que llega en orden de vencimiento).
const mockFallbackCount = 3

// MockGenerator generador determinista de recetas (modo demo).
// Mismo inventario y mismo "hoy" producen exactamente el mismo texto; no hay
// red ni aleatoriedad, por eso es la pieza más testeable del motor.
type MockGenerator struct {
	now func() time.Time
}

// NewMockGenerator construye el generador con el reloj del sistema.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{now: time.Now}
}

// Mode identifica el adaptador para logs y métricas.
func (g *MockGenerator) Mode() string { return "mock" }

// Generate emite la plantilla fija en japonés. Selección de ingredientes:
// los alimentos con 3 días o menos de margen; si no hay ninguno, los primeros
// 3 del inventario. Nunca devuelve error.
func (g *MockGenerator) Generate(_ context.Context, foods []entity.FoodItem) (string, error) {
	today := g.now()

	var expiring []entity.FoodItem
	for _, f := range foods {
		if f.DaysLeft(today) <= entity.ExpiryWindowDays {
			expiring = append(expiring, f)
		}
	}
	use := expiring
	if len(use) == 0 {
		use = foods
		if len(use) > mockFallbackCount {
			use = use[:mockFallbackCount]
		}
	}

	// Separador de coma de ancho completo, como en la UI japonesa.
	names := make([]string, 0, len(use))
	for _, f := range use {
		names = append(names, f.Name)
	}
	joined := strings.Join(names, "、")

	var b strings.Builder
	fmt.Fprintf(&b, "【提案レシピ】%sの簡単炒め物（デモモード）\n\n", joined)
	b.WriteString("※ これはデモ用のレシピです。ANTHROPIC_API_KEYを設定するとAIが在庫に合わせたレシピを提案します。\n\n")
	b.WriteString("■ 材料\n")
	for _, f := range use {
		fmt.Fprintf(&b, "・%s … %d個\n", f.Name, f.Quantity)
	}
	b.WriteString("・塩こしょう … 適量\n")
	b.WriteString("・サラダ油 … 大さじ1\n\n")
	b.WriteString("■ 手順\n")
	fmt.Fprintf(&b, "1. %sを食べやすい大きさに切る\n", joined)
	b.WriteString("2. フライパンにサラダ油を熱し、中火で炒める\n")
	b.WriteString("3. 塩こしょうで味を調えて完成\n\n")
	b.WriteString("■ ポイント\n")
	fmt.Fprintf(&b, "・賞味期限が近い食材（%s）を優先的に使っています\n", joined)
	b.WriteString("・お好みで醤油やめんつゆを加えても美味しいです")

	return b.String(), nil
}
