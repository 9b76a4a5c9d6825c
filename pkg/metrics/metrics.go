package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores de la aplicación, registrados en el registry global de Prometheus
// y expuestos en GET /metrics.
var (
	// HTTPRequests peticiones HTTP atendidas, por método, ruta y estado.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "despensa_http_requests_total",
		Help: "Peticiones HTTP atendidas.",
	}, []string{"method", "path", "status"})

	// RecipeRequests peticiones de receta, por modo del generador y resultado.
	RecipeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "despensa_recipe_requests_total",
		Help: "Peticiones de sugerencia de receta.",
	}, []string{"mode", "outcome"})
)
