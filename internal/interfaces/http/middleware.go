package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/despensa-api/pkg/logger"
	"github.com/jhoicas/despensa-api/pkg/metrics"
)

// RequestIDHeader cabecera de correlación; si el cliente no la envía se
// genera un UUID nuevo y se devuelve en la respuesta.
const RequestIDHeader = "X-Request-ID"

// RequestLogger registra cada petición con zerolog (id, método, ruta, estado,
// latencia) e incrementa el contador Prometheus de peticiones.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Set(RequestIDHeader, reqID)

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		metrics.HTTPRequests.WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).Inc()

		evt := log.Info()
		if status >= fiber.StatusInternalServerError {
			evt = log.Error()
		}
		evt.
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición atendida")

		return err
	}
}
