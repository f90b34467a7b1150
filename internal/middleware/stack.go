package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"pet-kata/internal/platform/metrics"
)

// Stack es la cadena del API, de afuera hacia adentro. Recover va último para
// que el 500 de un panic pase por el log y las métricas.
func Stack(log *zap.Logger, m *metrics.Metrics) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		RequestID,
		chimw.RealIP,
		RequestLogger(log),
		Instrument(m),
		Recover(log),
	}
}
