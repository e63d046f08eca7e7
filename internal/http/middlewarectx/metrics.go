package middlewarectx

import (
	"net/http"
	"strconv"

	chimw "github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "storefront_http_requests_total",
		Help: "Количество HTTP-запросов по методу, пути и статусу ответа.",
	},
	[]string{"method", "path", "status"},
)

// MetricsMiddleware возвращает middleware, считающее запросы для
// прометеевских метрик. Путь берётся из запроса как есть: маршрутов
// немного и все без параметров, кардинальность не растёт.
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			requestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(ww.Status())).Inc()
		})
	}
}
