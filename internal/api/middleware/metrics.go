// Package middleware HTTP-middleware сервиса.
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VoiceScheduler/pkg/metrics"
)

// statusRecorder перехватывает статус ответа для метрик
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware собирает количество и длительность HTTP-запросов.
// Шаблон маршрута берется из mux, чтобы не плодить метки на каждый URL
func MetricsMiddleware(collector *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if collector == nil {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tpl, err := route.GetPathTemplate(); err == nil {
					path = tpl
				}
			}

			collector.HTTPRequestsTotal.WithLabelValues(
				r.Method, path, strconv.Itoa(recorder.status),
			).Inc()
			collector.HTTPRequestDuration.WithLabelValues(
				r.Method, path,
			).Observe(time.Since(start).Seconds())
		})
	}
}
