package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/vfg2006/organic-insights-api/pkg/apiErrors"
	"github.com/vfg2006/organic-insights-api/pkg/log"
	"golang.org/x/time/rate"
)

// RateLimit rejeita com 429 as requisições acima do limite. Um limiter nil não limita nada.
// O mesmo limiter pode ser compartilhado entre rotas que disparam a mesma operação.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reservation := limiter.Reserve()
			if !reservation.OK() {
				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Limite de requisições excedido", nil)
				return
			}

			if delay := reservation.Delay(); delay > 0 {
				reservation.Cancel()

				log.ForContext(r.Context()).WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Warn("Requisição rejeitada pelo limite de taxa")

				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Limite de requisições excedido", delay.String())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
