package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/organic-insights-api/internal/domain"
	"github.com/vfg2006/organic-insights-api/internal/usecases/dataset"
)

type HealthcheckResponse struct {
	Status  string           `json:"status"`
	Time    time.Time        `json:"time"`
	Dataset domain.LoadState `json:"dataset"`
}

// HealthcheckHandler responde 200 enquanto o processo estiver de pé, mesmo sem dataset carregado
func HealthcheckHandler(service dataset.Context) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := HealthcheckResponse{Status: "ok", Time: time.Now()}
		if service != nil {
			response.Dataset = service.Status().State
		}
		writeJSON(w, http.StatusOK, response)
	})
}
