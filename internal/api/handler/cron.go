package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/organic-insights-api/internal/scheduler"
	"github.com/vfg2006/organic-insights-api/pkg/apiErrors"
)

// RunDatasetReloadJob dispara em segundo plano a mesma recarga executada pelo agendador
func RunDatasetReloadJob(service *scheduler.DatasetReloadService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunDatasetReloadJob")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recarga do dataset não disponível", nil)
			return
		}

		if !service.TriggerManualSync(r.Context()) {
			apiErrors.WriteError(w, apiErrors.ErrDatasetLoading, "Recarga do dataset já em andamento", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Recarga do dataset iniciada com sucesso",
		})
	})
}

// GetCronStatus retorna o status do agendador de recarga
func GetCronStatus(service *scheduler.DatasetReloadService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recarga do dataset não disponível", nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"dataset-reload": service.GetStatus(),
		})
	})
}
