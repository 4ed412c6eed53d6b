package handler

import (
	"net/http"

	"github.com/vfg2006/organic-insights-api/internal/domain"
	"github.com/vfg2006/organic-insights-api/internal/usecases/dataset"
	"github.com/vfg2006/organic-insights-api/internal/usecases/followers"
	"github.com/vfg2006/organic-insights-api/pkg/log"
)

// DatasetStatusResponse reúne o estado das duas cargas
type DatasetStatusResponse struct {
	Posts     *domain.DatasetStatus `json:"posts"`
	Followers *domain.DatasetStatus `json:"followers,omitempty"`
}

func GetDatasetStatus(service dataset.Context, followerService followers.FollowerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := DatasetStatusResponse{Posts: service.Status()}
		if followerService != nil {
			response.Followers = followerService.Status()
		}
		writeJSON(w, http.StatusOK, response)
	})
}

// ReloadDataset recarrega o csv de posts de forma síncrona e responde com o novo estado
func ReloadDataset(service dataset.Context) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dataset: explicit reload requested")

		if err := service.Reload(r.Context()); err != nil {
			logger.WithError(err).Warn("dataset: reload failed")
			writeServiceError(w, err)
			return
		}

		status := service.Status()
		logger.WithFields(log.Fields{
			"load_id": status.LoadID,
			"posts":   status.TotalRecords,
		}).Info("dataset: reload finished")

		writeJSON(w, http.StatusOK, status)
	})
}

func GetDiagnostics(service dataset.Context) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		diagnostics := service.Diagnostics()
		writeJSON(w, http.StatusOK, map[string]any{
			"total":       len(diagnostics),
			"diagnostics": diagnostics,
		})
	})
}
