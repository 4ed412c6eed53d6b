package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/organic-insights-api/internal/domain"
	"github.com/vfg2006/organic-insights-api/internal/usecases/dataset"
	"github.com/vfg2006/organic-insights-api/pkg/apiErrors"
	"github.com/vfg2006/organic-insights-api/pkg/log"
	"github.com/vfg2006/organic-insights-api/pkg/utils"
)

// FiltersResponse traz os filtros atuais e, quando o dataset já está pronto, o resumo da visão filtrada
type FiltersResponse struct {
	Filters       domain.FilterCriteria  `json:"filters"`
	FilteredPosts *int                   `json:"filtered_posts,omitempty"`
	Stats         *domain.DashboardStats `json:"stats,omitempty"`
}

// ToggleRequest é o corpo de POST /v1/filters/:dimension/toggle
type ToggleRequest struct {
	Value string `json:"value"`
}

func newFiltersResponse(filters domain.FilterCriteria, snapshot *domain.DatasetSnapshot) FiltersResponse {
	response := FiltersResponse{Filters: filters}
	if snapshot != nil {
		filtered := len(snapshot.FilteredPosts)
		stats := snapshot.Stats
		response.Filters = snapshot.Filters
		response.FilteredPosts = &filtered
		response.Stats = &stats
	}
	return response
}

func GetFilters(service dataset.Context) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := service.Snapshot()
		if err != nil {
			snapshot = nil
		}
		writeJSON(w, http.StatusOK, newFiltersResponse(service.Filters(), snapshot))
	})
}

// ReplaceFilters substitui todos os filtros pelo corpo da requisição
func ReplaceFilters(service dataset.Context) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var criteria domain.FilterCriteria
		if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
			logger.WithError(err).Warn("filters: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
			return
		}

		logger.Debugf("filters: replacing criteria %s", utils.PrettyJson(criteria))

		snapshot, err := service.SetFilters(criteria)
		if err != nil {
			logger.WithError(err).Warn("filters: criteria rejected")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newFiltersResponse(service.Filters(), snapshot))
	})
}

// PatchFilters aplica uma atualização parcial sobre os filtros anteriores
func PatchFilters(service dataset.Context) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var patch domain.FilterPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			logger.WithError(err).Warn("filters: invalid patch body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
			return
		}

		snapshot, err := service.UpdateFilters(patch.Apply)
		if err != nil {
			logger.WithError(err).Warn("filters: patch rejected")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newFiltersResponse(service.Filters(), snapshot))
	})
}

func ResetFilters(service dataset.Context) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("filters: resetting to neutral criteria")

		snapshot := service.ResetFilters()
		writeJSON(w, http.StatusOK, newFiltersResponse(service.Filters(), snapshot))
	})
}

// ToggleFilter adiciona ou remove um valor de uma dimensão de seleção múltipla
func ToggleFilter(service dataset.Context) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		dimension := httprouter.ParamsFromContext(r.Context()).ByName("dimension")

		var request ToggleRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
			return
		}
		if request.Value == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "value é obrigatório", nil)
			return
		}

		logger.WithFields(log.Fields{
			"filter_dimension": dimension,
			"filter_value":     request.Value,
		}).Info("filters: toggling value")

		snapshot, err := service.UpdateFilters(func(prev domain.FilterCriteria) (domain.FilterCriteria, error) {
			return prev.Toggle(dimension, request.Value)
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newFiltersResponse(service.Filters(), snapshot))
	})
}
