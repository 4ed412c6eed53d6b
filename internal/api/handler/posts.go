package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/organic-insights-api/internal/usecases/dataset"
	"github.com/vfg2006/organic-insights-api/internal/usecases/listing"
	"github.com/vfg2006/organic-insights-api/pkg/apiErrors"
	"github.com/vfg2006/organic-insights-api/pkg/log"
)

func parseIntParam(r *http.Request, name string) (int, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}

// ListPosts retorna a página pedida dos posts filtrados, ordenada e com a marcação de impulsionado
func ListPosts(service dataset.Context) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		page, err := parseIntParam(r, "page")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "page deve ser um número", nil)
			return
		}
		pageSize, err := parseIntParam(r, "page_size")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "page_size deve ser um número", nil)
			return
		}

		query := listing.Query{
			SortBy:    r.URL.Query().Get("sort_by"),
			Direction: r.URL.Query().Get("direction"),
			Page:      page,
			PageSize:  pageSize,
		}

		snapshot, err := service.Snapshot()
		if err != nil {
			writeServiceError(w, err)
			return
		}

		result, err := listing.List(snapshot.FilteredPosts, query, service)
		if err != nil {
			logger.WithError(err).Warn("posts: invalid listing query")
			writeServiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"page":        result.Page,
			"page_size":   result.PageSize,
			"total_items": result.TotalItems,
		}).Debug("posts: page listed")

		writeJSON(w, http.StatusOK, result)
	})
}

func GetStats(service dataset.Context) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := service.Snapshot()
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, snapshot.Stats)
	})
}

func GetFacets(service dataset.Context) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := service.Snapshot()
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, snapshot.Facets)
	})
}
