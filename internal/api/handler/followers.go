package handler

import (
	"net/http"

	"github.com/vfg2006/organic-insights-api/internal/domain"
	"github.com/vfg2006/organic-insights-api/internal/usecases/followers"
	"github.com/vfg2006/organic-insights-api/pkg/log"
)

// GetFollowerSeries retorna a série de seguidores para ?language=EN|FR|ALL (padrão ALL)
func GetFollowerSeries(service followers.FollowerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		language := domain.Language(r.URL.Query().Get("language"))

		series, err := service.Series(language)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("followers: series unavailable")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, series)
	})
}
