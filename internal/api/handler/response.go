package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/organic-insights-api/internal/usecases/dataset"
	"github.com/vfg2006/organic-insights-api/internal/usecases/followers"
	"github.com/vfg2006/organic-insights-api/internal/usecases/listing"
	"github.com/vfg2006/organic-insights-api/pkg/apiErrors"
	"github.com/vfg2006/organic-insights-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Warn("error encoding response body")
	}
}

// writeServiceError converte os erros dos casos de uso no erro padronizado da API
func writeServiceError(w http.ResponseWriter, err error) {
	var datasetErr *dataset.DatasetError
	if errors.As(err, &datasetErr) {
		apiErrors.WriteError(w, datasetErr.Code, datasetErr.Error(), nil)
		return
	}

	var followersErr *followers.FollowersError
	if errors.As(err, &followersErr) {
		apiErrors.WriteError(w, followersErr.Code, followersErr.Error(), nil)
		return
	}

	switch {
	case dataset.IsNotReady(err):
		apiErrors.WriteError(w, apiErrors.ErrDatasetNotReady, err.Error(), nil)
	case errors.Is(err, listing.ErrInvalidSortField),
		errors.Is(err, listing.ErrInvalidDirection),
		errors.Is(err, listing.ErrInvalidPage),
		errors.Is(err, listing.ErrInvalidPageSize):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}
