package handler

import (
	"net/http"

	"github.com/vfg2006/organic-insights-api/internal/api/handler/router"
	"github.com/vfg2006/organic-insights-api/internal/metrics"
	"github.com/vfg2006/organic-insights-api/internal/scheduler"
	"github.com/vfg2006/organic-insights-api/internal/usecases/dataset"
	"github.com/vfg2006/organic-insights-api/internal/usecases/followers"
)

func Healthcheck(service dataset.Context) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

// Dataset monta as rotas do dataset. reloadMiddlewares se aplicam só à recarga.
func Dataset(service dataset.Context, followerService followers.FollowerService, reloadMiddlewares ...func(http.Handler) http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset/status",
			Method:  http.MethodGet,
			Handler: GetDatasetStatus(service, followerService),
		},
		{
			Path:        "/v1/dataset/reload",
			Method:      http.MethodPost,
			Handler:     ReloadDataset(service),
			Middlewares: reloadMiddlewares,
		},
		{
			Path:    "/v1/dataset/diagnostics",
			Method:  http.MethodGet,
			Handler: GetDiagnostics(service),
		},
	}
}

func Filters(service dataset.Context) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/filters",
			Method:  http.MethodGet,
			Handler: GetFilters(service),
		},
		{
			Path:    "/v1/filters",
			Method:  http.MethodPut,
			Handler: ReplaceFilters(service),
		},
		{
			Path:    "/v1/filters",
			Method:  http.MethodPatch,
			Handler: PatchFilters(service),
		},
		{
			Path:    "/v1/filters",
			Method:  http.MethodDelete,
			Handler: ResetFilters(service),
		},
		{
			Path:    "/v1/filters/:dimension/toggle",
			Method:  http.MethodPost,
			Handler: ToggleFilter(service),
		},
	}
}

func Insights(service dataset.Context) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/posts",
			Method:  http.MethodGet,
			Handler: ListPosts(service),
		},
		{
			Path:    "/v1/stats",
			Method:  http.MethodGet,
			Handler: GetStats(service),
		},
		{
			Path:    "/v1/facets",
			Method:  http.MethodGet,
			Handler: GetFacets(service),
		},
	}
}

func Followers(service followers.FollowerService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/followers",
			Method:  http.MethodGet,
			Handler: GetFollowerSeries(service),
		},
	}
}

func CronJobs(service *scheduler.DatasetReloadService, runMiddlewares ...func(http.Handler) http.Handler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/dataset-reload/run",
			Method:      http.MethodPost,
			Handler:     RunDatasetReloadJob(service),
			Middlewares: runMiddlewares,
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(service),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}
