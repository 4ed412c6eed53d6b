package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/organic-insights-api/internal/api/handler/router"
	"github.com/vfg2006/organic-insights-api/internal/config"
	"github.com/vfg2006/organic-insights-api/internal/domain"
	"github.com/vfg2006/organic-insights-api/internal/scheduler"
	"github.com/vfg2006/organic-insights-api/internal/usecases/dataset"
	datasetmocks "github.com/vfg2006/organic-insights-api/internal/usecases/dataset/mocks"
	"github.com/vfg2006/organic-insights-api/internal/usecases/followers"
	followersmocks "github.com/vfg2006/organic-insights-api/internal/usecases/followers/mocks"
	"github.com/vfg2006/organic-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func int64Ptr(v int64) *int64 { return &v }

func testSnapshot() *domain.DatasetSnapshot {
	posts := []*domain.Post{
		{ID: "A", Network: domain.NetworkInstagram, PublishedAt: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC), Impressions: 100, Engagements: 10, Shares: 2, Reach: nil},
		{ID: "B", Network: domain.NetworkTikTok, PublishedAt: time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC), Impressions: 300, Engagements: 50, Shares: 4, Reach: int64Ptr(250)},
	}
	return &domain.DatasetSnapshot{
		LoadID:        "abc12345",
		TotalPosts:    2,
		Filters:       domain.NewFilterCriteria(),
		FilteredPosts: posts,
		Stats:         domain.Aggregate(posts),
		Facets:        domain.CollectFacets(posts),
	}
}

func notReadyErr() error {
	return dataset.NewDatasetError(dataset.ErrNotReady, apiErrors.ErrDatasetNotReady, "loading")
}

func serve(t *testing.T, routes []router.Route, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	rt := router.New(router.WithRoutes(routes...))

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestInsights_NotReady(t *testing.T) {
	for _, target := range []string{"/v1/posts", "/v1/stats", "/v1/facets"} {
		t.Run(target, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDataset := datasetmocks.NewMockContext(ctrl)
			mockDataset.EXPECT().Snapshot().Return(nil, notReadyErr())

			rec := serve(t, Insights(mockDataset), http.MethodGet, target, nil)

			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
			assert.Equal(t, apiErrors.ErrDatasetNotReady, decodeError(t, rec).Code)
		})
	}
}

func TestListPosts(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setup          func(m *datasetmocks.MockContext)
		expectedStatus int
		validate       func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Página padrão ordenada por data decrescente com destaque de impulsionado",
			target: "/v1/posts",
			setup: func(m *datasetmocks.MockContext) {
				m.EXPECT().Snapshot().Return(testSnapshot(), nil)
				m.EXPECT().IsBoosted("A").Return(true)
				m.EXPECT().IsBoosted("B").Return(false)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var page struct {
					Items []struct {
						ID      string `json:"id"`
						Boosted bool   `json:"boosted"`
						Reach   *int64 `json:"reach"`
					} `json:"items"`
					TotalItems int    `json:"total_items"`
					TotalPages int    `json:"total_pages"`
					SortBy     string `json:"sort_by"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
				require.Len(t, page.Items, 2)
				assert.Equal(t, "B", page.Items[0].ID)
				assert.False(t, page.Items[0].Boosted)
				assert.Equal(t, "A", page.Items[1].ID)
				assert.True(t, page.Items[1].Boosted)
				assert.Nil(t, page.Items[1].Reach)
				assert.Equal(t, 2, page.TotalItems)
				assert.Equal(t, 1, page.TotalPages)
				assert.Equal(t, "published_at", page.SortBy)
			},
		},
		{
			name:   "Tamanho de página inválido",
			target: "/v1/posts?page_size=13",
			setup: func(m *datasetmocks.MockContext) {
				m.EXPECT().Snapshot().Return(testSnapshot(), nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Página não numérica",
			target:         "/v1/posts?page=abc",
			setup:          func(m *datasetmocks.MockContext) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDataset := datasetmocks.NewMockContext(ctrl)
			tt.setup(mockDataset)

			rec := serve(t, Insights(mockDataset), http.MethodGet, tt.target, nil)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}

func TestGetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDataset := datasetmocks.NewMockContext(ctrl)
	mockDataset.EXPECT().Snapshot().Return(testSnapshot(), nil)

	rec := serve(t, Insights(mockDataset), http.MethodGet, "/v1/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats domain.DashboardStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.TotalPosts)
	assert.Equal(t, int64(400), stats.TotalImpressions)
	assert.InDelta(t, 15.0, stats.AvgEngagementRate, 1e-9)
	assert.InDelta(t, 10.0, stats.AvgShareRatio, 1e-9)
}

func TestFilters(t *testing.T) {
	t.Run("PUT substitui os filtros", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDataset := datasetmocks.NewMockContext(ctrl)

		snapshot := testSnapshot()
		snapshot.Filters.Networks = []domain.Network{domain.NetworkInstagram}
		snapshot.FilteredPosts = snapshot.FilteredPosts[:1]

		mockDataset.EXPECT().SetFilters(gomock.Any()).DoAndReturn(func(c domain.FilterCriteria) (*domain.DatasetSnapshot, error) {
			assert.Equal(t, []domain.Network{domain.NetworkInstagram}, c.Networks)
			require.NotNil(t, c.DateRange)
			assert.Nil(t, c.DateRange.To)
			return snapshot, nil
		})
		mockDataset.EXPECT().Filters().Return(snapshot.Filters)

		body := []byte(`{"networks":["INSTAGRAM"],"date_range":{"from":"2024-01-01"}}`)
		rec := serve(t, Filters(mockDataset), http.MethodPut, "/v1/filters", body)
		require.Equal(t, http.StatusOK, rec.Code)

		var response struct {
			FilteredPosts *int `json:"filtered_posts"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		require.NotNil(t, response.FilteredPosts)
		assert.Equal(t, 1, *response.FilteredPosts)
	})

	t.Run("PUT com corpo inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDataset := datasetmocks.NewMockContext(ctrl)

		rec := serve(t, Filters(mockDataset), http.MethodPut, "/v1/filters", []byte(`{"networks":`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("PUT com intervalo de datas invertido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDataset := datasetmocks.NewMockContext(ctrl)

		body := []byte(`{"date_range":{"from":"2024-02-01","to":"2024-01-01"}}`)
		rec := serve(t, Filters(mockDataset), http.MethodPut, "/v1/filters", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("PATCH aplica o patch sobre os filtros anteriores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDataset := datasetmocks.NewMockContext(ctrl)

		prev := domain.NewFilterCriteria()
		prev.Tags = []string{"Promo"}

		var applied domain.FilterCriteria
		mockDataset.EXPECT().UpdateFilters(gomock.Any()).DoAndReturn(func(update dataset.FilterUpdater) (*domain.DatasetSnapshot, error) {
			var err error
			applied, err = update(prev)
			return nil, err
		})
		mockDataset.EXPECT().Filters().DoAndReturn(func() domain.FilterCriteria { return applied })

		rec := serve(t, Filters(mockDataset), http.MethodPatch, "/v1/filters", []byte(`{"search_query":"mcflurry"}`))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"Promo"}, applied.Tags)
		assert.Equal(t, "mcflurry", applied.SearchQuery)
	})

	t.Run("Toggle de dimensão inválida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDataset := datasetmocks.NewMockContext(ctrl)

		mockDataset.EXPECT().UpdateFilters(gomock.Any()).DoAndReturn(func(update dataset.FilterUpdater) (*domain.DatasetSnapshot, error) {
			_, err := update(domain.NewFilterCriteria())
			require.Error(t, err)
			return nil, dataset.NewDatasetError(dataset.ErrInvalidFilters, apiErrors.ErrInvalidFilter, err.Error())
		})

		rec := serve(t, Filters(mockDataset), http.MethodPost, "/v1/filters/colors/toggle", []byte(`{"value":"red"}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFilter, decodeError(t, rec).Code)
	})

	t.Run("Toggle sem valor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDataset := datasetmocks.NewMockContext(ctrl)

		rec := serve(t, Filters(mockDataset), http.MethodPost, "/v1/filters/tags/toggle", []byte(`{}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
	})

	t.Run("DELETE restaura os filtros neutros", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDataset := datasetmocks.NewMockContext(ctrl)
		mockDataset.EXPECT().ResetFilters().Return(testSnapshot())
		mockDataset.EXPECT().Filters().Return(domain.NewFilterCriteria())

		rec := serve(t, Filters(mockDataset), http.MethodDelete, "/v1/filters", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var response struct {
			Filters struct {
				Language string `json:"language"`
			} `json:"filters"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "ALL", response.Filters.Language)
	})
}

func TestReloadDataset(t *testing.T) {
	t.Run("Recarga com sucesso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDataset := datasetmocks.NewMockContext(ctrl)
		mockDataset.EXPECT().Reload(gomock.Any()).Return(nil)
		mockDataset.EXPECT().Status().Return(&domain.DatasetStatus{State: domain.LoadStateReady, LoadID: "abc12345", TotalRecords: 2}).Times(1)

		rec := serve(t, Dataset(mockDataset, nil), http.MethodPost, "/v1/dataset/reload", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"load_id":"abc12345"`)
	})

	t.Run("Recarga em andamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDataset := datasetmocks.NewMockContext(ctrl)
		mockDataset.EXPECT().Reload(gomock.Any()).Return(dataset.NewDatasetError(dataset.ErrLoadInProgress, apiErrors.ErrDatasetLoading, ""))

		rec := serve(t, Dataset(mockDataset, nil), http.MethodPost, "/v1/dataset/reload", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestGetDatasetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDataset := datasetmocks.NewMockContext(ctrl)
	mockFollowers := followersmocks.NewMockFollowerService(ctrl)

	mockDataset.EXPECT().Status().Return(&domain.DatasetStatus{State: domain.LoadStateLoading})
	mockFollowers.EXPECT().Status().Return(&domain.DatasetStatus{State: domain.LoadStateFailed, LastError: "boom"})

	rec := serve(t, Dataset(mockDataset, mockFollowers), http.MethodGet, "/v1/dataset/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var response DatasetStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, domain.LoadStateLoading, response.Posts.State)
	assert.Equal(t, "boom", response.Followers.LastError)
}

func TestGetFollowerSeries(t *testing.T) {
	t.Run("Série para o idioma pedido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockFollowers := followersmocks.NewMockFollowerService(ctrl)
		mockFollowers.EXPECT().Series(domain.Language("FR")).Return(&domain.FollowerSeries{Language: domain.LanguageFR}, nil)

		rec := serve(t, Followers(mockFollowers), http.MethodGet, "/v1/followers?language=FR", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"language":"FR"`)
	})

	t.Run("Dados de seguidores não carregados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockFollowers := followersmocks.NewMockFollowerService(ctrl)
		mockFollowers.EXPECT().Series(gomock.Any()).Return(nil, followers.NewFollowersError(followers.ErrNotReady, apiErrors.ErrFollowersNotReady, ""))

		rec := serve(t, Followers(mockFollowers), http.MethodGet, "/v1/followers", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestWriteServiceError_Unknown(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, errors.New("unexpected"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWriteServiceError_DatasetNaoCarregado(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, fmt.Errorf("snapshot: %w", dataset.ErrNotReady))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, apiErrors.ErrDatasetNotReady, decodeError(t, rec).Code)
}

func TestHealthcheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDataset := datasetmocks.NewMockContext(ctrl)
	mockDataset.EXPECT().Status().Return(&domain.DatasetStatus{State: domain.LoadStateLoading})

	rec := serve(t, Healthcheck(mockDataset), http.MethodGet, "/healthcheck", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body HealthcheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, domain.LoadStateLoading, body.Dataset)
}

func TestRouter_NotFound(t *testing.T) {
	rec := serve(t, Healthcheck(nil), http.MethodGet, "/v1/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrRouteNotFound, decodeError(t, rec).Code)
}

func TestGetFacets(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDataset := datasetmocks.NewMockContext(ctrl)
	mockDataset.EXPECT().Snapshot().Return(testSnapshot(), nil)

	rec := serve(t, Insights(mockDataset), http.MethodGet, "/v1/facets", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var facets domain.Facets
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &facets))
	assert.Equal(t, []string{"2024"}, facets.AllYears)
	assert.Empty(t, facets.AllTags)
}

func TestGetDiagnostics(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDataset := datasetmocks.NewMockContext(ctrl)
	mockDataset.EXPECT().Diagnostics().Return([]domain.ParseDiagnostic{
		{Source: "posts", Row: 3, RecordID: "C", Column: "Impressions", Value: "abc", Default: "0"},
	})

	rec := serve(t, Dataset(mockDataset, nil), http.MethodGet, "/v1/dataset/diagnostics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"column":"Impressions"`)
}

func TestCronJobs(t *testing.T) {
	t.Run("Serviço indisponível", func(t *testing.T) {
		rec := serve(t, CronJobs(nil), http.MethodPost, "/v1/cron/dataset-reload/run", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("Dispara a recarga e consulta o status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDataset := datasetmocks.NewMockContext(ctrl)
		mockFollowers := followersmocks.NewMockFollowerService(ctrl)
		mockDataset.EXPECT().Reload(gomock.Any()).Return(nil).AnyTimes()
		mockFollowers.EXPECT().Load(gomock.Any()).Return(nil).AnyTimes()

		service := scheduler.NewDatasetReloadService(mockDataset, mockFollowers, &config.Config{})

		rec := serve(t, CronJobs(service), http.MethodPost, "/v1/cron/dataset-reload/run", nil)
		assert.Equal(t, http.StatusAccepted, rec.Code)

		rec = serve(t, CronJobs(service), http.MethodGet, "/v1/cron/status", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"dataset-reload"`)
	})
}
