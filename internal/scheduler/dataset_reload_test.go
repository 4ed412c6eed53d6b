package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/organic-insights-api/internal/config"
	datasetmocks "github.com/vfg2006/organic-insights-api/internal/usecases/dataset/mocks"
	followersmocks "github.com/vfg2006/organic-insights-api/internal/usecases/followers/mocks"
	"go.uber.org/mock/gomock"
)

func newTestConfig(enabled bool) *config.Config {
	return &config.Config{
		Dataset: config.Dataset{Timezone: "UTC"},
		DatasetReload: config.DatasetReload{
			CronSchedule: "0 6 * * *",
			Enabled:      enabled,
		},
	}
}

func TestDatasetReloadService_reloadAll(t *testing.T) {
	tests := []struct {
		name          string
		datasetErr    error
		followersErr  error
		expectedError string
	}{
		{name: "Recarga completa sem erros"},
		{name: "Falha nos posts não impede a recarga dos seguidores", datasetErr: errors.New("posts indisponível"), expectedError: "posts indisponível"},
		{name: "Falha nos seguidores é registrada", followersErr: errors.New("seguidores indisponível"), expectedError: "seguidores indisponível"},
		{name: "Falha nas duas cargas registra ambas", datasetErr: errors.New("posts indisponível"), followersErr: errors.New("seguidores indisponível"), expectedError: "posts indisponível\nseguidores indisponível"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDataset := datasetmocks.NewMockContext(ctrl)
			mockFollowers := followersmocks.NewMockFollowerService(ctrl)

			mockDataset.EXPECT().Reload(gomock.Any()).Return(tt.datasetErr)
			mockFollowers.EXPECT().Load(gomock.Any()).Return(tt.followersErr)

			service := NewDatasetReloadService(mockDataset, mockFollowers, newTestConfig(true))
			service.reloadAll(context.Background())

			status := service.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
			if tt.expectedError == "" {
				assert.Empty(t, status["last_sync_error"])
			} else {
				assert.Contains(t, status["last_sync_error"], tt.expectedError)
			}
		})
	}
}

func TestDatasetReloadService_reloadAllIgnoresOverlap(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDataset := datasetmocks.NewMockContext(ctrl)

	service := NewDatasetReloadService(mockDataset, nil, newTestConfig(true))
	service.syncRunning = true

	// nenhuma chamada ao dataset é esperada
	service.reloadAll(context.Background())
	assert.False(t, service.TriggerManualSync(context.Background()))
}

func TestDatasetReloadService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDataset := datasetmocks.NewMockContext(ctrl)

	done := make(chan struct{})
	mockDataset.EXPECT().Reload(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		close(done)
		return nil
	})

	service := NewDatasetReloadService(mockDataset, nil, newTestConfig(false))
	require.True(t, service.TriggerManualSync(context.Background()))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("recarga manual não executada")
	}
}

func TestDatasetReloadService_TriggerManualSyncConcorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDataset := datasetmocks.NewMockContext(ctrl)

	release := make(chan struct{})
	done := make(chan struct{})
	mockDataset.EXPECT().Reload(gomock.Any()).Times(1).DoAndReturn(func(ctx context.Context) error {
		<-release
		close(done)
		return nil
	})

	service := NewDatasetReloadService(mockDataset, nil, newTestConfig(false))

	var wg sync.WaitGroup
	var accepted atomic.Int32
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if service.TriggerManualSync(context.Background()) {
				accepted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), accepted.Load())
	assert.Equal(t, true, service.GetStatus()["sync_running"])

	close(release)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("recarga manual não executada")
	}
	require.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDatasetReloadService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewDatasetReloadService(datasetmocks.NewMockContext(ctrl), nil, newTestConfig(false))

	require.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}

func TestDatasetReloadService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := newTestConfig(true)
	cfg.DatasetReload.CronSchedule = "not a cron"

	service := NewDatasetReloadService(datasetmocks.NewMockContext(ctrl), nil, cfg)
	assert.Error(t, service.Start(context.Background()))
}
