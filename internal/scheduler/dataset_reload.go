package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/organic-insights-api/internal/config"
	"github.com/vfg2006/organic-insights-api/internal/usecases/dataset"
	"github.com/vfg2006/organic-insights-api/internal/usecases/followers"
	"golang.org/x/sync/errgroup"
)

// DatasetReloadConfig representa a configuração do agendador de recarga dos CSVs
type DatasetReloadConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DatasetReloadService recarrega periodicamente os CSVs de posts e de seguidores
type DatasetReloadService struct {
	scheduler           *gocron.Scheduler
	config              DatasetReloadConfig
	dataset             dataset.Context
	followers           followers.FollowerService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewDatasetReloadService cria uma nova instância do serviço de recarga
func NewDatasetReloadService(
	datasetContext dataset.Context,
	followerService followers.FollowerService,
	appConfig *config.Config,
) *DatasetReloadService {
	reloadConfig := DatasetReloadConfig{
		CronSchedule: appConfig.DatasetReload.CronSchedule,
		SyncEnabled:  appConfig.DatasetReload.Enabled,
	}

	scheduler := gocron.NewScheduler(appConfig.Dataset.Location())

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
		"sync_enabled":  reloadConfig.SyncEnabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetReloadService{
		scheduler: scheduler,
		config:    reloadConfig,
		dataset:   datasetContext,
		followers: followerService,
	}
}

// Start inicia o agendador
func (s *DatasetReloadService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recarga agendada do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.reloadAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// reloadAll recarrega posts e seguidores em paralelo; a falha de um não impede o outro
func (s *DatasetReloadService) reloadAll(ctx context.Context) {
	if !s.beginSync() {
		logrus.Info("Recarga do dataset já em andamento, ignorando")
		return
	}
	s.runSync(ctx)
}

// beginSync marca a recarga como em andamento; falso quando outra já está rodando
func (s *DatasetReloadService) beginSync() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

// runSync executa a recarga já marcada por beginSync
func (s *DatasetReloadService) runSync(ctx context.Context) {
	startTime := time.Now()
	var postsErr, followersErr error

	// sem WithContext: um erro não deve cancelar a outra carga
	var g errgroup.Group
	g.Go(func() error {
		if postsErr = s.dataset.Reload(ctx); postsErr != nil {
			logrus.WithError(postsErr).Error("Erro ao recarregar o csv de posts")
		}
		return postsErr
	})
	if s.followers != nil {
		g.Go(func() error {
			if followersErr = s.followers.Load(ctx); followersErr != nil {
				logrus.WithError(followersErr).Error("Erro ao recarregar o csv de seguidores")
			}
			return followersErr
		})
	}
	_ = g.Wait()

	failure := errors.Join(postsErr, followersErr)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if failure != nil {
		s.lastSyncError = failure.Error()
	}
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"failed":   failure != nil,
	}).Info("Recarga do dataset concluída")
}

// TriggerManualSync inicia manualmente uma recarga. Retorna falso quando outra já está em andamento.
func (s *DatasetReloadService) TriggerManualSync(ctx context.Context) bool {
	if !s.beginSync() {
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando recarga manual do dataset")
	go s.runSync(context.WithoutCancel(ctx))
	return true
}

// GetStatus retorna o status atual do agendador
func (s *DatasetReloadService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
