package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/organic-insights-api/internal/api/handler"
	"github.com/vfg2006/organic-insights-api/internal/api/handler/router"
	"github.com/vfg2006/organic-insights-api/internal/config"
	"github.com/vfg2006/organic-insights-api/internal/scheduler"
	"github.com/vfg2006/organic-insights-api/internal/usecases/dataset"
	"github.com/vfg2006/organic-insights-api/internal/usecases/followers"
	"github.com/vfg2006/organic-insights-api/pkg/middleware"
	"golang.org/x/time/rate"
)

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com todas as rotas e a cadeia de middlewares globais
func NewHandler(
	config *config.Config,
	datasetContext dataset.Context,
	followerService followers.FollowerService,
	reloadService *scheduler.DatasetReloadService,
) http.Handler {
	// recargas manuais pelas duas rotas dividem o mesmo limite
	reloadLimit := middleware.RateLimit(reloadLimiter(config.DatasetReload.MinInterval))

	configs := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck(datasetContext)...),
		router.WithRoutes(handler.Dataset(datasetContext, followerService, reloadLimit)...),
		router.WithRoutes(handler.Filters(datasetContext)...),
		router.WithRoutes(handler.Insights(datasetContext)...),
		router.WithRoutes(handler.Followers(followerService)...),
		router.WithRoutes(handler.CronJobs(reloadService, reloadLimit)...),
	}
	if config.Metrics.Enabled {
		configs = append(configs, router.WithRoutes(handler.Metrics()...))
	}

	rt := router.New(configs...)
	for _, route := range rt.Routes() {
		logrus.Debugf("Rota registrada: %s", route)
	}

	// recuperação de panic dentro do logging para herdar o ID de correlação e registrar o 500
	middlewares := []alice.Constructor{
		middleware.LoggingMiddleware(),
		middleware.LogPanicMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

// reloadLimiter permite uma recarga manual por intervalo; intervalo zero desliga o limite
func reloadLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

func New(
	config *config.Config,
	datasetContext dataset.Context,
	followerService followers.FollowerService,
	reloadService *scheduler.DatasetReloadService,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, datasetContext, followerService, reloadService),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
