package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/organic-insights-api/infrastructure/csvexport/exportclient"
	"github.com/vfg2006/organic-insights-api/internal/api"
	"github.com/vfg2006/organic-insights-api/internal/config"
	"github.com/vfg2006/organic-insights-api/internal/scheduler"
	"github.com/vfg2006/organic-insights-api/internal/usecases/dataset"
	"github.com/vfg2006/organic-insights-api/internal/usecases/followers"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	csvClient, err := exportclient.NewClient(ctx, cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	datasetContext := dataset.NewService(csvClient, cfg)
	followerService := followers.NewService(csvClient, cfg)

	// A carga inicial roda em segundo plano; até terminar, as rotas de dados respondem 503
	go loadInitialData(ctx, datasetContext, followerService)

	reloadService := scheduler.NewDatasetReloadService(datasetContext, followerService, cfg)
	if err := reloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	} else {
		logrus.Info("Agendador de recarga do dataset iniciado com sucesso")
	}

	server, err := api.New(cfg, datasetContext, followerService, reloadService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func loadInitialData(ctx context.Context, datasetContext dataset.Context, followerService followers.FollowerService) {
	if err := datasetContext.Load(ctx); err != nil {
		logrus.WithError(err).Error("Erro na carga inicial do csv de posts")
	}

	if err := followerService.Load(ctx); err != nil {
		logrus.WithError(err).Error("Erro na carga inicial do csv de seguidores")
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
