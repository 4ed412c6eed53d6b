package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Dataset       Dataset       `mapstructure:",squash"`
	DatasetReload DatasetReload `mapstructure:",squash"`
	Cors          Cors          `mapstructure:",squash"`
	Metrics       Metrics       `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Dataset struct {
	BaseURL        string        `mapstructure:"dataset_base_url"` // http(s)://, s3://bucket/prefix ou diretório local
	PostsPath      string        `mapstructure:"dataset_posts_path"`
	FollowersPath  string        `mapstructure:"dataset_followers_path"`
	FetchTimeout   time.Duration `mapstructure:"dataset_fetch_timeout"`
	Timezone       string        `mapstructure:"dataset_timezone"`
	BoostedPostIDs []string      `mapstructure:"dataset_boosted_post_ids"`
	S3             S3            `mapstructure:",squash"`
}

// S3 configura a leitura dos CSVs de um bucket S3 ou compatível (MinIO)
type S3 struct {
	Region    string `mapstructure:"dataset_s3_region"`
	Endpoint  string `mapstructure:"dataset_s3_endpoint"`
	AccessKey string `mapstructure:"dataset_s3_access_key"`
	SecretKey string `mapstructure:"dataset_s3_secret_key"`
}

type DatasetReload struct {
	CronSchedule string        `mapstructure:"dataset_reload_cron"`
	Enabled      bool          `mapstructure:"dataset_reload_enabled"`
	MinInterval  time.Duration `mapstructure:"dataset_reload_min_interval"` // intervalo mínimo entre recargas manuais
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Metrics struct {
	Enabled bool `mapstructure:"metrics_enabled"`
}

// Location resolve o fuso do dataset, caindo para UTC quando inválido
func (d Dataset) Location() *time.Location {
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		logrus.WithError(err).Warnf("Fuso inválido para o dataset: %s, usando UTC", d.Timezone)
		return time.UTC
	}
	return loc
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("DATASET_BASE_URL", "./public")
	viper.SetDefault("DATASET_POSTS_PATH", "/mcd-data.csv")
	viper.SetDefault("DATASET_FOLLOWERS_PATH", "/mcd-followers.csv")
	viper.SetDefault("DATASET_FETCH_TIMEOUT", "30s")
	viper.SetDefault("DATASET_TIMEZONE", "America/Toronto")
	viper.SetDefault("DATASET_S3_REGION", "us-east-1")
	viper.SetDefault("DATASET_S3_ENDPOINT", "")
	viper.SetDefault("DATASET_S3_ACCESS_KEY", "")
	viper.SetDefault("DATASET_S3_SECRET_KEY", "")
	viper.SetDefault("DATASET_BOOSTED_POST_IDS", "") // IDs separados por vírgula; vazio desativa o destaque

	viper.SetDefault("DATASET_RELOAD_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("DATASET_RELOAD_ENABLED", false)    // Recarga agendada desabilitada por padrão
	viper.SetDefault("DATASET_RELOAD_MIN_INTERVAL", "10s")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")

	viper.SetDefault("METRICS_ENABLED", true)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Dataset.BoostedPostIDs = compact(config.Dataset.BoostedPostIDs)
	config.Cors.AllowedOrigins = compact(config.Cors.AllowedOrigins)

	return config, nil
}

// compact remove entradas vazias resultantes de listas separadas por vírgula
func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
