package exportclient

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/organic-insights-api/internal/config"
	"github.com/vfg2006/organic-insights-api/pkg/utils"
)

// ErrFetchFailed indica que o CSV não pôde ser obtido (rede, status HTTP, objeto ou arquivo ausente)
var ErrFetchFailed = errors.New("falha ao obter csv")

// Client obtém o conteúdo bruto dos CSVs exportados
type Client interface {
	FetchPosts(ctx context.Context) ([]byte, error)
	FetchFollowers(ctx context.Context) ([]byte, error)
}

type ExportClient struct {
	BaseURL       string
	PostsPath     string
	FollowersPath string
	HTTPClient    *http.Client
}

// NewClient escolhe a origem dos CSVs pelo esquema de DATASET_BASE_URL: s3://, http(s):// ou diretório local
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	if strings.HasPrefix(cfg.Dataset.BaseURL, "s3://") {
		return NewS3Client(ctx, cfg.Dataset)
	}

	return &ExportClient{
		BaseURL:       cfg.Dataset.BaseURL,
		PostsPath:     cfg.Dataset.PostsPath,
		FollowersPath: cfg.Dataset.FollowersPath,
		HTTPClient:    newHTTPClient(cfg.Dataset.FetchTimeout),
	}, nil
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: fetchTimeout(timeout)}
}

func fetchTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return 30 * time.Second
	}
	return d
}

// FetchPosts obtém o CSV de posts
func (c *ExportClient) FetchPosts(ctx context.Context) ([]byte, error) {
	return c.fetch(ctx, c.PostsPath)
}

// FetchFollowers obtém o CSV de seguidores
func (c *ExportClient) FetchFollowers(ctx context.Context) ([]byte, error) {
	return c.fetch(ctx, c.FollowersPath)
}

func (c *ExportClient) fetch(ctx context.Context, assetPath string) ([]byte, error) {
	if isRemote(c.BaseURL) {
		target := strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(assetPath, "/")

		logrus.WithField("url", target).Debug("Buscando csv exportado")

		data, err := utils.MakeRequest(ctx, c.HTTPClient, target)
		if err != nil {
			return nil, errors.Wrapf(ErrFetchFailed, "%s: %v", target, err)
		}
		return data, nil
	}

	file := filepath.Join(c.BaseURL, filepath.FromSlash(strings.TrimLeft(assetPath, "/")))

	logrus.WithField("file", file).Debug("Lendo csv exportado do disco")

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(ErrFetchFailed, "%s: %v", file, err)
	}
	return data, nil
}

func isRemote(base string) bool {
	u, err := url.Parse(base)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
