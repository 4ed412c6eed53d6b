package dataset

import (
	"context"

	"github.com/vfg2006/organic-insights-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// PostsSource obtém o texto bruto do CSV de posts
type PostsSource interface {
	FetchPosts(ctx context.Context) ([]byte, error)
}

// FilterUpdater calcula os novos filtros a partir dos anteriores
type FilterUpdater func(prev domain.FilterCriteria) (domain.FilterCriteria, error)

// Context é o estado único do dashboard: posts carregados, filtros atuais e dados derivados
type Context interface {
	// Load faz a carga inicial; uma carga em andamento ou concluída não é repetida
	Load(ctx context.Context) error

	// Reload força uma nova carga explícita, rejeitada apenas se outra estiver em andamento
	Reload(ctx context.Context) error

	// Status retorna o estado da carga
	Status() *domain.DatasetStatus

	// Snapshot retorna a visão derivada atual (posts filtrados, estatísticas e facetas)
	Snapshot() (*domain.DatasetSnapshot, error)

	// Filters retorna uma cópia dos filtros atuais
	Filters() domain.FilterCriteria

	// SetFilters substitui os filtros por completo
	SetFilters(criteria domain.FilterCriteria) (*domain.DatasetSnapshot, error)

	// UpdateFilters aplica uma função sobre os filtros anteriores
	UpdateFilters(update FilterUpdater) (*domain.DatasetSnapshot, error)

	// ResetFilters restaura os filtros neutros
	ResetFilters() *domain.DatasetSnapshot

	// IsBoosted indica se o post é impulsionado (apenas destaque visual)
	IsBoosted(postID string) bool

	// Diagnostics retorna os campos que receberam valor padrão na última carga
	Diagnostics() []domain.ParseDiagnostic
}
