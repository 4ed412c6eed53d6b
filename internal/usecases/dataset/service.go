package dataset

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/organic-insights-api/infrastructure/csvexport"
	"github.com/vfg2006/organic-insights-api/internal/config"
	"github.com/vfg2006/organic-insights-api/internal/domain"
	"github.com/vfg2006/organic-insights-api/internal/metrics"
	"github.com/vfg2006/organic-insights-api/pkg/apiErrors"
	"github.com/vfg2006/organic-insights-api/pkg/utils"
)

type Service struct {
	source  PostsSource
	options csvexport.Options
	boosted map[string]struct{}

	mu          sync.RWMutex
	state       domain.LoadState
	loadID      string
	loadedAt    time.Time
	posts       []*domain.Post
	diagnostics []domain.ParseDiagnostic
	filters     domain.FilterCriteria
	snapshot    *domain.DatasetSnapshot
	lastErr     error

	// geração de ID de carga, substituível em testes
	newLoadID func() (string, error)
}

func NewService(source PostsSource, cfg *config.Config) Context {
	boosted := make(map[string]struct{}, len(cfg.Dataset.BoostedPostIDs))
	for _, id := range cfg.Dataset.BoostedPostIDs {
		boosted[id] = struct{}{}
	}

	return &Service{
		source:    source,
		options:   csvexport.Options{Location: cfg.Dataset.Location()},
		boosted:   boosted,
		state:     domain.LoadStateEmpty,
		filters:   domain.NewFilterCriteria(),
		newLoadID: utils.GenerateID,
	}
}

func (s *Service) Load(ctx context.Context) error {
	if err := s.begin(false); err != nil {
		return err
	}
	return s.load(ctx)
}

func (s *Service) Reload(ctx context.Context) error {
	if err := s.begin(true); err != nil {
		return err
	}
	return s.load(ctx)
}

// begin reserva a carga. Só uma carga roda por vez.
func (s *Service) begin(force bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case domain.LoadStateLoading:
		return NewDatasetError(ErrLoadInProgress, apiErrors.ErrDatasetLoading, "")
	case domain.LoadStateReady:
		if !force {
			return NewDatasetError(ErrAlreadyLoaded, apiErrors.ErrDatasetLoaded, s.loadID)
		}
	}

	s.state = domain.LoadStateLoading
	return nil
}

func (s *Service) load(ctx context.Context) error {
	logger := logrus.WithField("source", csvexport.SourcePosts)
	logger.Info("dataset: loading posts csv")

	data, err := s.source.FetchPosts(ctx)
	if err != nil {
		logger.WithError(err).Error("dataset: error fetching posts csv")
		return s.fail(NewDatasetError(ErrFetchFailed, apiErrors.ErrDatasetFetch, err.Error()))
	}

	result, err := csvexport.DecodePosts(bytes.NewReader(data), s.options)
	if err != nil {
		logger.WithError(err).Error("dataset: error decoding posts csv")
		return s.fail(NewDatasetError(ErrDecodeFailed, apiErrors.ErrDatasetDecode, err.Error()))
	}

	loadID, err := s.newLoadID()
	if err != nil {
		return s.fail(NewDatasetError(ErrGenerateLoadID, apiErrors.ErrInternalServer, err.Error()))
	}

	metrics.ObserveLoad(csvexport.SourcePosts, nil)
	metrics.AddDiagnostics(csvexport.SourcePosts, len(result.Diagnostics))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = result.Posts
	s.diagnostics = result.Diagnostics
	s.loadID = loadID
	s.loadedAt = time.Now()
	s.lastErr = nil
	s.state = domain.LoadStateReady
	s.recompute()

	logger.WithFields(logrus.Fields{
		"load_id":     loadID,
		"posts":       len(result.Posts),
		"diagnostics": len(result.Diagnostics),
	}).Info("dataset: posts csv loaded")

	return nil
}

// fail registra o erro da carga. Uma recarga que falha mantém o snapshot anterior disponível.
func (s *Service) fail(err error) error {
	metrics.ObserveLoad(csvexport.SourcePosts, err)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastErr = err
	if s.snapshot != nil {
		s.state = domain.LoadStateReady
	} else {
		s.state = domain.LoadStateFailed
	}
	return err
}

// recompute deve ser chamado com o lock de escrita adquirido
func (s *Service) recompute() {
	start := time.Now()

	filtered := domain.ApplyFilters(s.posts, s.filters)
	s.snapshot = &domain.DatasetSnapshot{
		LoadID:        s.loadID,
		LoadedAt:      s.loadedAt,
		TotalPosts:    len(s.posts),
		Filters:       s.filters.Clone(),
		FilteredPosts: filtered,
		Stats:         domain.Aggregate(filtered),
		Facets:        domain.CollectFacets(s.posts),
	}

	metrics.ObserveRecompute(start, len(filtered))
}

func (s *Service) Status() *domain.DatasetStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := &domain.DatasetStatus{
		State:            s.state,
		LoadID:           s.loadID,
		TotalRecords:     len(s.posts),
		DiagnosticsCount: len(s.diagnostics),
	}
	if !s.loadedAt.IsZero() {
		loadedAt := s.loadedAt
		status.LoadedAt = &loadedAt
	}
	if s.lastErr != nil {
		status.LastError = s.lastErr.Error()
	}
	return status
}

func (s *Service) Snapshot() (*domain.DatasetSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return nil, NewDatasetError(ErrNotReady, apiErrors.ErrDatasetNotReady, string(s.state))
	}
	return s.snapshot, nil
}

func (s *Service) Filters() domain.FilterCriteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters.Clone()
}

func (s *Service) SetFilters(criteria domain.FilterCriteria) (*domain.DatasetSnapshot, error) {
	return s.update("set", func(domain.FilterCriteria) (domain.FilterCriteria, error) {
		return criteria, nil
	})
}

func (s *Service) UpdateFilters(update FilterUpdater) (*domain.DatasetSnapshot, error) {
	if update == nil {
		return nil, NewDatasetError(ErrNilFilterUpdate, apiErrors.ErrInvalidRequest, "")
	}
	return s.update("update", update)
}

func (s *Service) ResetFilters() *domain.DatasetSnapshot {
	snapshot, _ := s.update("reset", func(domain.FilterCriteria) (domain.FilterCriteria, error) {
		return domain.NewFilterCriteria(), nil
	})
	return snapshot
}

// update aplica a função sobre os filtros anteriores de forma atômica.
// Os filtros podem mudar antes da carga; o snapshot só existe depois dela.
func (s *Service) update(operation string, fn FilterUpdater) (*domain.DatasetSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.filters.Clone())
	if err != nil {
		return nil, NewDatasetError(ErrInvalidFilters, apiErrors.ErrInvalidFilter, err.Error())
	}

	next = next.Normalize()
	if err := next.Validate(); err != nil {
		return nil, NewDatasetError(ErrInvalidFilters, apiErrors.ErrInvalidFilter, err.Error())
	}

	s.filters = next
	metrics.IncFilterUpdate(operation)

	if s.posts == nil && s.snapshot == nil {
		return nil, nil
	}

	s.recompute()
	return s.snapshot, nil
}

func (s *Service) IsBoosted(postID string) bool {
	_, ok := s.boosted[postID]
	return ok
}

func (s *Service) Diagnostics() []domain.ParseDiagnostic {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ParseDiagnostic{}, s.diagnostics...)
}

// IsNotReady indica se o erro corresponde a um dataset ainda não carregado
func IsNotReady(err error) bool {
	return errors.Is(err, ErrNotReady)
}
