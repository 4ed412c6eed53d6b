package followers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/organic-insights-api/infrastructure/csvexport"
	"github.com/vfg2006/organic-insights-api/internal/config"
	"github.com/vfg2006/organic-insights-api/internal/domain"
	"github.com/vfg2006/organic-insights-api/internal/metrics"
	"github.com/vfg2006/organic-insights-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

var (
	ErrNotReady       = errors.New("follower data not loaded")
	ErrLoadInProgress = errors.New("follower data load already in progress")
	ErrFetchFailed    = errors.New("error fetching followers csv")
	ErrDecodeFailed   = errors.New("error decoding followers csv")
	ErrInvalidLang    = errors.New("invalid language")
)

// FollowersError carrega o código de erro da API junto do erro base
type FollowersError struct {
	Err     error
	Code    string
	Details string
}

func (e *FollowersError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *FollowersError) Unwrap() error {
	return e.Err
}

func NewFollowersError(err error, code string, details string) *FollowersError {
	return &FollowersError{Err: err, Code: code, Details: details}
}

// FollowersSource obtém o texto bruto do CSV de seguidores
type FollowersSource interface {
	FetchFollowers(ctx context.Context) ([]byte, error)
}

// FollowerService mantém os snapshots de seguidores, carregados independentemente dos posts
type FollowerService interface {
	Load(ctx context.Context) error
	Status() *domain.DatasetStatus
	Series(language domain.Language) (*domain.FollowerSeries, error)
}

type Service struct {
	source  FollowersSource
	options csvexport.Options

	mu          sync.RWMutex
	state       domain.LoadState
	loadedAt    time.Time
	points      []domain.FollowerDataPoint
	diagnostics int
	lastErr     error
}

func NewService(source FollowersSource, cfg *config.Config) FollowerService {
	return &Service{
		source:  source,
		options: csvexport.Options{Location: cfg.Dataset.Location()},
		state:   domain.LoadStateEmpty,
	}
}

// Load busca e decodifica o CSV de seguidores. Uma nova chamada substitui os pontos carregados.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.state == domain.LoadStateLoading {
		s.mu.Unlock()
		return NewFollowersError(ErrLoadInProgress, apiErrors.ErrDatasetLoading, "")
	}
	s.state = domain.LoadStateLoading
	s.mu.Unlock()

	logger := logrus.WithField("source", csvexport.SourceFollowers)

	data, err := s.source.FetchFollowers(ctx)
	if err != nil {
		logger.WithError(err).Error("followers: error fetching followers csv")
		return s.fail(NewFollowersError(ErrFetchFailed, apiErrors.ErrDatasetFetch, err.Error()))
	}

	result, err := csvexport.DecodeFollowers(bytes.NewReader(data), s.options)
	if err != nil {
		logger.WithError(err).Error("followers: error decoding followers csv")
		return s.fail(NewFollowersError(ErrDecodeFailed, apiErrors.ErrDatasetDecode, err.Error()))
	}

	metrics.ObserveLoad(csvexport.SourceFollowers, nil)
	metrics.AddDiagnostics(csvexport.SourceFollowers, len(result.Diagnostics))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.points = result.Points
	s.diagnostics = len(result.Diagnostics)
	s.loadedAt = time.Now()
	s.lastErr = nil
	s.state = domain.LoadStateReady

	logger.WithFields(logrus.Fields{
		"points":      len(result.Points),
		"diagnostics": len(result.Diagnostics),
	}).Info("followers: followers csv loaded")

	return nil
}

func (s *Service) fail(err error) error {
	metrics.ObserveLoad(csvexport.SourceFollowers, err)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastErr = err
	if s.points != nil {
		s.state = domain.LoadStateReady
	} else {
		s.state = domain.LoadStateFailed
	}
	return err
}

func (s *Service) Status() *domain.DatasetStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := &domain.DatasetStatus{
		State:            s.state,
		TotalRecords:     len(s.points),
		DiagnosticsCount: s.diagnostics,
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

// Series monta a série normalizada para o idioma pedido (EN, FR ou ALL)
func (s *Service) Series(language domain.Language) (*domain.FollowerSeries, error) {
	lang, ok := domain.ParseLanguageFilter(string(language))
	if !ok {
		return nil, NewFollowersError(ErrInvalidLang, apiErrors.ErrInvalidRequest, string(language))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.points == nil {
		return nil, NewFollowersError(ErrNotReady, apiErrors.ErrFollowersNotReady, string(s.state))
	}

	series := domain.BuildFollowerSeries(s.points, lang)
	return &series, nil
}
