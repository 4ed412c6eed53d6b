// Package metrics expõe as métricas Prometheus do pipeline do dataset
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	DatasetLoads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "organic_insights_dataset_loads_total",
		Help: "Total de cargas de dataset por fonte e resultado",
	}, []string{"source", "result"})
	ParseDiagnostics = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "organic_insights_parse_diagnostics_total",
		Help: "Total de campos que receberam valor padrão na decodificação",
	}, []string{"source"})
	FilterUpdates = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "organic_insights_filter_updates_total",
		Help: "Total de atualizações dos filtros por tipo de operação",
	}, []string{"operation"})
	RecomputeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "organic_insights_recompute_duration_seconds",
		Help:    "Duração do recálculo de posts filtrados, estatísticas e facetas",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	})
	FilteredPosts = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "organic_insights_filtered_posts",
		Help: "Quantidade de posts na visão filtrada atual",
	})
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "organic_insights_http_requests_total",
		Help: "Total de requisições HTTP por método e status",
	}, []string{"method", "status"})
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "organic_insights_http_request_duration_seconds",
		Help:    "Duração das requisições HTTP",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
)

func init() {
	prometheus.MustRegister(DatasetLoads, ParseDiagnostics, FilterUpdates, RecomputeDuration, FilteredPosts, HTTPRequests, HTTPDuration)
}

// Handler retorna o handler HTTP do endpoint /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveLoad registra o resultado de uma carga
func ObserveLoad(source string, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	DatasetLoads.WithLabelValues(source, result).Inc()
}

// AddDiagnostics soma os diagnósticos de parse de uma fonte
func AddDiagnostics(source string, count int) {
	if count > 0 {
		ParseDiagnostics.WithLabelValues(source).Add(float64(count))
	}
}

// IncFilterUpdate incrementa o contador de atualizações de filtros
func IncFilterUpdate(operation string) { FilterUpdates.WithLabelValues(operation).Inc() }

// ObserveRecompute registra a duração de um recálculo e o tamanho da visão filtrada
func ObserveRecompute(start time.Time, filtered int) {
	RecomputeDuration.Observe(time.Since(start).Seconds())
	FilteredPosts.Set(float64(filtered))
}

// ObserveRequest registra uma requisição HTTP finalizada
func ObserveRequest(method string, status int, duration time.Duration) {
	HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method).Observe(duration.Seconds())
}
