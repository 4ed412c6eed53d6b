package domain

import "time"

type LoadState string

const (
	LoadStateEmpty   LoadState = "empty"
	LoadStateLoading LoadState = "loading"
	LoadStateReady   LoadState = "ready"
	LoadStateFailed  LoadState = "failed"
)

// DatasetStatus é o estado da carga exposto pela API
type DatasetStatus struct {
	State            LoadState  `json:"state"`
	LoadID           string     `json:"load_id,omitempty"`
	LoadedAt         *time.Time `json:"loaded_at,omitempty"`
	TotalRecords     int        `json:"total_records"`
	DiagnosticsCount int        `json:"diagnostics_count"`
	LastError        string     `json:"last_error,omitempty"`
}

// DatasetSnapshot é a visão derivada imutável de um par (posts, filtros).
// Cada alteração de filtros ou recarga produz um novo snapshot.
type DatasetSnapshot struct {
	LoadID        string         `json:"load_id"`
	LoadedAt      time.Time      `json:"loaded_at"`
	TotalPosts    int            `json:"total_posts"`
	Filters       FilterCriteria `json:"filters"`
	FilteredPosts []*Post        `json:"-"`
	Stats         DashboardStats `json:"stats"`
	Facets        Facets         `json:"facets"`
}
