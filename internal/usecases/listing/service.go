package listing

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vfg2006/organic-insights-api/internal/domain"
)

// Campos aceitos para ordenação da tabela de posts
const (
	SortPublishedAt    = "published_at"
	SortNetwork        = "network"
	SortPostType       = "post_type"
	SortPlacement      = "placement"
	SortImpressions    = "impressions"
	SortReach          = "reach"
	SortEngagements    = "engagements"
	SortEngagementRate = "engagement_rate"
	SortShares         = "shares"
	SortShareRatio     = "share_ratio"
	SortText           = "text"
	SortID             = "id"
)

const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

const DefaultPageSize = 10

// PageSizes são os tamanhos de página oferecidos pela tabela
var PageSizes = []int{10, 25, 50, 100}

var (
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrInvalidDirection = errors.New("invalid sort direction")
	ErrInvalidPageSize  = errors.New("invalid page size")
	ErrInvalidPage      = errors.New("invalid page")
)

// Query descreve a página pedida pela tabela
type Query struct {
	SortBy    string
	Direction string
	Page      int
	PageSize  int
}

// DefaultQuery ordena pelos posts mais recentes primeiro
func DefaultQuery() Query {
	return Query{
		SortBy:    SortPublishedAt,
		Direction: DirectionDesc,
		Page:      1,
		PageSize:  DefaultPageSize,
	}
}

// Page é uma página da tabela de posts
type Page struct {
	Items      []domain.PostView `json:"items"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalItems int               `json:"total_items"`
	TotalPages int               `json:"total_pages"`
	SortBy     string            `json:"sort_by"`
	Direction  string            `json:"direction"`
}

// BoostChecker indica quais posts recebem o destaque de impulsionado
type BoostChecker interface {
	IsBoosted(postID string) bool
}

type less func(a, b *domain.Post) bool

var comparators = map[string]less{
	SortPublishedAt:    func(a, b *domain.Post) bool { return a.PublishedAt.Before(b.PublishedAt) },
	SortNetwork:        func(a, b *domain.Post) bool { return a.Network < b.Network },
	SortPostType:       func(a, b *domain.Post) bool { return a.PostType < b.PostType },
	SortPlacement:      func(a, b *domain.Post) bool { return a.Placement < b.Placement },
	SortImpressions:    func(a, b *domain.Post) bool { return a.Impressions < b.Impressions },
	SortEngagements:    func(a, b *domain.Post) bool { return a.Engagements < b.Engagements },
	SortEngagementRate: func(a, b *domain.Post) bool { return a.EngagementRate < b.EngagementRate },
	SortShares:         func(a, b *domain.Post) bool { return a.Shares < b.Shares },
	SortShareRatio:     func(a, b *domain.Post) bool { return a.ShareRatio < b.ShareRatio },
	SortText:           func(a, b *domain.Post) bool { return strings.ToLower(a.Text) < strings.ToLower(b.Text) },
	SortID:             func(a, b *domain.Post) bool { return a.ID < b.ID },
	SortReach:          func(a, b *domain.Post) bool { return *a.Reach < *b.Reach },
}

// Validate completa os valores ausentes e rejeita os inválidos
func (q Query) Validate() (Query, error) {
	def := DefaultQuery()

	q.SortBy = strings.ToLower(strings.TrimSpace(q.SortBy))
	if q.SortBy == "" {
		q.SortBy = def.SortBy
	}
	if _, ok := comparators[q.SortBy]; !ok {
		return q, fmt.Errorf("%w: %s", ErrInvalidSortField, q.SortBy)
	}

	q.Direction = strings.ToLower(strings.TrimSpace(q.Direction))
	switch q.Direction {
	case "":
		q.Direction = def.Direction
	case DirectionAsc, DirectionDesc:
	default:
		return q, fmt.Errorf("%w: %s", ErrInvalidDirection, q.Direction)
	}

	if q.Page == 0 {
		q.Page = def.Page
	}
	if q.Page < 0 {
		return q, fmt.Errorf("%w: %d", ErrInvalidPage, q.Page)
	}

	if q.PageSize == 0 {
		q.PageSize = def.PageSize
	}
	if !validPageSize(q.PageSize) {
		return q, fmt.Errorf("%w: %d", ErrInvalidPageSize, q.PageSize)
	}

	return q, nil
}

func validPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// Sort devolve uma cópia ordenada dos posts. A ordenação é estável e
// posts sem alcance conhecido ficam sempre no fim, em qualquer direção.
func Sort(posts []*domain.Post, sortBy, direction string) []*domain.Post {
	sorted := append([]*domain.Post{}, posts...)

	cmp, ok := comparators[sortBy]
	if !ok {
		return sorted
	}
	desc := direction == DirectionDesc

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		if sortBy == SortReach && (a.Reach == nil || b.Reach == nil) {
			return a.Reach != nil && b.Reach == nil
		}

		if desc {
			return cmp(b, a)
		}
		return cmp(a, b)
	})

	return sorted
}

// List ordena e pagina os posts filtrados, marcando os impulsionados
func List(posts []*domain.Post, query Query, boosts BoostChecker) (*Page, error) {
	query, err := query.Validate()
	if err != nil {
		return nil, err
	}

	sorted := Sort(posts, query.SortBy, query.Direction)

	total := len(sorted)
	page := &Page{
		Items:      []domain.PostView{},
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalItems: total,
		TotalPages: (total + query.PageSize - 1) / query.PageSize,
		SortBy:     query.SortBy,
		Direction:  query.Direction,
	}

	start := (query.Page - 1) * query.PageSize
	if start >= total {
		return page, nil
	}
	end := start + query.PageSize
	if end > total {
		end = total
	}

	for _, post := range sorted[start:end] {
		page.Items = append(page.Items, domain.PostView{
			Post:    post,
			Boosted: boosts != nil && boosts.IsBoosted(post.ID),
		})
	}

	return page, nil
}
