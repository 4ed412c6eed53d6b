package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/organic-insights-api/pkg/utils"
	"golang.org/x/text/cases"
)

// Dimensões de filtro que aceitam seleção múltipla
const (
	DimensionNetworks   = "networks"
	DimensionPostTypes  = "post_types"
	DimensionPlacements = "placements"
	DimensionTags       = "tags"
	DimensionMonths     = "months"
	DimensionYears      = "years"
)

// Months são os nomes de mês aceitos pelo seletor de meses
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// DateRange é um intervalo inclusivo por dia. To ausente significa limite inferior aberto.
type DateRange struct {
	From time.Time
	To   *time.Time
}

type dateRangeJSON struct {
	From string  `json:"from"`
	To   *string `json:"to,omitempty"`
}

func (d DateRange) MarshalJSON() ([]byte, error) {
	out := dateRangeJSON{From: d.From.Format(time.DateOnly)}
	if d.To != nil {
		to := d.To.Format(time.DateOnly)
		out.To = &to
	}
	return json.Marshal(out)
}

func (d *DateRange) UnmarshalJSON(data []byte) error {
	var in dateRangeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	if strings.TrimSpace(in.From) == "" {
		return fmt.Errorf("date_range.from é obrigatório")
	}

	from, err := utils.ParseDate(in.From)
	if err != nil {
		return fmt.Errorf("date_range.from inválido: %w", err)
	}
	d.From = *from
	d.To = nil

	if in.To != nil && strings.TrimSpace(*in.To) != "" {
		to, err := utils.ParseDate(*in.To)
		if err != nil {
			return fmt.Errorf("date_range.to inválido: %w", err)
		}
		if to.Before(d.From) {
			return fmt.Errorf("date_range.to não pode ser anterior a date_range.from")
		}
		d.To = to
	}

	return nil
}

// FilterCriteria descreve a visão atual do dashboard.
// Conjuntos vazios não restringem a dimensão; valores dentro de uma dimensão são combinados com OU
// e as dimensões entre si com E.
type FilterCriteria struct {
	Networks       []Network  `json:"networks"`
	PostTypes      []PostType `json:"post_types"`
	Placements     []string   `json:"placements"`
	SelectedMonths []string   `json:"selected_months"`
	SelectedYears  []string   `json:"selected_years"`
	Tags           []string   `json:"tags"`
	Language       Language   `json:"language"`
	SearchQuery    string     `json:"search_query"`
	DateRange      *DateRange `json:"date_range"`
}

// NewFilterCriteria retorna os filtros neutros usados na inicialização e no reset
func NewFilterCriteria() FilterCriteria {
	return FilterCriteria{
		Networks:       []Network{},
		PostTypes:      []PostType{},
		Placements:     []string{},
		SelectedMonths: []string{},
		SelectedYears:  []string{},
		Tags:           []string{},
		Language:       LanguageAll,
		SearchQuery:    "",
		DateRange:      nil,
	}
}

// Clone retorna uma cópia profunda dos filtros
func (f FilterCriteria) Clone() FilterCriteria {
	out := FilterCriteria{
		Networks:       append([]Network{}, f.Networks...),
		PostTypes:      append([]PostType{}, f.PostTypes...),
		Placements:     append([]string{}, f.Placements...),
		SelectedMonths: append([]string{}, f.SelectedMonths...),
		SelectedYears:  append([]string{}, f.SelectedYears...),
		Tags:           append([]string{}, f.Tags...),
		Language:       f.Language,
		SearchQuery:    f.SearchQuery,
	}
	if f.DateRange != nil {
		dr := DateRange{From: f.DateRange.From}
		if f.DateRange.To != nil {
			to := *f.DateRange.To
			dr.To = &to
		}
		out.DateRange = &dr
	}
	return out
}

// Normalize garante slices não nulos e idioma válido
func (f FilterCriteria) Normalize() FilterCriteria {
	out := f.Clone()
	if language, ok := ParseLanguageFilter(string(out.Language)); ok {
		out.Language = language
	}
	for i, n := range out.Networks {
		out.Networks[i] = ParseNetwork(string(n))
	}
	for i, t := range out.PostTypes {
		out.PostTypes[i] = ParsePostType(string(t))
	}
	return out
}

// Validate verifica os valores enumerados dos filtros
func (f FilterCriteria) Validate() error {
	if _, ok := ParseLanguageFilter(string(f.Language)); !ok {
		return fmt.Errorf("idioma inválido: %s", f.Language)
	}

	for _, month := range f.SelectedMonths {
		if !containsString(Months, month) {
			return fmt.Errorf("mês inválido: %s", month)
		}
	}

	for _, year := range f.SelectedYears {
		if _, err := time.Parse("2006", year); err != nil {
			return fmt.Errorf("ano inválido: %s", year)
		}
	}

	if f.DateRange != nil && f.DateRange.To != nil && f.DateRange.To.Before(f.DateRange.From) {
		return fmt.Errorf("date_range.to não pode ser anterior a date_range.from")
	}

	return nil
}

// Toggle adiciona o valor à dimensão quando ausente, ou o remove quando presente
func (f FilterCriteria) Toggle(dimension, value string) (FilterCriteria, error) {
	out := f.Clone()

	switch dimension {
	case DimensionNetworks:
		out.Networks = toggle(out.Networks, ParseNetwork(value))
	case DimensionPostTypes:
		out.PostTypes = toggle(out.PostTypes, ParsePostType(value))
	case DimensionPlacements:
		out.Placements = toggle(out.Placements, value)
	case DimensionTags:
		out.Tags = toggle(out.Tags, value)
	case DimensionMonths:
		if !containsString(Months, value) {
			return f, fmt.Errorf("mês inválido: %s", value)
		}
		out.SelectedMonths = toggle(out.SelectedMonths, value)
	case DimensionYears:
		out.SelectedYears = toggle(out.SelectedYears, value)
	default:
		return f, fmt.Errorf("dimensão de filtro desconhecida: %s", dimension)
	}

	return out, nil
}

func toggle[T comparable](values []T, value T) []T {
	for i, v := range values {
		if v == value {
			return append(values[:i:i], values[i+1:]...)
		}
	}
	return append(values, value)
}

// FilterPatch é uma atualização parcial aplicada sobre os filtros anteriores.
// Campos ausentes mantêm o valor anterior; date_range null remove o intervalo.
type FilterPatch struct {
	Networks       *[]Network      `json:"networks"`
	PostTypes      *[]PostType     `json:"post_types"`
	Placements     *[]string       `json:"placements"`
	SelectedMonths *[]string       `json:"selected_months"`
	SelectedYears  *[]string       `json:"selected_years"`
	Tags           *[]string       `json:"tags"`
	Language       *Language       `json:"language"`
	SearchQuery    *string         `json:"search_query"`
	DateRange      json.RawMessage `json:"date_range"`
}

// Apply aplica o patch sobre os filtros anteriores
func (p FilterPatch) Apply(prev FilterCriteria) (FilterCriteria, error) {
	out := prev.Clone()

	if p.Networks != nil {
		out.Networks = append([]Network{}, (*p.Networks)...)
	}
	if p.PostTypes != nil {
		out.PostTypes = append([]PostType{}, (*p.PostTypes)...)
	}
	if p.Placements != nil {
		out.Placements = append([]string{}, (*p.Placements)...)
	}
	if p.SelectedMonths != nil {
		out.SelectedMonths = append([]string{}, (*p.SelectedMonths)...)
	}
	if p.SelectedYears != nil {
		out.SelectedYears = append([]string{}, (*p.SelectedYears)...)
	}
	if p.Tags != nil {
		out.Tags = append([]string{}, (*p.Tags)...)
	}
	if p.Language != nil {
		out.Language = *p.Language
	}
	if p.SearchQuery != nil {
		out.SearchQuery = *p.SearchQuery
	}
	if len(p.DateRange) > 0 {
		if bytes.Equal(bytes.TrimSpace(p.DateRange), []byte("null")) {
			out.DateRange = nil
		} else {
			var dr DateRange
			if err := json.Unmarshal(p.DateRange, &dr); err != nil {
				return prev, err
			}
			out.DateRange = &dr
		}
	}

	out = out.Normalize()
	if err := out.Validate(); err != nil {
		return prev, err
	}
	return out, nil
}

// Matcher é a forma compilada dos filtros, usada para avaliar muitos posts
type Matcher struct {
	networks   map[Network]struct{}
	postTypes  map[PostType]struct{}
	placements map[string]struct{}
	months     map[string]struct{}
	years      map[string]struct{}
	tags       map[string]struct{}
	language   Language
	query      string
	folder     cases.Caser
	dateRange  *DateRange
}

// Compile prepara os filtros para avaliação. O Matcher não deve ser compartilhado entre goroutines.
func (f FilterCriteria) Compile() *Matcher {
	folder := cases.Fold()
	m := &Matcher{
		networks:   toSet(f.Networks),
		postTypes:  toSet(f.PostTypes),
		placements: toSet(f.Placements),
		months:     toSet(f.SelectedMonths),
		years:      toSet(f.SelectedYears),
		tags:       toSet(f.Tags),
		language:   f.Language,
		folder:     folder,
		dateRange:  f.DateRange,
	}
	if q := strings.TrimSpace(f.SearchQuery); q != "" {
		m.query = folder.String(f.SearchQuery)
	}
	return m
}

// Matches indica se o post pertence à visão filtrada
func (f FilterCriteria) Matches(post *Post) bool {
	return f.Compile().Match(post)
}

// Match avalia o post contra cada dimensão
func (m *Matcher) Match(post *Post) bool {
	if post == nil {
		return false
	}

	if len(m.networks) > 0 {
		if _, ok := m.networks[post.Network]; !ok {
			return false
		}
	}

	if len(m.postTypes) > 0 {
		if _, ok := m.postTypes[post.PostType]; !ok {
			return false
		}
	}

	if len(m.placements) > 0 {
		if _, ok := m.placements[post.Placement]; !ok {
			return false
		}
	}

	if len(m.tags) > 0 && !m.matchAnyTag(post.Tags) {
		return false
	}

	// post sem data não pertence a nenhum mês ou ano
	if (len(m.months) > 0 || len(m.years) > 0) && post.PublishedAt.IsZero() {
		return false
	}

	if len(m.months) > 0 {
		if _, ok := m.months[post.MonthName()]; !ok {
			return false
		}
	}

	if len(m.years) > 0 {
		if _, ok := m.years[post.Year()]; !ok {
			return false
		}
	}

	if m.language != "" && m.language != LanguageAll && post.Language != m.language {
		return false
	}

	if m.query != "" && !strings.Contains(m.folder.String(post.Text), m.query) {
		return false
	}

	if m.dateRange != nil && !m.matchDateRange(post.PublishedAt) {
		return false
	}

	return true
}

func (m *Matcher) matchAnyTag(tags []string) bool {
	for _, tag := range tags {
		if _, ok := m.tags[tag]; ok {
			return true
		}
	}
	return false
}

// matchDateRange compara por dia de calendário, no fuso do próprio post
func (m *Matcher) matchDateRange(publishedAt time.Time) bool {
	if publishedAt.IsZero() {
		return false
	}
	day := dayKey(publishedAt)
	if day < dayKey(m.dateRange.From) {
		return false
	}
	if m.dateRange.To != nil && day > dayKey(*m.dateRange.To) {
		return false
	}
	return true
}

func dayKey(t time.Time) int {
	y, mo, d := t.Date()
	return y*10000 + int(mo)*100 + d
}

// ApplyFilters retorna os posts que atendem aos filtros, preservando a ordem original
func ApplyFilters(posts []*Post, criteria FilterCriteria) []*Post {
	matcher := criteria.Compile()
	filtered := make([]*Post, 0, len(posts))
	for _, post := range posts {
		if matcher.Match(post) {
			filtered = append(filtered, post)
		}
	}
	return filtered
}

func toSet[T comparable](values []T) map[T]struct{} {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
