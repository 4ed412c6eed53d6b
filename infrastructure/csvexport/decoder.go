// Package csvexport decodifica os CSVs exportados pela ferramenta de analytics de redes sociais.
//
// A decodificação é tolerante: campos numéricos, percentuais ou datas inválidos recebem o valor
// padrão e geram um domain.ParseDiagnostic, mas nenhuma linha é descartada.
package csvexport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/organic-insights-api/internal/domain"
)

// Colunas do CSV de posts
const (
	ColumnPostID         = "Post ID"
	ColumnNetwork        = "Network"
	ColumnPublishedTime  = "Published time (America/Toronto)"
	ColumnPostType       = "Post Type"
	ColumnPlacement      = "Placement"
	ColumnPostText       = "Post text"
	ColumnPostURL        = "Post URL"
	ColumnImpressions    = "Impressions"
	ColumnReach          = "Reach"
	ColumnEngagementRate = "Engagement rate avg."
	ColumnShares         = "Shares"
	ColumnShareRatio     = "Share Ratio"
	ColumnEngagements    = "Engagements"
	ColumnFrench         = "French?"
	ColumnLabelPrefix    = "Label "
)

const (
	SourcePosts     = "posts"
	SourceFollowers = "followers"
)

// ErrMissingHeader indica um CSV sem linha de cabeçalho
var ErrMissingHeader = errors.New("csv sem cabeçalho")

// Options controla a decodificação
type Options struct {
	// Location é o fuso usado para interpretar datas sem offset
	Location *time.Location
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.UTC
	}
	return o.Location
}

// PostsResult é o resultado da decodificação do CSV de posts
type PostsResult struct {
	Posts       []*domain.Post
	Diagnostics []domain.ParseDiagnostic
}

// table é um CSV com cabeçalho indexado por nome de coluna
type table struct {
	index map[string]int
	rows  [][]string
}

func (t *table) get(row []string, column string) string {
	i, ok := t.index[column]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func readTable(r io.Reader) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler cabeçalho do csv")
	}

	t := &table{index: make(map[string]int, len(header))}
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if _, exists := t.index[name]; !exists {
			t.index[name] = i
		}
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler linha do csv")
		}
		if isBlankRow(row) {
			continue
		}
		t.rows = append(t.rows, row)
	}

	return t, nil
}

func isBlankRow(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// DecodePosts converte o texto do CSV de posts em registros completos.
// Apenas falhas estruturais (cabeçalho ausente, stream ilegível) retornam erro.
func DecodePosts(r io.Reader, opts Options) (*PostsResult, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}

	loc := opts.location()
	result := &PostsResult{
		Posts:       make([]*domain.Post, 0, len(t.rows)),
		Diagnostics: []domain.ParseDiagnostic{},
	}
	seen := make(map[string]int, len(t.rows))

	for i, row := range t.rows {
		rowNumber := i + 1
		d := &rowDiagnostics{source: SourcePosts, row: rowNumber}

		post := &domain.Post{
			ID:        strings.TrimSpace(t.get(row, ColumnPostID)),
			Network:   domain.ParseNetwork(t.get(row, ColumnNetwork)),
			PostType:  domain.ParsePostType(t.get(row, ColumnPostType)),
			Placement: strings.TrimSpace(t.get(row, ColumnPlacement)),
			Text:      t.get(row, ColumnPostText),
			URL:       strings.TrimSpace(t.get(row, ColumnPostURL)),
			Language:  domain.LanguageEN,
			Tags:      []string{},
		}
		d.recordID = post.ID

		if previous, duplicated := seen[post.ID]; duplicated && post.ID != "" {
			d.add(ColumnPostID, post.ID, fmt.Sprintf("duplicado da linha %d", previous))
		} else {
			seen[post.ID] = rowNumber
		}

		published := t.get(row, ColumnPublishedTime)
		if ts, ok := parseTimestamp(published, loc); ok {
			post.PublishedAt = ts
		} else {
			d.add(ColumnPublishedTime, published, "0001-01-01T00:00:00Z")
		}

		post.Impressions = d.count(ColumnImpressions, t.get(row, ColumnImpressions))
		post.Engagements = d.count(ColumnEngagements, t.get(row, ColumnEngagements))
		post.Shares = d.count(ColumnShares, t.get(row, ColumnShares))

		reach, ok := parseReach(t.get(row, ColumnReach))
		if !ok {
			d.add(ColumnReach, t.get(row, ColumnReach), "0")
		}
		post.Reach = reach

		post.EngagementRate = d.percentage(ColumnEngagementRate, t.get(row, ColumnEngagementRate))
		post.ShareRatio = d.percentage(ColumnShareRatio, t.get(row, ColumnShareRatio))

		if isFrenchFlag(t.get(row, ColumnFrench)) {
			post.Language = domain.LanguageFR
		}

		for n := 1; n <= domain.MaxTags; n++ {
			label := strings.TrimSpace(t.get(row, ColumnLabelPrefix+strconv.Itoa(n)))
			if label != "" {
				post.Tags = append(post.Tags, label)
			}
		}

		result.Posts = append(result.Posts, post)
		result.Diagnostics = append(result.Diagnostics, d.items...)
	}

	return result, nil
}

// DecodePostsString é um atalho para decodificar o texto completo do CSV
func DecodePostsString(csvText string, opts Options) (*PostsResult, error) {
	return DecodePosts(bytes.NewBufferString(csvText), opts)
}

type rowDiagnostics struct {
	source   string
	row      int
	recordID string
	items    []domain.ParseDiagnostic
}

func (d *rowDiagnostics) add(column, value, def string) {
	d.items = append(d.items, domain.ParseDiagnostic{
		Source:   d.source,
		Row:      d.row,
		RecordID: d.recordID,
		Column:   column,
		Value:    value,
		Default:  def,
	})
}

func (d *rowDiagnostics) count(column, value string) int64 {
	n, ok := parseCount(value)
	if !ok {
		d.add(column, value, "0")
	}
	return n
}

func (d *rowDiagnostics) percentage(column, value string) float64 {
	f, ok := parsePercentage(value)
	if !ok {
		d.add(column, value, "0")
	}
	return f
}
