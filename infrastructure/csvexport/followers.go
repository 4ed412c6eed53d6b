package csvexport

import (
	"bytes"
	"io"
	"sort"

	"github.com/vfg2006/organic-insights-api/internal/domain"
)

// Colunas do CSV de seguidores
const (
	ColumnDate        = "Date"
	ColumnFacebook    = "FB followers"
	ColumnInstagramEN = "IGEN followers"
	ColumnInstagramFR = "IGFR followers"
	ColumnTikTokEN    = "TTEN followers"
	ColumnTikTokFR    = "TTFR followers"
	ColumnXEN         = "XEN followers"
	ColumnXFR         = "XFR followers"
)

// FollowersResult é o resultado da decodificação do CSV de seguidores
type FollowersResult struct {
	Points      []domain.FollowerDataPoint
	Diagnostics []domain.ParseDiagnostic
}

// DecodeFollowers converte o CSV de seguidores em snapshots ordenados por data
func DecodeFollowers(r io.Reader, opts Options) (*FollowersResult, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}

	loc := opts.location()
	result := &FollowersResult{
		Points:      make([]domain.FollowerDataPoint, 0, len(t.rows)),
		Diagnostics: []domain.ParseDiagnostic{},
	}

	for i, row := range t.rows {
		d := &rowDiagnostics{source: SourceFollowers, row: i + 1}

		point := domain.FollowerDataPoint{}

		rawDate := t.get(row, ColumnDate)
		if date, ok := parseTimestamp(rawDate, loc); ok {
			point.Date = date
			point.Month = date.Format(domain.FollowerMonthLayout)
		} else {
			d.add(ColumnDate, rawDate, "0001-01-01")
		}
		d.recordID = point.Month

		point.Facebook = d.count(ColumnFacebook, t.get(row, ColumnFacebook))
		point.InstagramEN = d.count(ColumnInstagramEN, t.get(row, ColumnInstagramEN))
		point.InstagramFR = d.count(ColumnInstagramFR, t.get(row, ColumnInstagramFR))
		point.TikTokEN = d.count(ColumnTikTokEN, t.get(row, ColumnTikTokEN))
		point.TikTokFR = d.count(ColumnTikTokFR, t.get(row, ColumnTikTokFR))
		point.XEN = d.count(ColumnXEN, t.get(row, ColumnXEN))
		point.XFR = d.count(ColumnXFR, t.get(row, ColumnXFR))
		point.Total = point.ComputeTotal()

		result.Points = append(result.Points, point)
		result.Diagnostics = append(result.Diagnostics, d.items...)
	}

	sort.SliceStable(result.Points, func(i, j int) bool {
		return result.Points[i].Date.Before(result.Points[j].Date)
	})

	return result, nil
}

// DecodeFollowersString é um atalho para decodificar o texto completo do CSV
func DecodeFollowersString(csvText string, opts Options) (*FollowersResult, error) {
	return DecodeFollowers(bytes.NewBufferString(csvText), opts)
}
