package domain

import (
	"sort"
	"time"

	"github.com/vfg2006/organic-insights-api/pkg/utils"
)

type Platform string

const (
	PlatformFacebook  Platform = "FACEBOOK"
	PlatformInstagram Platform = "INSTAGRAM"
	PlatformTikTok    Platform = "TIKTOK"
	PlatformX         Platform = "X"
)

var Platforms = []Platform{PlatformFacebook, PlatformInstagram, PlatformTikTok, PlatformX}

// FollowerMonthLayout é o formato do rótulo de mês exibido no eixo do gráfico
const FollowerMonthLayout = "Jan 2006"

// FollowerDataPoint é um snapshot de seguidores por plataforma em uma data
type FollowerDataPoint struct {
	Date        time.Time `json:"date"`
	Month       string    `json:"month"`
	Facebook    int64     `json:"facebook"`
	InstagramEN int64     `json:"instagram_en"`
	InstagramFR int64     `json:"instagram_fr"`
	TikTokEN    int64     `json:"tiktok_en"`
	TikTokFR    int64     `json:"tiktok_fr"`
	XEN         int64     `json:"x_en"`
	XFR         int64     `json:"x_fr"`
	Total       int64     `json:"total"`
}

// ComputeTotal soma todas as plataformas e subcontagens de idioma
func (p *FollowerDataPoint) ComputeTotal() int64 {
	return p.Facebook + p.InstagramEN + p.InstagramFR + p.TikTokEN + p.TikTokFR + p.XEN + p.XFR
}

// ValueFor retorna a contagem da plataforma segundo o filtro de idioma.
// Facebook não é segmentado por idioma.
func (p *FollowerDataPoint) ValueFor(platform Platform, language Language) int64 {
	var en, fr int64

	switch platform {
	case PlatformFacebook:
		return p.Facebook
	case PlatformInstagram:
		en, fr = p.InstagramEN, p.InstagramFR
	case PlatformTikTok:
		en, fr = p.TikTokEN, p.TikTokFR
	case PlatformX:
		en, fr = p.XEN, p.XFR
	default:
		return 0
	}

	switch language {
	case LanguageEN:
		return en
	case LanguageFR:
		return fr
	default:
		return en + fr
	}
}

// FollowerBounds são o mínimo e o máximo de uma plataforma no período
type FollowerBounds struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// FollowerSeriesPoint é um ponto do gráfico com valores absolutos e normalizados (0-100)
type FollowerSeriesPoint struct {
	Date       time.Time            `json:"date"`
	Month      string               `json:"month"`
	Absolute   map[Platform]int64   `json:"absolute"`
	Normalized map[Platform]float64 `json:"normalized"`
	Total      int64                `json:"total"`
}

// FollowerSeries é a série de crescimento relativo de seguidores para um filtro de idioma
type FollowerSeries struct {
	Language Language                    `json:"language"`
	Points   []FollowerSeriesPoint       `json:"points"`
	Bounds   map[Platform]FollowerBounds `json:"bounds"`
}

// NormalizeFollowers projeta o valor em 0-100 dentro dos limites; limites iguais resultam em 50
func NormalizeFollowers(value int64, bounds FollowerBounds) float64 {
	if bounds.Max == bounds.Min {
		return 50
	}
	return float64(value-bounds.Min) / float64(bounds.Max-bounds.Min) * 100
}

// BuildFollowerSeries ordena os pontos por data e calcula valores absolutos, limites e normalização
func BuildFollowerSeries(points []FollowerDataPoint, language Language) FollowerSeries {
	series := FollowerSeries{
		Language: language,
		Points:   []FollowerSeriesPoint{},
		Bounds:   map[Platform]FollowerBounds{},
	}

	if len(points) == 0 {
		return series
	}

	sorted := make([]FollowerDataPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	for _, platform := range Platforms {
		bounds := FollowerBounds{}
		for i := range sorted {
			v := sorted[i].ValueFor(platform, language)
			if i == 0 || v < bounds.Min {
				bounds.Min = v
			}
			if i == 0 || v > bounds.Max {
				bounds.Max = v
			}
		}
		series.Bounds[platform] = bounds
	}

	for i := range sorted {
		point := FollowerSeriesPoint{
			Date:       sorted[i].Date,
			Month:      sorted[i].Date.Format(FollowerMonthLayout),
			Absolute:   make(map[Platform]int64, len(Platforms)),
			Normalized: make(map[Platform]float64, len(Platforms)),
		}
		for _, platform := range Platforms {
			v := sorted[i].ValueFor(platform, language)
			point.Absolute[platform] = v
			point.Normalized[platform] = utils.RoundWithTwoDecimalPlace(NormalizeFollowers(v, series.Bounds[platform]))
			point.Total += v
		}
		series.Points = append(series.Points, point)
	}

	return series
}
