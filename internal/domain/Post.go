package domain

import (
	"strings"
	"time"
)

type Network string

const (
	NetworkTikTok    Network = "TIKTOK"
	NetworkInstagram Network = "INSTAGRAM"
	NetworkFacebook  Network = "FACEBOOK"
	NetworkTwitter   Network = "TWITTER"
)

type PostType string

const (
	PostTypeVideo    PostType = "VIDEO"
	PostTypeImage    PostType = "IMAGE"
	PostTypeReels    PostType = "REELS"
	PostTypeCarousel PostType = "CAROUSEL"
	PostTypeText     PostType = "TEXT"
)

type Language string

const (
	LanguageEN Language = "EN"
	LanguageFR Language = "FR"
	// LanguageAll só é válido nos filtros, nunca em um post
	LanguageAll Language = "ALL"
)

// MaxTags é o número de colunas "Label N" exportadas pela ferramenta de analytics
const MaxTags = 19

// Post representa uma publicação orgânica exportada pela ferramenta de analytics
type Post struct {
	ID             string    `json:"id"`
	Network        Network   `json:"network"`
	PublishedAt    time.Time `json:"published_at"`
	PostType       PostType  `json:"post_type"`
	Placement      string    `json:"placement"`
	Text           string    `json:"text"`
	URL            string    `json:"url"`
	Impressions    int64     `json:"impressions"`
	Reach          *int64    `json:"reach"` // nil quando a origem traz "-" (desconhecido)
	EngagementRate float64   `json:"engagement_rate"`
	Shares         int64     `json:"shares"`
	ShareRatio     float64   `json:"share_ratio"`
	Engagements    int64     `json:"engagements"`
	Language       Language  `json:"language"`
	Tags           []string  `json:"tags"`
}

// MonthName retorna o nome do mês de publicação em inglês, como exibido no seletor de meses
func (p *Post) MonthName() string {
	return p.PublishedAt.Month().String()
}

// Year retorna o ano de publicação com quatro dígitos
func (p *Post) Year() string {
	return p.PublishedAt.Format("2006")
}

// ParseNetwork normaliza o valor da coluna Network
func ParseNetwork(value string) Network {
	return Network(strings.ToUpper(strings.TrimSpace(value)))
}

// ParsePostType normaliza o valor da coluna Post Type
func ParsePostType(value string) PostType {
	return PostType(strings.ToUpper(strings.TrimSpace(value)))
}

// ParseLanguageFilter converte o parâmetro de idioma dos filtros, aceitando EN, FR ou ALL
func ParseLanguageFilter(value string) (Language, bool) {
	switch Language(strings.ToUpper(strings.TrimSpace(value))) {
	case LanguageEN:
		return LanguageEN, true
	case LanguageFR:
		return LanguageFR, true
	case LanguageAll, "":
		return LanguageAll, true
	}
	return "", false
}

// PostView é o post com a marcação cosmética de impulsionamento usada pela tabela
type PostView struct {
	*Post
	Boosted bool `json:"boosted"`
}
