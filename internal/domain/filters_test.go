package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func filterPosts() []*Post {
	return []*Post{
		{ID: "1", Network: NetworkInstagram, PostType: PostTypeReels, Placement: "Feed", PublishedAt: date(2024, time.January, 10), Language: LanguageEN, Text: "Nouvelle Crème glacée", Tags: []string{"Promo", "Summer"}},
		{ID: "2", Network: NetworkFacebook, PostType: PostTypeImage, Placement: "Story", PublishedAt: date(2024, time.February, 5), Language: LanguageFR, Text: "Burger week", Tags: []string{"Menu"}},
		{ID: "3", Network: NetworkTikTok, PostType: PostTypeVideo, Placement: "Feed", PublishedAt: date(2023, time.January, 20), Language: LanguageEN, Text: "Dance challenge", Tags: nil},
	}
}

func matchedIDs(posts []*Post) []string {
	out := []string{}
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterCriteria_Matches(t *testing.T) {
	tests := []struct {
		name     string
		criteria func(c *FilterCriteria)
		expected []string
	}{
		{name: "Filtros neutros aceitam todos os posts", criteria: func(c *FilterCriteria) {}, expected: []string{"1", "2", "3"}},
		{name: "Filtra por rede", criteria: func(c *FilterCriteria) { c.Networks = []Network{NetworkInstagram} }, expected: []string{"1"}},
		{name: "Valores na mesma dimensão combinam com OU", criteria: func(c *FilterCriteria) {
			c.Networks = []Network{NetworkInstagram, NetworkTikTok}
		}, expected: []string{"1", "3"}},
		{name: "Dimensões diferentes combinam com E", criteria: func(c *FilterCriteria) {
			c.Networks = []Network{NetworkInstagram, NetworkTikTok}
			c.Placements = []string{"Story"}
		}, expected: []string{}},
		{name: "Filtra por formato", criteria: func(c *FilterCriteria) { c.PostTypes = []PostType{PostTypeImage} }, expected: []string{"2"}},
		{name: "Tag casa com qualquer tag do post", criteria: func(c *FilterCriteria) { c.Tags = []string{"Promo"} }, expected: []string{"1"}},
		{name: "Post sem tags não passa pelo filtro de tags", criteria: func(c *FilterCriteria) { c.Tags = []string{"Promo", "Menu"} }, expected: []string{"1", "2"}},
		{name: "Filtra por mês", criteria: func(c *FilterCriteria) { c.SelectedMonths = []string{"January"} }, expected: []string{"1", "3"}},
		{name: "Filtra por mês e ano", criteria: func(c *FilterCriteria) {
			c.SelectedMonths = []string{"January"}
			c.SelectedYears = []string{"2024"}
		}, expected: []string{"1"}},
		{name: "Filtra por idioma", criteria: func(c *FilterCriteria) { c.Language = LanguageFR }, expected: []string{"2"}},
		{name: "Idioma ALL não restringe", criteria: func(c *FilterCriteria) { c.Language = LanguageAll }, expected: []string{"1", "2", "3"}},
		{name: "Busca sem diferenciar maiúsculas", criteria: func(c *FilterCriteria) { c.SearchQuery = "BURGER" }, expected: []string{"2"}},
		{name: "Busca com acentos", criteria: func(c *FilterCriteria) { c.SearchQuery = "crème" }, expected: []string{"1"}},
		{name: "Busca só com espaços não restringe", criteria: func(c *FilterCriteria) { c.SearchQuery = "   " }, expected: []string{"1", "2", "3"}},
		{name: "Intervalo de datas inclusivo", criteria: func(c *FilterCriteria) {
			c.DateRange = &DateRange{From: date(2024, time.January, 10), To: datePtr(2024, time.February, 5)}
		}, expected: []string{"1", "2"}},
		{name: "Intervalo sem fim é limite inferior aberto", criteria: func(c *FilterCriteria) {
			c.DateRange = &DateRange{From: date(2024, time.January, 11)}
		}, expected: []string{"2"}},
		{name: "Intervalo de um único dia compara o dia inteiro", criteria: func(c *FilterCriteria) {
			c.DateRange = &DateRange{
				From: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
				To:   datePtr(2024, time.January, 10),
			}
		}, expected: []string{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := NewFilterCriteria()
			tt.criteria(&criteria)

			assert.Equal(t, tt.expected, matchedIDs(ApplyFilters(filterPosts(), criteria)))
		})
	}
}

func TestFilterCriteria_MatchesSemData(t *testing.T) {
	undated := &Post{ID: "undated", Network: NetworkInstagram, Language: LanguageEN}
	posts := append(filterPosts(), undated)

	tests := []struct {
		name     string
		criteria func(c *FilterCriteria)
		expected []string
	}{
		{name: "Filtros neutros mantêm o post sem data", criteria: func(c *FilterCriteria) {}, expected: []string{"1", "2", "3", "undated"}},
		{name: "Mês exclui o post sem data", criteria: func(c *FilterCriteria) { c.SelectedMonths = []string{"January"} }, expected: []string{"1", "3"}},
		{name: "Ano exclui o post sem data", criteria: func(c *FilterCriteria) { c.SelectedYears = []string{"0001"} }, expected: []string{}},
		{name: "Intervalo exclui o post sem data", criteria: func(c *FilterCriteria) {
			c.DateRange = &DateRange{From: time.Time{}}
		}, expected: []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := NewFilterCriteria()
			tt.criteria(&criteria)

			assert.Equal(t, tt.expected, matchedIDs(ApplyFilters(posts, criteria)))
		})
	}
}

func TestFilterCriteria_MatchesNetworks(t *testing.T) {
	instagram := &Post{ID: "ig", Network: NetworkInstagram}
	facebook := &Post{ID: "fb", Network: NetworkFacebook}

	criteria := NewFilterCriteria()
	criteria.Networks = []Network{NetworkInstagram}

	assert.True(t, criteria.Matches(instagram))
	assert.False(t, criteria.Matches(facebook))
	assert.False(t, criteria.Matches(nil))
}

func TestApplyFilters_PreservaOrdem(t *testing.T) {
	posts := filterPosts()
	filtered := ApplyFilters(posts, NewFilterCriteria())

	require.Len(t, filtered, len(posts))
	for i := range posts {
		assert.Same(t, posts[i], filtered[i])
	}
}

func TestFilterCriteria_Validate(t *testing.T) {
	tests := []struct {
		name      string
		criteria  func(c *FilterCriteria)
		expectErr bool
	}{
		{name: "Filtros neutros são válidos", criteria: func(c *FilterCriteria) {}},
		{name: "Idioma inválido", criteria: func(c *FilterCriteria) { c.Language = "ES" }, expectErr: true},
		{name: "Mês inválido", criteria: func(c *FilterCriteria) { c.SelectedMonths = []string{"Janeiro"} }, expectErr: true},
		{name: "Ano inválido", criteria: func(c *FilterCriteria) { c.SelectedYears = []string{"24"} }, expectErr: true},
		{name: "Intervalo invertido", criteria: func(c *FilterCriteria) {
			c.DateRange = &DateRange{From: date(2024, time.March, 1), To: datePtr(2024, time.February, 1)}
		}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := NewFilterCriteria()
			tt.criteria(&criteria)

			err := criteria.Validate()
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFilterCriteria_Normalize(t *testing.T) {
	criteria := FilterCriteria{
		Networks:  []Network{" instagram "},
		PostTypes: []PostType{"reels"},
	}

	normalized := criteria.Normalize()

	assert.Equal(t, []Network{NetworkInstagram}, normalized.Networks)
	assert.Equal(t, []PostType{PostTypeReels}, normalized.PostTypes)
	assert.Equal(t, LanguageAll, normalized.Language)
	assert.NotNil(t, normalized.Tags)
	assert.Equal(t, []Network{" instagram "}, criteria.Networks, "o original não deve ser alterado")
}

func TestFilterCriteria_NormalizeIdioma(t *testing.T) {
	tests := []struct {
		input    Language
		expected Language
	}{
		{input: "fr", expected: LanguageFR},
		{input: " FR ", expected: LanguageFR},
		{input: "en", expected: LanguageEN},
		{input: "all", expected: LanguageAll},
		{input: "", expected: LanguageAll},
		{input: "ES", expected: "ES"},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			criteria := NewFilterCriteria()
			criteria.Language = tt.input

			assert.Equal(t, tt.expected, criteria.Normalize().Language)
		})
	}
}

func TestFilterCriteria_Clone(t *testing.T) {
	original := NewFilterCriteria()
	original.Tags = []string{"Promo"}
	original.DateRange = &DateRange{From: date(2024, time.January, 1), To: datePtr(2024, time.January, 31)}

	clone := original.Clone()
	clone.Tags[0] = "Menu"
	*clone.DateRange.To = date(2025, time.January, 1)

	assert.Equal(t, "Promo", original.Tags[0])
	assert.Equal(t, date(2024, time.January, 31), *original.DateRange.To)
}

func TestFilterCriteria_Toggle(t *testing.T) {
	criteria := NewFilterCriteria()

	criteria, err := criteria.Toggle(DimensionNetworks, "instagram")
	require.NoError(t, err)
	assert.Equal(t, []Network{NetworkInstagram}, criteria.Networks)

	criteria, err = criteria.Toggle(DimensionTags, "Promo")
	require.NoError(t, err)
	criteria, err = criteria.Toggle(DimensionTags, "Menu")
	require.NoError(t, err)
	assert.Equal(t, []string{"Promo", "Menu"}, criteria.Tags)

	criteria, err = criteria.Toggle(DimensionTags, "Promo")
	require.NoError(t, err)
	assert.Equal(t, []string{"Menu"}, criteria.Tags)

	criteria, err = criteria.Toggle(DimensionNetworks, "INSTAGRAM")
	require.NoError(t, err)
	assert.Empty(t, criteria.Networks)

	_, err = criteria.Toggle(DimensionMonths, "Jan")
	assert.Error(t, err)

	_, err = criteria.Toggle("colors", "red")
	assert.Error(t, err)
}

func TestFilterPatch_Apply(t *testing.T) {
	prev := NewFilterCriteria()
	prev.Tags = []string{"Promo"}
	prev.SearchQuery = "burger"
	prev.DateRange = &DateRange{From: date(2024, time.January, 1)}

	t.Run("Campos ausentes mantêm o valor anterior", func(t *testing.T) {
		var patch FilterPatch
		require.NoError(t, json.Unmarshal([]byte(`{"networks":["tiktok"]}`), &patch))

		next, err := patch.Apply(prev)
		require.NoError(t, err)

		assert.Equal(t, []Network{NetworkTikTok}, next.Networks)
		assert.Equal(t, []string{"Promo"}, next.Tags)
		assert.Equal(t, "burger", next.SearchQuery)
		require.NotNil(t, next.DateRange)
	})

	t.Run("date_range null remove o intervalo", func(t *testing.T) {
		var patch FilterPatch
		require.NoError(t, json.Unmarshal([]byte(`{"date_range":null}`), &patch))

		next, err := patch.Apply(prev)
		require.NoError(t, err)
		assert.Nil(t, next.DateRange)
	})

	t.Run("Substitui o intervalo", func(t *testing.T) {
		var patch FilterPatch
		require.NoError(t, json.Unmarshal([]byte(`{"date_range":{"from":"2024-02-01","to":"2024-02-29"}}`), &patch))

		next, err := patch.Apply(prev)
		require.NoError(t, err)
		require.NotNil(t, next.DateRange.To)
		assert.Equal(t, "2024-02-29", next.DateRange.To.Format(time.DateOnly))
	})

	t.Run("Idioma em minúsculas é normalizado", func(t *testing.T) {
		posts := filterPosts()

		for input, expected := range map[string][]string{
			`{"language":"fr"}`:   {"2"},
			`{"language":" FR "}`: {"2"},
			`{"language":"all"}`:  {"1", "2", "3"},
		} {
			var patch FilterPatch
			require.NoError(t, json.Unmarshal([]byte(input), &patch))

			next, err := patch.Apply(prev)
			require.NoError(t, err, input)

			next.Tags = nil
			next.SearchQuery = ""
			next.DateRange = nil
			assert.Equal(t, expected, matchedIDs(ApplyFilters(posts, next)), input)
		}
	})

	t.Run("Idioma inválido mantém os filtros anteriores", func(t *testing.T) {
		var patch FilterPatch
		require.NoError(t, json.Unmarshal([]byte(`{"language":"ES"}`), &patch))

		next, err := patch.Apply(prev)
		assert.Error(t, err)
		assert.Equal(t, prev, next)
	})
}

func TestDateRange_JSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  string
		expectErr bool
	}{
		{name: "Intervalo completo", input: `{"from":"2024-01-01","to":"2024-01-31"}`, expected: `{"from":"2024-01-01","to":"2024-01-31"}`},
		{name: "Sem data final", input: `{"from":"2024-01-01"}`, expected: `{"from":"2024-01-01"}`},
		{name: "Data final vazia", input: `{"from":"2024-01-01","to":""}`, expected: `{"from":"2024-01-01"}`},
		{name: "Sem data inicial", input: `{"to":"2024-01-31"}`, expectErr: true},
		{name: "Formato inválido", input: `{"from":"01/01/2024"}`, expectErr: true},
		{name: "Fim antes do início", input: `{"from":"2024-02-01","to":"2024-01-31"}`, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dr DateRange
			err := json.Unmarshal([]byte(tt.input), &dr)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			out, err := json.Marshal(dr)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(out))
		})
	}
}
