package domain

import "sort"

// Facets são as listas de valores distintos usadas para popular as opções dos filtros
type Facets struct {
	AllPlacements []string `json:"all_placements"`
	AllTags       []string `json:"all_tags"`
	AllYears      []string `json:"all_years"`
}

// CollectFacets deduplica placements, tags e anos observados na coleção completa
func CollectFacets(posts []*Post) Facets {
	placements := make(map[string]struct{})
	tags := make(map[string]struct{})
	years := make(map[string]struct{})

	for _, post := range posts {
		if post.Placement != "" {
			placements[post.Placement] = struct{}{}
		}
		for _, tag := range post.Tags {
			tags[tag] = struct{}{}
		}
		if !post.PublishedAt.IsZero() {
			years[post.Year()] = struct{}{}
		}
	}

	return Facets{
		AllPlacements: sortedKeys(placements),
		AllTags:       sortedKeys(tags),
		AllYears:      sortedKeys(years),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
