package domain

// DashboardStats resume a coleção de posts filtrada
type DashboardStats struct {
	TotalPosts        int     `json:"total_posts"`
	TotalImpressions  int64   `json:"total_impressions"`
	TotalEngagements  int64   `json:"total_engagements"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"` // totalEngagements * 100 / totalImpressions
	AvgShareRatio     float64 `json:"avg_share_ratio"`     // totalShares * 100 / totalEngagements
}

// Aggregate calcula as estatísticas a partir das somas, e não da média das taxas de cada post
func Aggregate(posts []*Post) DashboardStats {
	var (
		totalImpressions int64
		totalEngagements int64
		totalShares      int64
	)

	for _, post := range posts {
		totalImpressions += post.Impressions
		totalEngagements += post.Engagements
		totalShares += post.Shares
	}

	stats := DashboardStats{
		TotalPosts:       len(posts),
		TotalImpressions: totalImpressions,
		TotalEngagements: totalEngagements,
	}

	if totalImpressions > 0 {
		stats.AvgEngagementRate = float64(totalEngagements) / float64(totalImpressions) * 100
	}

	if totalEngagements > 0 {
		stats.AvgShareRatio = float64(totalShares) / float64(totalEngagements) * 100
	}

	return stats
}
