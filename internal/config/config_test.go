package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("DATASET_BOOSTED_POST_IDS", " 123 , ,456")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://dash.example.com")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "/mcd-data.csv", cfg.Dataset.PostsPath)
	assert.Equal(t, "/mcd-followers.csv", cfg.Dataset.FollowersPath)
	assert.Equal(t, 30*time.Second, cfg.Dataset.FetchTimeout)
	assert.Equal(t, []string{"123", "456"}, cfg.Dataset.BoostedPostIDs)
	assert.Equal(t, []string{"https://dash.example.com"}, cfg.Cors.AllowedOrigins)
	assert.Equal(t, "0 6 * * *", cfg.DatasetReload.CronSchedule)
}

func TestDataset_Location(t *testing.T) {
	assert.Equal(t, "America/Toronto", Dataset{Timezone: "America/Toronto"}.Location().String())
	assert.Equal(t, time.UTC, Dataset{Timezone: "Mars/Olympus"}.Location())
}

func TestCompact(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, compact([]string{"", " a", "b ", "  "}))
	assert.Empty(t, compact(nil))
}
