package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Stats.CacheEnabled)
	assert.Equal(t, 5*time.Minute, cfg.Stats.CacheTTL)
	assert.Equal(t, "UTC", cfg.Stats.Timezone)
	assert.Equal(t, 60, cfg.Stats.RateLimit)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("STATS_CACHE_ENABLED", "false")
	t.Setenv("STATS_CACHE_TTL", "90s")
	t.Setenv("STATS_TIMEZONE", "America/Sao_Paulo")
	t.Setenv("STATS_RATE_LIMIT", "10")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()

	assert.False(t, cfg.Stats.CacheEnabled)
	assert.Equal(t, 90*time.Second, cfg.Stats.CacheTTL)
	assert.Equal(t, 10, cfg.Stats.RateLimit)
	assert.Equal(t, 0, cfg.Redis.DB, "unparsable values fall back to the default")

	loc, err := cfg.Stats.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", loc.String())
}

func TestStatsConfig_Location_Invalid(t *testing.T) {
	_, err := StatsConfig{Timezone: "Mars/Olympus"}.Location()

	assert.Error(t, err)
}
