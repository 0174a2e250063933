package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func newTestViper(overrides map[string]interface{}) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for key, value := range overrides {
		v.Set(key, value)
	}
	return v
}

func TestDefaults(t *testing.T) {
	cfg := fromViper(newTestViper(nil))

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "/enterprise/api", cfg.APIPrefix)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.Cache.EnrollmentTTL)
	assert.Equal(t, 10, cfg.Paging.DefaultPageSize)
	assert.Equal(t, 100, cfg.Paging.MaxPageSize)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestCacheTTLOverrideAndFallback(t *testing.T) {
	cfg := fromViper(newTestViper(map[string]interface{}{"ENROLLMENT_CACHE_TTL": "90s"}))
	assert.Equal(t, 90*time.Second, cfg.Cache.EnrollmentTTL)

	cfg = fromViper(newTestViper(map[string]interface{}{"ENROLLMENT_CACHE_TTL": "soon"}))
	assert.Equal(t, 10*time.Minute, cfg.Cache.EnrollmentTTL)
}

func TestPagingBoundsAreNormalised(t *testing.T) {
	cfg := fromViper(newTestViper(map[string]interface{}{"DEFAULT_PAGE_SIZE": 50, "MAX_PAGE_SIZE": 20}))

	assert.Equal(t, 50, cfg.Paging.DefaultPageSize)
	assert.Equal(t, 50, cfg.Paging.MaxPageSize)
}

func TestSplitAndTrim(t *testing.T) {
	assert.Nil(t, splitAndTrim(""))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, splitAndTrim(" https://a.example, ,https://b.example "))
}
