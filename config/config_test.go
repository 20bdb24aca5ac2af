package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PROJECT_ID", "GEMINI_MODEL", "RAPIDAPI_HOST", "NOMINATIM_BASE_URL", "PORT", "MAX_UPLOAD_MB"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, "jsearch.p.rapidapi.com", cfg.RapidAPIHost)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.NominatimBaseURL)
	assert.Equal(t, 1, cfg.GeocodeDelaySeconds)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, int64(10), cfg.MaxUploadMB)
	assert.False(t, cfg.Debug)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PROJECT_ID", "my-project")
	t.Setenv("PORT", "9090")
	t.Setenv("DEBUG", "true")
	t.Setenv("MAX_UPLOAD_MB", "25")
	t.Setenv("GEOCODE_DELAY_SECONDS", "2")

	cfg := Load()

	assert.Equal(t, "my-project", cfg.ProjectID)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, int64(25), cfg.MaxUploadMB)
	assert.Equal(t, 2, cfg.GeocodeDelaySeconds)
}

func TestValidate(t *testing.T) {
	cfg := &Config{ProjectID: "my-project", RapidAPIKey: "key"}
	require.NoError(t, cfg.Validate())

	cfg = &Config{RapidAPIKey: "key"}
	err := cfg.Validate()
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "PROJECT_ID", cfgErr.Field)

	cfg = &Config{ProjectID: "my-project"}
	err = cfg.Validate()
	require.Error(t, err)
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "RAPIDAPI_KEY", cfgErr.Field)
}

func TestMaxUploadBytes(t *testing.T) {
	cfg := &Config{MaxUploadMB: 10}
	assert.EqualValues(t, 10*1024*1024, cfg.MaxUploadBytes())
}
