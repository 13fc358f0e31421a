package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, "ai-persuasion.mp4", cfg.VideoPath)
	assert.Equal(t, "ai-persuasion", cfg.VideoDisplayName)
	assert.Equal(t, "video/mp4", cfg.VideoMIMEType)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, 120, cfg.MaxPollAttempts)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoad_DisplayNameFromPath(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("VIDEO_PATH", "/data/videos/keynote-2026.mov")
	t.Setenv("VIDEO_MIME_TYPE", "video/quicktime")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "keynote-2026", cfg.VideoDisplayName)
	assert.Equal(t, "video/quicktime", cfg.VideoMIMEType)
}

func TestLoad_ExplicitDisplayName(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("VIDEO_DISPLAY_NAME", "my-talk")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "my-talk", cfg.VideoDisplayName)
}
