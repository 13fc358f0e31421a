package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all runtime settings, read from the environment.
type Config struct {
	GeminiAPIKey     string        `env:"GEMINI_API_KEY"`
	Model            string        `env:"MODEL" env-default:"gemini-2.5-flash"`
	VideoPath        string        `env:"VIDEO_PATH" env-default:"ai-persuasion.mp4"`
	VideoDisplayName string        `env:"VIDEO_DISPLAY_NAME"`
	VideoMIMEType    string        `env:"VIDEO_MIME_TYPE" env-default:"video/mp4"`
	NotesPath        string        `env:"NOTES_PATH"`
	MongoURI         string        `env:"MONGODB_URI"`
	MongoDB          string        `env:"MONGODB_DB" env-default:"video_insights"`
	PollInterval     time.Duration `env:"POLL_INTERVAL" env-default:"5s"`
	MaxPollAttempts  int           `env:"MAX_POLL_ATTEMPTS" env-default:"120"`
}

// Load reads the configuration from the environment. The Gemini API key is
// required; everything else has a usable default. When no display name is
// set, it is derived from the video path's base name.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("config: GEMINI_API_KEY is required")
	}

	if cfg.VideoDisplayName == "" {
		cfg.VideoDisplayName = displayName(cfg.VideoPath)
	}

	return &cfg, nil
}

func displayName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
