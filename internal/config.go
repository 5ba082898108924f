package internal

import (
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config is the dashboard configuration. Values resolve in three layers:
// built-in defaults, then the YAML config file, then DESKDASH_-prefixed
// environment variables.
type Config struct {
	DBPath    string `envconfig:"DB_PATH" yaml:"db_path"`
	SessionID string `envconfig:"SESSION_ID" yaml:"-"`

	OpenWeatherAPIKey string  `envconfig:"OPENWEATHER_API_KEY" yaml:"openweather_api_key"`
	WeatherLat        float64 `envconfig:"WEATHER_LAT" yaml:"weather_lat"`
	WeatherLon        float64 `envconfig:"WEATHER_LON" yaml:"weather_lon"`

	YouTubeAPIKey  string `envconfig:"YOUTUBE_API_KEY" yaml:"youtube_api_key"`
	YouTubeChannel string `envconfig:"YOUTUBE_CHANNEL" yaml:"youtube_channel"`
	GitHubUser     string `envconfig:"GITHUB_USER" yaml:"github_user"`

	PomodoroWorkMin  int `envconfig:"POMODORO_WORK_MIN" yaml:"pomodoro_work_min"`
	PomodoroBreakMin int `envconfig:"POMODORO_BREAK_MIN" yaml:"pomodoro_break_min"`

	ProgressYear int `envconfig:"PROGRESS_YEAR" yaml:"progress_year"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DBPath:           filepath.Join(home, ".local", "share", "deskdash", "deskdash.db"),
		SessionID:        time.Now().Format("2006-01-02"),
		YouTubeChannel:   "UCDwG7iHjjI0W92w9Ipl6r1w",
		GitHubUser:       "yamanjr10",
		PomodoroWorkMin:  25,
		PomodoroBreakMin: 5,
		ProgressYear:     time.Now().Year(),
	}
}

// ConfigFilePath returns the YAML config file location.
func ConfigFilePath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "deskdash", "config.yaml")
}

// LoadConfig resolves the effective configuration. A missing config file is
// fine; an unreadable one is reported but not fatal (defaults still apply).
func LoadConfig() (Config, error) {
	return loadConfig(ConfigFilePath())
}

func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			Log.Warn().Str("path", path).Err(err).Msg("ignoring malformed config file")
		}
	}

	// Env overrides. No default tags on the struct, so unset variables
	// leave the file/default values alone.
	if err := envconfig.Process("deskdash", &cfg); err != nil {
		return cfg, err
	}

	if cfg.SessionID == "" {
		cfg.SessionID = time.Now().Format("2006-01-02")
	}

	return cfg, nil
}
