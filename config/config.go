package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

// DefaultPostsURL is the root of the posts API used when nothing else is configured.
const DefaultPostsURL = "https://blogapi.crevetor.org/posts/"

type AppConfig struct {
	Logging  LoggingConfig `yaml:"logging"`
	PostsURL string        `yaml:"posts_url"`
	HTTP     HTTPConfig    `yaml:"http"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// HTTPConfig holds settings for outbound calls to the posts API.
type HTTPConfig struct {
	UserAgent string `yaml:"user_agent"`
}

var config *AppConfig

// Default returns the configuration used when no config.yaml is found.
func Default() AppConfig {
	return AppConfig{
		Logging:  LoggingConfig{Level: "info"},
		PostsURL: DefaultPostsURL,
	}
}

// InitApp loads .env and config.yaml from the base path and stores the result
// for GetConfig. A missing config.yaml is not an error.
func InitApp() error {
	base := GetBasePath()

	// load environment variables
	_ = godotenv.Load(filepath.Join(base, ENV_FILE))

	c, err := Load(base)
	if err != nil {
		return err
	}
	config = &c
	return nil
}

// Load reads dir/config.yaml on top of the defaults and applies environment
// overrides (POSTS_URL, LOG_LEVEL). dir == "" skips the file.
func Load(dir string) (AppConfig, error) {
	c := Default()

	if dir != "" {
		data, err := os.ReadFile(filepath.Join(dir, CONFIG_FILE))
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &c); err != nil {
				return AppConfig{}, err
			}
		case !os.IsNotExist(err):
			return AppConfig{}, err
		}
	}

	if v := strings.TrimSpace(os.Getenv("POSTS_URL")); v != "" {
		c.PostsURL = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		c.Logging.Level = v
	}
	if c.PostsURL == "" {
		c.PostsURL = DefaultPostsURL
	}
	return c, nil
}

func GetConfig() AppConfig {
	if config == nil {
		if err := InitApp(); err != nil {
			return Default()
		}
	}

	return *config
}

// GetBasePath walks up from the working directory looking for config.yaml.
// It returns "" when none is found.
func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
