package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the variable holding an explicit config file path.
const PathEnv = "CONFIG_PATH"

// searchPaths are tried in order when no path is given.
var searchPaths = []string{"./config.yaml", "./configs/config.yaml"}

// Load reads the file named by CONFIG_PATH, or the first existing file in
// the search paths, then applies environment overrides and validates.
// Precedence is ENV over file over env-default tags. Without any file the
// config comes from the environment alone.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv(PathEnv))
}

// LoadFrom is Load with an explicit path, which must exist.
func LoadFrom(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	} else {
		path = firstExisting(searchPaths)
	}

	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// EnvHelp lists every environment variable the config understands.
func EnvHelp() (string, error) {
	var cfg Config
	return cleanenv.GetDescription(&cfg, nil)
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		} else if !errors.Is(err, fs.ErrNotExist) {
			// Unreadable candidates are left for ReadConfig to report.
			return p
		}
	}
	return ""
}
