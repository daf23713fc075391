package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPaths are searched in order when LoadAppConfig gets no path.
var DefaultPaths = []string{"config.yml", "./config/config.yml"}

// Default returns the configuration used for unset fields.
func Default() AppConfig {
	return AppConfig{
		LogLevel: "info",
		Routing:  RoutingConfig{BusWaitTime: 6, BusVelocity: 40},
		Router:   RouterConfig{CacheSize: 128},
		GTFS:     GTFSConfig{DistanceUnit: 1},
	}
}

// LoadAppConfig reads the first readable file among paths (DefaultPaths when
// empty), applies defaults and environment overrides, and validates the result.
func LoadAppConfig(paths ...string) (*AppConfig, error) {
	if len(paths) == 0 {
		paths = DefaultPaths
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config data, applies defaults and environment overrides,
// and validates the result.
func Parse(data []byte) (*AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	// .env is optional, but a broken one is an error
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	applyEnv(&cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func applyEnv(cfg *AppConfig) {
	cfg.LogLevel = strings.ToLower(getEnv("TC_LOG_LEVEL", cfg.LogLevel))
	cfg.Routing.BusWaitTime = getIntEnv("TC_BUS_WAIT_TIME", cfg.Routing.BusWaitTime)
	cfg.Routing.BusVelocity = getFloatEnv("TC_BUS_VELOCITY", cfg.Routing.BusVelocity)
	cfg.Router.CacheSize = getIntEnv("TC_ROUTER_CACHE_SIZE", cfg.Router.CacheSize)
	cfg.GTFS.Path = getEnv("TC_GTFS_PATH", cfg.GTFS.Path)
	cfg.GTFS.CachePath = getEnv("TC_GTFS_CACHE_PATH", cfg.GTFS.CachePath)
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getIntEnv(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getFloatEnv(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
