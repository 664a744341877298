package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Places  PlacesConfig
	Sampler SamplerConfig
	Log     LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	// RouteTTL bounds how long an uploaded route stays available
	RouteTTL time.Duration
	// SearchCacheTTL bounds how long raw search results are reused
	SearchCacheTTL time.Duration
}

type PlacesConfig struct {
	APIKey         string
	BaseURL        string
	RequestTimeout int // seconds
	MaxResults     int
}

type SamplerConfig struct {
	SpacingMeters float64
	MaxSamples    int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			RouteTTL:       time.Duration(viper.GetInt("ROUTE_TTL")) * time.Second,
			SearchCacheTTL: time.Duration(viper.GetInt("SEARCH_CACHE_TTL")) * time.Second,
		},
		Places: PlacesConfig{
			APIKey:         viper.GetString("GOOGLE_API_KEY"),
			BaseURL:        viper.GetString("PLACES_BASE_URL"),
			RequestTimeout: viper.GetInt("PLACES_REQUEST_TIMEOUT"),
			MaxResults:     viper.GetInt("PLACES_MAX_RESULTS"),
		},
		Sampler: SamplerConfig{
			SpacingMeters: viper.GetFloat64("SAMPLER_SPACING_METERS"),
			MaxSamples:    viper.GetInt("SAMPLER_MAX_SAMPLES"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Cache.RouteTTL == 0 {
		cfg.Cache.RouteTTL = 24 * time.Hour
	}
	if cfg.Cache.SearchCacheTTL == 0 {
		cfg.Cache.SearchCacheTTL = 10 * time.Minute
	}
	if cfg.Places.BaseURL == "" {
		cfg.Places.BaseURL = "https://places.googleapis.com"
	}
	if cfg.Places.RequestTimeout == 0 {
		cfg.Places.RequestTimeout = 30
	}
	if cfg.Places.MaxResults == 0 {
		cfg.Places.MaxResults = 20
	}
	if cfg.Sampler.SpacingMeters == 0 {
		cfg.Sampler.SpacingMeters = 1000
	}
	if cfg.Sampler.MaxSamples == 0 {
		// Google's polyline size ceiling for search-along-route requests
		cfg.Sampler.MaxSamples = 500
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
