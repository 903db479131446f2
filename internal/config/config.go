package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shenikar/accident_map/internal/models"
	"gopkg.in/yaml.v3"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"5000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE" envDefault:"accident_map.log"`

	// Firebolt Config
	FireboltClientID     string `env:"FIREBOLT_CLIENT_ID"`
	FireboltClientSecret string `env:"FIREBOLT_CLIENT_SECRET"`
	FireboltEngine       string `env:"FIREBOLT_ENGINE_NAME"`
	FireboltDatabase     string `env:"FIREBOLT_DATABASE"`
	FireboltAccount      string `env:"FIREBOLT_ACCOUNT"`

	// Geocoder Config
	GeocoderURL       string        `env:"GEOCODER_URL" envDefault:"https://nominatim.openstreetmap.org"`
	GeocoderUserAgent string        `env:"GEOCODER_USER_AGENT" envDefault:"accident-map/1.0"`
	GeocoderTimeout   time.Duration `env:"GEOCODER_TIMEOUT" envDefault:"10s"`

	// Map Config
	MapboxToken     string `env:"MAPBOX_TOKEN"`
	DefaultLocation string `env:"DEFAULT_LOCATION" envDefault:"Long Beach"`

	// Статическая таблица мест из LOCATIONS_FILE
	Locations []models.Location

	// API Keys for authentication, пустой список отключает проверку
	APIKeys []string `env:"API_KEYS"`
}

type locationsFile struct {
	Locations []models.Location `yaml:"locations"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:             getEnv("HTTP_PORT", "5000"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFile:              getEnv("LOG_FILE", "accident_map.log"),
		FireboltClientID:     os.Getenv("FIREBOLT_CLIENT_ID"),
		FireboltClientSecret: os.Getenv("FIREBOLT_CLIENT_SECRET"),
		FireboltEngine:       os.Getenv("FIREBOLT_ENGINE_NAME"),
		FireboltDatabase:     os.Getenv("FIREBOLT_DATABASE"),
		FireboltAccount:      os.Getenv("FIREBOLT_ACCOUNT"),
		GeocoderURL:          getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
		GeocoderUserAgent:    getEnv("GEOCODER_USER_AGENT", "accident-map/1.0"),
		GeocoderTimeout:      getEnvAsDuration("GEOCODER_TIMEOUT", 10*time.Second),
		DefaultLocation:      getEnv("DEFAULT_LOCATION", "Long Beach"),
	}

	// Токен Mapbox читается один раз при старте: из окружения или из файла
	token, err := loadMapboxToken(os.Getenv("MAPBOX_TOKEN"), getEnv("MAPBOX_TOKEN_FILE", "mapbox_token.txt"))
	if err != nil {
		return nil, err
	}
	cfg.MapboxToken = token

	if path := os.Getenv("LOCATIONS_FILE"); path != "" {
		locations, err := loadLocations(path)
		if err != nil {
			return nil, err
		}
		cfg.Locations = locations
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		for _, key := range strings.Split(apiKeysStr, ",") {
			if key = strings.TrimSpace(key); key != "" {
				cfg.APIKeys = append(cfg.APIKeys, key)
			}
		}
	}

	return cfg, nil
}

func loadMapboxToken(envToken, path string) (string, error) {
	if token := strings.TrimSpace(envToken); token != "" {
		return token, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("MAPBOX_TOKEN is not set and token file %q is unreadable: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// loadLocations читает YAML файл со статическими границами мест
func loadLocations(path string) ([]models.Location, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read locations file: %w", err)
	}

	var file locationsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse locations file %q: %w", path, err)
	}

	for i, loc := range file.Locations {
		if strings.TrimSpace(loc.Name) == "" || strings.TrimSpace(loc.WKT) == "" {
			return nil, fmt.Errorf("locations file %q: entry %d must have name and wkt", path, i)
		}
		file.Locations[i].WKT = strings.TrimSpace(loc.WKT)
	}
	return file.Locations, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
