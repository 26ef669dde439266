package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации приложения.
// Содержит параметры генерации мира, REST-сервера и шины событий.

type Config struct {
	World    WorldConfig    `yaml:"world"`
	Server   ServerConfig   `yaml:"server"`
	EventBus EventBusConfig `yaml:"eventbus"`
}

// WorldConfig параметры генерации мира
type WorldConfig struct {
	Width     int     `yaml:"width"`      // Размер сетки по X
	Depth     int     `yaml:"depth"`      // Размер сетки по Z
	Seed      int64   `yaml:"seed"`       // Сид генерации шума
	Scale     float64 `yaml:"scale"`      // Масштаб шума (сглаженность ландшафта)
	MaxHeight int     `yaml:"max_height"` // Максимальная высота поверхности
	BedrockY  int     `yaml:"bedrock_y"`  // Уровень неразрушаемого слоя
}

type ServerConfig struct {
	RESTPort int `yaml:"rest_port"`
}

type EventBusConfig struct {
	URL       string `yaml:"url"`
	Stream    string `yaml:"stream"`
	Retention int    `yaml:"retention_hours"`
}

// GetRESTPort возвращает REST API порт с поддержкой fallback значений
func (s *ServerConfig) GetRESTPort() int {
	return getPortWithEnvFallback(s.RESTPort, "SANDBOX_REST_PORT", 8088)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	if configPort > 0 {
		return configPort
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}

// Default возвращает конфигурацию по умолчанию: мир 20x20 из
// оригинального демо, бедрок на уровне -1.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Width:     20,
			Depth:     20,
			Seed:      3817,
			Scale:     0.05,
			MaxHeight: 8,
			BedrockY:  -1,
		},
	}
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV SANDBOX_CONFIG или возвращает дефолты.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("SANDBOX_CONFIG")
		if path == "" {
			return Default(), nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
