package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/suggestions"
	"github.com/m04kA/SMC-SessionService/pkg/types"
)

// ErrInvalidConfig возвращается, когда конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("invalid config")

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	BudgetService BudgetServiceConfig `toml:"budget_service"`
	Itinerary     ItineraryConfig     `toml:"itinerary"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BudgetServiceConfig настройки клиента сервиса остатка часов
type BudgetServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// ItineraryConfig настройки расчета маршрута
type ItineraryConfig struct {
	// SuggestionFloor самое раннее предлагаемое время выезда ("HH:MM")
	SuggestionFloor string `toml:"suggestion_floor"`
	// SuggestionOffsetsMinutes смещения альтернативных вариантов относительно основного
	SuggestionOffsetsMinutes []int `toml:"suggestion_offsets_minutes"`
	// DefaultRemainingHours используется, когда сервис остатка часов недоступен
	DefaultRemainingHours float64 `toml:"default_remaining_hours"`
}

// Load читает конфигурацию из TOML файла, заполняет значения по умолчанию и проверяет её
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse разбирает конфигурацию из строки (используется в тестах и утилитах)
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	offsets := make([]int, len(domain.DefaultSuggestionOffsetsMinutes))
	copy(offsets, domain.DefaultSuggestionOffsetsMinutes)

	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "session_service",
		},
		BudgetService: BudgetServiceConfig{
			Timeout: 5,
		},
		Itinerary: ItineraryConfig{
			SuggestionFloor:          domain.DefaultSuggestionFloor,
			SuggestionOffsetsMinutes: offsets,
			DefaultRemainingHours:    domain.DefaultRemainingHours,
		},
	}
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}

	if c.Logs.File == "" {
		return fmt.Errorf("%w: logs.file is required", ErrInvalidConfig)
	}

	if c.BudgetService.URL == "" {
		return fmt.Errorf("%w: budget_service.url is required", ErrInvalidConfig)
	}
	if _, err := url.ParseRequestURI(c.BudgetService.URL); err != nil {
		return fmt.Errorf("%w: budget_service.url: %v", ErrInvalidConfig, err)
	}

	if _, err := types.NewTimeStringFromString(c.Itinerary.SuggestionFloor); err != nil {
		return fmt.Errorf("%w: itinerary.suggestion_floor %q: %v", ErrInvalidConfig, c.Itinerary.SuggestionFloor, err)
	}

	if c.Itinerary.DefaultRemainingHours < 0 {
		return fmt.Errorf("%w: itinerary.default_remaining_hours must not be negative", ErrInvalidConfig)
	}

	return nil
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Suggestions возвращает настройки подсказок времени выезда
func (i ItineraryConfig) Suggestions() suggestions.Config {
	floor, err := types.NewTimeStringFromString(i.SuggestionFloor)
	if err != nil {
		floor = types.TimeString(domain.DefaultSuggestionFloor)
	}

	offsets := make([]int, len(i.SuggestionOffsetsMinutes))
	copy(offsets, i.SuggestionOffsetsMinutes)

	return suggestions.Config{
		Floor:          floor,
		OffsetsMinutes: offsets,
	}
}
