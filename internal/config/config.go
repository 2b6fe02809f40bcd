package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Business BusinessConfig `toml:"business"`
}

// ServerConfig настройки HTTP сервера
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
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BusinessConfig параметры бизнеса.
// Сервис обслуживает один бизнес: default_owner_id подставляется на HTTP
// границе, когда клиент не указал ownerId явно. Рабочие часы и шаг сетки
// слотов — read-only конфигурация процесса.
type BusinessConfig struct {
	DefaultOwnerID         string `toml:"default_owner_id"`
	OpeningTime            string `toml:"opening_time"`
	ClosingTime            string `toml:"closing_time"`
	SlotGranularityMinutes int    `toml:"slot_granularity_minutes"`
	Timezone               string `toml:"timezone"`
}

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.Business.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults подставляет рабочие часы и шаг сетки по умолчанию,
// если секция [business] их не задает
func (c *BusinessConfig) applyDefaults() {
	if c.OpeningTime == "" {
		c.OpeningTime = domain.DefaultOpeningTime
	}
	if c.ClosingTime == "" {
		c.ClosingTime = domain.DefaultClosingTime
	}
	if c.SlotGranularityMinutes == 0 {
		c.SlotGranularityMinutes = domain.DefaultSlotGranularityMinutes
	}
}

// DSN возвращает строку подключения к postgres
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// OpeningTimeString возвращает время открытия как types.TimeString
func (c *BusinessConfig) OpeningTimeString() (types.TimeString, error) {
	return types.NewTimeStringFromString(c.OpeningTime)
}

// ClosingTimeString возвращает время закрытия как types.TimeString
func (c *BusinessConfig) ClosingTimeString() (types.TimeString, error) {
	return types.NewTimeStringFromString(c.ClosingTime)
}

// Location возвращает таймзону бизнеса.
// Все даты запросов интерпретируются в этой зоне, а не в зоне клиента.
func (c *BusinessConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q: %v", ErrInvalidConfig, c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}

	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}

	open, err := c.Business.OpeningTimeString()
	if err != nil {
		return fmt.Errorf("%w: business.opening_time: %v", ErrInvalidConfig, err)
	}
	close, err := c.Business.ClosingTimeString()
	if err != nil {
		return fmt.Errorf("%w: business.closing_time: %v", ErrInvalidConfig, err)
	}
	if !open.IsBefore(close) {
		return fmt.Errorf("%w: business.opening_time must be before business.closing_time", ErrInvalidConfig)
	}

	if c.Business.SlotGranularityMinutes <= 0 {
		return fmt.Errorf("%w: business.slot_granularity_minutes must be positive", ErrInvalidConfig)
	}

	if _, err := c.Business.Location(); err != nil {
		return err
	}

	return nil
}
