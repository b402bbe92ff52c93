package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	"github.com/m04kA/SMC-VoiceScheduler/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Ledger   LedgerConfig   `toml:"ledger"`
	Database DatabaseConfig `toml:"database"`
	Calendar CalendarConfig `toml:"calendar"`
	OpenAI   OpenAIConfig   `toml:"openai"`
	Business BusinessConfig `toml:"business"`
	Persona  PersonaConfig  `toml:"persona"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// LedgerConfig выбор бэкенда для booking ledger
// Поддерживаемые значения: "postgres", "calendar", "memory"
type LedgerConfig struct {
	Backend string `toml:"backend"`
}

// DatabaseConfig настройки подключения к PostgreSQL (backend = "postgres")
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

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// CalendarConfig настройки внешнего календарного сервиса (backend = "calendar")
type CalendarConfig struct {
	BaseURL    string `toml:"base_url"`
	CalendarID string `toml:"calendar_id"`
	APIToken   string `toml:"api_token"`
	Timeout    int    `toml:"timeout"` // секунды
}

// OpenAIConfig настройки LLM бэкенда для голосового ассистента
type OpenAIConfig struct {
	BaseURL     string  `toml:"base_url"`
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`
	Temperature float64 `toml:"temperature"`
	Timeout     int     `toml:"timeout"` // секунды
}

// BusinessConfig настройки бизнеса: название, таймзона, рабочие часы, параметры слотов
type BusinessConfig struct {
	Name                string `toml:"name"`
	Timezone            string `toml:"timezone"`
	OpenTime            string `toml:"open_time"`  // "09:00"
	CloseTime           string `toml:"close_time"` // "17:00"
	Weekdays            []int  `toml:"weekdays"`   // 0 = воскресенье ... 6 = суббота (time.Weekday)
	SlotDurationMinutes int    `toml:"slot_duration_minutes"`
	BufferMinutes       int    `toml:"buffer_minutes"`
	HorizonDays         int    `toml:"horizon_days"`
}

// PersonaConfig настройки персоны ассистента
type PersonaConfig struct {
	Name string `toml:"name"`
	Dir  string `toml:"dir"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    60,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "INFO",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "voice-scheduler",
		},
		Ledger: LedgerConfig{
			Backend: "memory",
		},
		Calendar: CalendarConfig{
			Timeout: 15,
		},
		OpenAI: OpenAIConfig{
			BaseURL:     "https://api.openai.com",
			Model:       "gpt-4o-mini",
			Temperature: 0.7,
			Timeout:     30,
		},
		Business: BusinessConfig{
			Name:                "Our Business",
			Timezone:            "UTC",
			OpenTime:            "09:00",
			CloseTime:           "17:00",
			Weekdays:            []int{1, 2, 3, 4, 5}, // понедельник - пятница
			SlotDurationMinutes: domain.DefaultDurationMinutes,
			BufferMinutes:       domain.DefaultBufferMinutes,
			HorizonDays:         domain.DefaultHorizonDays,
		},
		Persona: PersonaConfig{
			Name: "default",
			Dir:  "personas",
		},
	}
}

func (c *Config) validate() error {
	switch c.Ledger.Backend {
	case "postgres", "calendar", "memory":
	default:
		return fmt.Errorf("unknown ledger backend %q", c.Ledger.Backend)
	}

	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.Hours(); err != nil {
		return err
	}

	if c.Business.SlotDurationMinutes < domain.MinDurationMinutes ||
		c.Business.SlotDurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("slot_duration_minutes must be in [%d, %d]",
			domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}
	if c.Business.BufferMinutes < domain.MinBufferMinutes ||
		c.Business.BufferMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("buffer_minutes must be in [%d, %d]",
			domain.MinBufferMinutes, domain.MaxBufferMinutes)
	}
	if c.Business.HorizonDays <= 0 {
		return fmt.Errorf("horizon_days must be positive")
	}

	return nil
}

// Location возвращает таймзону бизнеса
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Business.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid business timezone %q: %w", c.Business.Timezone, err)
	}
	return loc, nil
}

// Hours собирает доменную модель рабочих часов из конфигурации
func (c *Config) Hours() (domain.BusinessHours, error) {
	open, err := types.NewTimeStringFromString(c.Business.OpenTime)
	if err != nil {
		return domain.BusinessHours{}, fmt.Errorf("invalid open_time: %w", err)
	}
	closeAt, err := types.NewTimeStringFromString(c.Business.CloseTime)
	if err != nil {
		return domain.BusinessHours{}, fmt.Errorf("invalid close_time: %w", err)
	}

	weekdays := make(map[time.Weekday]bool, len(c.Business.Weekdays))
	for _, d := range c.Business.Weekdays {
		if d < 0 || d > 6 {
			return domain.BusinessHours{}, fmt.Errorf("invalid weekday %d, expected 0-6", d)
		}
		weekdays[time.Weekday(d)] = true
	}

	hours := domain.BusinessHours{
		OpenLocal:      open,
		CloseLocal:     closeAt,
		ActiveWeekdays: weekdays,
	}
	if err := hours.Validate(); err != nil {
		return domain.BusinessHours{}, err
	}

	return hours, nil
}
