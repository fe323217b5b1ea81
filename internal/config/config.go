package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
)

// Storage backend identifiers
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Storage       StorageConfig       `toml:"storage"`
	Database      DatabaseConfig      `toml:"database"`
	Slots         SlotsConfig         `toml:"slots"`
	Retention     RetentionConfig     `toml:"retention"`
	Calendar      CalendarConfig      `toml:"calendar"`
	SMTP          SMTPConfig          `toml:"smtp"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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

// StorageConfig выбор бэкенда хранилища бронирований
// Бэкенд выбирается один раз при старте, а не через runtime-фоллбэк
type StorageConfig struct {
	Backend string `toml:"backend"` // "postgres" или "memory"
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// SlotsConfig параметры слотов
type SlotsConfig struct {
	Capacity        int `toml:"capacity"`         // Мест в одном слоте
	DurationMinutes int `toml:"duration_minutes"` // Длительность записи
	StrideMinutes   int `toml:"stride_minutes"`   // Шаг между началами слотов
}

// RetentionConfig параметры очистки старых бронирований
type RetentionConfig struct {
	Months    int `toml:"months"`     // Хранить записи не старше N месяцев
	BatchSize int `toml:"batch_size"` // Максимум удалений за один запрос
}

// CalendarConfig настройки внешнего календаря
// Пустой calendar_id или api_key = календарь не сконфигурирован,
// сервис работает без него (degraded mode)
type CalendarConfig struct {
	BaseURL    string `toml:"base_url"`
	CalendarID string `toml:"calendar_id"`
	APIKey     string `toml:"api_key"`
	Timeout    int    `toml:"timeout"`  // секунды
	Timezone   string `toml:"timezone"` // IANA, например "Europe/Brussels"
}

// IsConfigured проверяет, что календарь можно использовать
func (c *CalendarConfig) IsConfigured() bool {
	return c.CalendarID != "" && c.APIKey != ""
}

// SMTPConfig настройки исходящей почты
// Пустой host = почта не сконфигурирована, уведомления только логируются
type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

// IsConfigured проверяет, что почту можно отправлять
func (c *SMTPConfig) IsConfigured() bool {
	return c.Host != "" && c.User != ""
}

// NotificationsConfig адреса уведомлений
type NotificationsConfig struct {
	ProviderEmail string `toml:"provider_email"` // Почта мастера для уведомлений о новых записях
	QueueSize     int    `toml:"queue_size"`     // Размер очереди диспетчера
	Workers       int    `toml:"workers"`        // Количество воркеров диспетчера
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// defaultConfig возвращает конфигурацию с дефолтными значениями
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        4000,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "sb-booking-service",
		},
		Storage: StorageConfig{
			Backend: StorageMemory,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Slots: SlotsConfig{
			Capacity:        domain.DefaultSlotCapacity,
			DurationMinutes: domain.DefaultSlotDurationMinutes,
			StrideMinutes:   domain.DefaultSlotStrideMinutes,
		},
		Retention: RetentionConfig{
			Months:    domain.DefaultRetentionMonths,
			BatchSize: 500,
		},
		Calendar: CalendarConfig{
			BaseURL:  "https://www.googleapis.com/calendar/v3",
			Timeout:  10,
			Timezone: "Europe/Brussels",
		},
		SMTP: SMTPConfig{
			Port: 587,
		},
		Notifications: NotificationsConfig{
			QueueSize: 64,
			Workers:   2,
		},
	}
}

// validate проверяет корректность конфигурации
func (c *Config) validate() error {
	if c.Storage.Backend != StoragePostgres && c.Storage.Backend != StorageMemory {
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	if c.Slots.Capacity < domain.MinSlotCapacity || c.Slots.Capacity > domain.MaxSlotCapacity {
		return fmt.Errorf("slots.capacity must be between %d and %d", domain.MinSlotCapacity, domain.MaxSlotCapacity)
	}

	if c.Slots.DurationMinutes < domain.MinSlotDurationMinutes || c.Slots.DurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("slots.duration_minutes must be between %d and %d",
			domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if c.Slots.StrideMinutes <= 0 {
		return fmt.Errorf("slots.stride_minutes must be positive")
	}

	// Шаг больше длительности оставил бы "дыры" между слотами
	if c.Slots.StrideMinutes > c.Slots.DurationMinutes {
		return fmt.Errorf("slots.stride_minutes must not exceed slots.duration_minutes")
	}

	if c.Retention.Months <= 0 {
		return fmt.Errorf("retention.months must be positive")
	}

	if c.Retention.BatchSize <= 0 {
		return fmt.Errorf("retention.batch_size must be positive")
	}

	if c.Notifications.QueueSize <= 0 || c.Notifications.Workers <= 0 {
		return fmt.Errorf("notifications.queue_size and notifications.workers must be positive")
	}

	return nil
}
