// Package config загрузка конфигурации сервиса из config.toml
// Секреты (пароль БД, API-ключи провайдеров) могут быть переопределены
// переменными окружения, опционально загружаемыми из .env
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Database       DatabaseConfig       `toml:"database"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	PaymentService PaymentServiceConfig `toml:"payment_service"`
	MailService    MailServiceConfig    `toml:"mail_service"`
}

// ServerConfig настройки HTTP-сервера
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

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
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

// PaymentServiceConfig настройки платежного провайдера (payment intents)
type PaymentServiceConfig struct {
	URL      string `toml:"url"`
	APIKey   string `toml:"api_key"`
	Timeout  int    `toml:"timeout"`
	Currency string `toml:"currency"`
}

// MailServiceConfig настройки провайдера транзакционных писем
// Templates сопоставляет тип события с ID шаблона письма у провайдера
type MailServiceConfig struct {
	URL         string           `toml:"url"`
	APIKey      string           `toml:"api_key"`
	Timeout     int              `toml:"timeout"`
	SenderEmail string           `toml:"sender_email"`
	SenderName  string           `toml:"sender_name"`
	Templates   map[string]int64 `toml:"templates"`
}

// Load читает конфигурацию из TOML-файла и применяет переопределения из окружения
func Load(path string) (*Config, error) {
	// .env опционален - отсутствие файла не является ошибкой
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnvOverrides подставляет секреты из переменных окружения, если они заданы
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PDL_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("PDL_PAYMENT_API_KEY"); v != "" {
		cfg.PaymentService.APIKey = v
	}
	if v := os.Getenv("PDL_MAIL_API_KEY"); v != "" {
		cfg.MailService.APIKey = v
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port is required")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("config: metrics.path is required when metrics are enabled")
	}
	if c.PaymentService.Currency == "" {
		c.PaymentService.Currency = "eur"
	}
	return nil
}
