package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// OnboardingConfig tunes the tenant onboarding wizard behavior.
type OnboardingConfig struct {
	// SlugCheckDebounceMS is the debounce window for slug availability checks.
	SlugCheckDebounceMS int `mapstructure:"slug_check_debounce_ms"`
	// DefaultRetentionDays seeds the settings step of a new wizard session.
	DefaultRetentionDays int `mapstructure:"default_retention_days"`
	// DefaultRegion seeds the settings step of a new wizard session.
	DefaultRegion string `mapstructure:"default_region"`
}

type AuditConfig struct {
	// ExportPageSize caps a single CSV export query.
	ExportPageSize int `mapstructure:"export_page_size"`
}
