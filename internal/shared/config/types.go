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
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type EmailConfig struct {
	SMTPHost         string `mapstructure:"smtp_host"`
	SMTPPort         int    `mapstructure:"smtp_port"`
	SMTPUser         string `mapstructure:"smtp_user"`
	SMTPPassword     string `mapstructure:"smtp_password"`
	FromAddress      string `mapstructure:"from_address"`
	FromName         string `mapstructure:"from_name"`
	OperatorAddress  string `mapstructure:"operator_address"`
	NotifyNewRequest bool   `mapstructure:"notify_new_request"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Enabled  bool   `mapstructure:"enabled"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// OperatorConfig holds the server-side operator credential. KeyHash is a
// bcrypt hash of the operator key; the plaintext never lives in config.
type OperatorConfig struct {
	KeyHash string `mapstructure:"key_hash"`
}

// IdentityConfig configures the external identity provider adapter.
// In static mode, tokens maps opaque bearer tokens to account identifiers
// for development and testing.
type IdentityConfig struct {
	Mode   string            `mapstructure:"mode"`
	Tokens map[string]string `mapstructure:"tokens"`
}

type StorageConfig struct {
	RootDir string `mapstructure:"root_dir"`
}

type RateLimitConfig struct {
	SubmitPerMinute   int `mapstructure:"submit_per_minute"`
	SubmitPerHour     int `mapstructure:"submit_per_hour"`
	FeedbackPerMinute int `mapstructure:"feedback_per_minute"`
	FeedbackPerHour   int `mapstructure:"feedback_per_hour"`
}
