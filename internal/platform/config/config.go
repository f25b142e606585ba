package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const DefaultMaxUploadBytes int64 = 10 * 1024 * 1024

// Config agrupa toda la configuración del servicio.
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Server        ServerConfig        `mapstructure:"server"`
	Log           LogConfig           `mapstructure:"log"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Inference     InferenceConfig     `mapstructure:"inference"`
	Delays        DelaysConfig        `mapstructure:"delays"`
	Upload        UploadConfig        `mapstructure:"upload"`
	Notify        NotifyConfig        `mapstructure:"notify"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr devuelve ":<port>".
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"` // vacío => repos in-memory
}

type RedisConfig struct {
	Address    string        `mapstructure:"address"` // vacío => chat in-memory
	Password   string        `mapstructure:"password"`
	DB         int           `mapstructure:"db"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"` // vacío => filtro in-memory
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
	Index     string   `mapstructure:"index"`
}

// Enabled indica si hay al menos una dirección configurada.
func (e ElasticsearchConfig) Enabled() bool {
	for _, a := range e.Addresses {
		if strings.TrimSpace(a) != "" {
			return true
		}
	}
	return false
}

const (
	InferenceCanned = "canned"
	InferenceRemote = "remote"
)

type InferenceConfig struct {
	Mode    string        `mapstructure:"mode"`
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type DelaysConfig struct {
	ChatReply   time.Duration `mapstructure:"chat_reply"`
	Recognition time.Duration `mapstructure:"recognition"`
	Contact     time.Duration `mapstructure:"contact"`
}

type UploadConfig struct {
	MaxBytes int64 `mapstructure:"max_bytes"`
}

const (
	NotifyLog = "log"
	NotifySES = "ses"
	NotifySNS = "sns"
)

type NotifyConfig struct {
	Mode   string `mapstructure:"mode"`
	Region string `mapstructure:"region"` // región AWS para ses y sns
	From   string `mapstructure:"from"`
	To     string `mapstructure:"to"`

	SNSTopicARN string `mapstructure:"sns_topic_arn"`
}

// Default devuelve la configuración que usa el servicio sin archivo ni env.
func Default() Config {
	return Config{
		App: AppConfig{Name: "yield-ai"},
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{Level: "info", Format: "text"},
		Redis: RedisConfig{
			SessionTTL: 24 * time.Hour,
		},
		Elasticsearch: ElasticsearchConfig{Index: "breeds"},
		Inference: InferenceConfig{
			Mode:    InferenceCanned,
			Timeout: 10 * time.Second,
		},
		Delays: DelaysConfig{
			ChatReply:   1500 * time.Millisecond,
			Recognition: 2000 * time.Millisecond,
			Contact:     1500 * time.Millisecond,
		},
		Upload: UploadConfig{MaxBytes: DefaultMaxUploadBytes},
		Notify: NotifyConfig{Mode: NotifyLog},
	}
}

// Validate revisa combinaciones que no tienen sentido.
func (c Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}

	switch c.Inference.Mode {
	case InferenceCanned:
	case InferenceRemote:
		if strings.TrimSpace(c.Inference.BaseURL) == "" {
			errs = append(errs, errors.New("inference.base_url is required when inference.mode=remote"))
		}
	default:
		errs = append(errs, fmt.Errorf("inference.mode must be canned or remote, got %q", c.Inference.Mode))
	}

	if c.Delays.ChatReply < 0 || c.Delays.Recognition < 0 || c.Delays.Contact < 0 {
		errs = append(errs, errors.New("delays must not be negative"))
	}

	if c.Upload.MaxBytes <= 0 {
		errs = append(errs, errors.New("upload.max_bytes must be positive"))
	}

	switch c.Notify.Mode {
	case NotifyLog:
	case NotifySES:
		if strings.TrimSpace(c.Notify.Region) == "" || strings.TrimSpace(c.Notify.From) == "" || strings.TrimSpace(c.Notify.To) == "" {
			errs = append(errs, errors.New("notify.region, notify.from and notify.to are required when notify.mode=ses"))
		}
	case NotifySNS:
		if strings.TrimSpace(c.Notify.Region) == "" || strings.TrimSpace(c.Notify.SNSTopicARN) == "" {
			errs = append(errs, errors.New("notify.region and notify.sns_topic_arn are required when notify.mode=sns"))
		}
	default:
		errs = append(errs, fmt.Errorf("notify.mode must be log, ses or sns, got %q", c.Notify.Mode))
	}

	return errors.Join(errs...)
}
