package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load arma la configuración en este orden (el último gana):
// defaults -> config.yaml (., ./configs) -> config.<APP_ENVIRONMENT>.yaml -> env.
// Si existe un .env se carga antes para que sus valores actúen como env.
func Load() (Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if env := strings.TrimSpace(os.Getenv("APP_ENVIRONMENT")); env != "" {
		v.SetConfigName("config." + env)
		_ = v.MergeInConfig() // opcional
	}

	return unmarshal(v)
}

// LoadFile lee un archivo puntual (yaml) + env.
func LoadFile(path string) (Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}
	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	d := Default()
	v.SetDefault("app.name", d.App.Name)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("database.dsn", "")
	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.session_ttl", d.Redis.SessionTTL)
	v.SetDefault("elasticsearch.addresses", []string{})
	v.SetDefault("elasticsearch.username", "")
	v.SetDefault("elasticsearch.password", "")
	v.SetDefault("elasticsearch.index", d.Elasticsearch.Index)
	v.SetDefault("inference.mode", d.Inference.Mode)
	v.SetDefault("inference.base_url", "")
	v.SetDefault("inference.api_key", "")
	v.SetDefault("inference.timeout", d.Inference.Timeout)
	v.SetDefault("delays.chat_reply", d.Delays.ChatReply)
	v.SetDefault("delays.recognition", d.Delays.Recognition)
	v.SetDefault("delays.contact", d.Delays.Contact)
	v.SetDefault("upload.max_bytes", d.Upload.MaxBytes)
	v.SetDefault("notify.mode", d.Notify.Mode)
	v.SetDefault("notify.region", "")
	v.SetDefault("notify.sns_topic_arn", "")
	v.SetDefault("notify.from", "")
	v.SetDefault("notify.to", "")

	// SERVER_PORT, DATABASE_DSN, REDIS_ADDRESS, ...
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Nombres cortos heredados del deploy anterior.
	_ = v.BindEnv("server.port", "SERVER_PORT", "PORT")
	_ = v.BindEnv("database.dsn", "DATABASE_DSN", "DB_DSN")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("log.format", "LOG_FORMAT")
	_ = v.BindEnv("app.name", "APP_NAME")

	return v
}

func unmarshal(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Elasticsearch.Addresses = splitAddresses(cfg.Elasticsearch.Addresses)
	cfg.Inference.Mode = strings.ToLower(strings.TrimSpace(cfg.Inference.Mode))
	cfg.Notify.Mode = strings.ToLower(strings.TrimSpace(cfg.Notify.Mode))

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// splitAddresses acepta tanto listas yaml como "http://a:9200,http://b:9200" desde env.
func splitAddresses(in []string) []string {
	out := make([]string, 0, len(in))
	for _, a := range in {
		for _, part := range strings.Split(a, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func loadEnvFile() {
	paths := []string{".env"}
	if root := findProjectRoot(); root != "" {
		paths = append(paths, filepath.Join(root, ".env"))
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			// godotenv.Load no pisa variables ya definidas
			if err := godotenv.Load(p); err == nil {
				return
			}
		}
	}
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
