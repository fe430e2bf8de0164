package config

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type Settings struct {
	HTTPAddr    string `mapstructure:"http_addr"`
	DatabaseDSN string `mapstructure:"database_dsn"`
	JWTSecret   string `mapstructure:"jwt_secret"`

	LogLevel      string `mapstructure:"log_level"`
	LogFile       string `mapstructure:"log_file"`
	LogMaxSizeMB  int    `mapstructure:"log_max_size_mb"`
	LogMaxBackups int    `mapstructure:"log_max_backups"`
	LogMaxAgeDays int    `mapstructure:"log_max_age_days"`

	CooldownHours   int  `mapstructure:"cooldown_hours"`
	EnforceCooldown bool `mapstructure:"enforce_cooldown"`

	RedisAddr       string `mapstructure:"redis_addr"`
	RedisPassword   string `mapstructure:"redis_password"`
	RedisDB         int    `mapstructure:"redis_db"`
	CacheTTLMinutes int    `mapstructure:"cache_ttl_minutes"`

	StorageDriver  string `mapstructure:"storage_driver"`
	StoragePath    string `mapstructure:"storage_path"`
	MinioEndpoint  string `mapstructure:"minio_endpoint"`
	MinioAccessKey string `mapstructure:"minio_access_key"`
	MinioSecretKey string `mapstructure:"minio_secret_key"`
	MinioBucket    string `mapstructure:"minio_bucket"`
	MinioUseSSL    bool   `mapstructure:"minio_use_ssl"`

	ReportRatePerMinute int      `mapstructure:"report_rate_per_minute"`
	CORSAllowedOrigins  []string `mapstructure:"cors_allowed_origins"`
}

func (s Settings) CooldownWindow() time.Duration {
	return time.Duration(s.CooldownHours) * time.Hour
}

func (s Settings) CacheTTL() time.Duration {
	return time.Duration(s.CacheTTLMinutes) * time.Minute
}

var (
	mu      sync.RWMutex
	current *Settings
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_max_size_mb", 100)
	v.SetDefault("log_max_backups", 5)
	v.SetDefault("log_max_age_days", 30)
	v.SetDefault("cooldown_hours", 48)
	v.SetDefault("enforce_cooldown", false)
	v.SetDefault("cache_ttl_minutes", 10)
	v.SetDefault("storage_driver", "none")
	v.SetDefault("storage_path", "./data")
	v.SetDefault("minio_bucket", "relatorios")
	v.SetDefault("report_rate_per_minute", 30)
	v.SetDefault("cors_allowed_origins", []string{"http://localhost:3000"})
}

// LoadSettings lê configs/config.yaml (opcional) e sobrepõe com variáveis de ambiente.
func LoadSettings() (Settings, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	for _, key := range []string{"database_dsn", "jwt_secret", "log_file", "redis_addr", "redis_password",
		"minio_endpoint", "minio_access_key", "minio_secret_key"} {
		_ = v.BindEnv(key, strings.ToUpper(key))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, err
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, err
	}

	mu.Lock()
	current = &s
	mu.Unlock()
	return s, nil
}

// Current devolve as Settings carregadas; sem LoadSettings prévio usa apenas defaults e ambiente.
func Current() Settings {
	mu.RLock()
	s := current
	mu.RUnlock()
	if s != nil {
		return *s
	}
	loaded, err := LoadSettings()
	if err != nil {
		Logger.WithError(err).Warn("Failed to load settings, using defaults")
		v := viper.New()
		setDefaults(v)
		_ = v.Unmarshal(&loaded)
	}
	return loaded
}
