package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	LBS      LBSConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// LBSConfig - доступ к веб-сервису геолокации
type LBSConfig struct {
	Key     string
	BaseURL string
	Timeout time.Duration
	Headers map[string]string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	LookupCacheTTL   time.Duration
	DistrictCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled              bool
	ConsumerGroup        string
	BatchSize            int
	DistrictSyncEnabled  bool
	DistrictSyncInterval time.Duration
}

// Load читает конфигурацию из .env в рабочей директории и переменных окружения.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile читает конфигурацию из файла path; если файла нет,
// используются только переменные окружения.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		LBS: LBSConfig{
			Key:     v.GetString("LBS_KEY"),
			BaseURL: v.GetString("LBS_BASE_URL"),
			Timeout: time.Duration(v.GetInt("LBS_TIMEOUT")) * time.Second,
			Headers: parseHeaders(v.GetString("LBS_HEADERS")),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			LookupCacheTTL:   time.Duration(v.GetInt("LOOKUP_CACHE_TTL")) * time.Second,
			DistrictCacheTTL: time.Duration(v.GetInt("DISTRICT_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:              v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:        v.GetString("WORKER_CONSUMER_GROUP"),
			BatchSize:            v.GetInt("WORKER_BATCH_SIZE"),
			DistrictSyncEnabled:  v.GetBool("DISTRICT_SYNC_ENABLED"),
			DistrictSyncInterval: time.Duration(v.GetInt("DISTRICT_SYNC_INTERVAL")) * time.Second,
		},
	}

	if cfg.LBS.Key == "" {
		return nil, fmt.Errorf("LBS_KEY is required")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("LBS_BASE_URL", "https://apis.map.qq.com")
	v.SetDefault("LBS_TIMEOUT", 10)
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("LOOKUP_CACHE_TTL", 3600)
	v.SetDefault("DISTRICT_CACHE_TTL", 86400)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("WORKER_CONSUMER_GROUP", "lbs-geocode-workers")
	v.SetDefault("WORKER_BATCH_SIZE", 20)
	v.SetDefault("DISTRICT_SYNC_ENABLED", true)
	v.SetDefault("DISTRICT_SYNC_INTERVAL", 86400)
}

// parseHeaders разбирает строку вида "X-A=1,X-B=2"
func parseHeaders(s string) map[string]string {
	if s == "" {
		return nil
	}
	result := make(map[string]string)
	for _, p := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			continue
		}
		result[name] = strings.TrimSpace(value)
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
