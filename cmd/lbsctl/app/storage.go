package app

import (
	"github.com/lbs-gateway/internal/config"
)

// databaseConfig - настройки PostgreSQL из DB_* переменных
func (o *GlobalOptions) databaseConfig() *config.DatabaseConfig {
	v := o.v
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")

	return &config.DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		DBName:       v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSLMODE"),
		MaxConns:     2,
		MaxIdleConns: 1,
	}
}

// redisConfig - настройки Redis из REDIS_* переменных
func (o *GlobalOptions) redisConfig() *config.RedisConfig {
	v := o.v
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)

	return &config.RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}
}
