package configs

import (
	"net"
	"time"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// AppConfig HTTP sunucusu ve yönetim API'si ayarları.
type AppConfig struct {
	Env             string
	Host            string
	Port            string
	AdminKeyHash    string
	BodyLimit       int
	AutoMigrate     bool
	ShutdownTimeout time.Duration
	AllowOrigins    string
}

// LoadAppConfig ortam değişkenlerinden AppConfig oluşturur.
func LoadAppConfig() *AppConfig {
	return &AppConfig{
		Env:             GetEnv("APP_ENV", EnvDevelopment),
		Host:            GetEnv("APP_HOST", "0.0.0.0"),
		Port:            GetEnv("APP_PORT", "3000"),
		AdminKeyHash:    GetEnv("ADMIN_API_KEY_HASH", ""),
		BodyLimit:       GetEnvInt("APP_BODY_LIMIT_MB", 4) * 1024 * 1024,
		AutoMigrate:     GetEnvBool("DB_AUTO_MIGRATE", false),
		ShutdownTimeout: time.Duration(GetEnvInt("APP_SHUTDOWN_TIMEOUT_SEC", 10)) * time.Second,
		AllowOrigins:    GetEnv("APP_CORS_ORIGINS", "*"),
	}
}

// Addr dinlenecek host:port adresi.
func (c *AppConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == EnvProduction
}
