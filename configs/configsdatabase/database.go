package configsdatabase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"formbuilder.link/configs"
	"formbuilder.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig bağlantı ayarları.
type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        logger.LogLevel
}

// LoadDatabaseConfig DB_* ortam değişkenlerini okur.
func LoadDatabaseConfig() DatabaseConfig {
	logLevel := logger.Warn
	if configs.GetEnv("APP_ENV", configs.EnvDevelopment) != configs.EnvProduction {
		logLevel = logger.Info
	}
	if configs.GetEnvBool("DB_SILENT", false) {
		logLevel = logger.Silent
	}

	return DatabaseConfig{
		Driver:          strings.ToLower(configs.GetEnv("DB_DRIVER", DriverPostgres)),
		Host:            configs.GetEnv("DB_HOST", "localhost"),
		Port:            configs.GetEnv("DB_PORT", "5432"),
		User:            configs.GetEnv("DB_USER", "postgres"),
		Password:        configs.GetEnv("DB_PASSWORD", ""),
		Name:            configs.GetEnv("DB_NAME", "formbuilder"),
		SSLMode:         configs.GetEnv("DB_SSLMODE", "disable"),
		TimeZone:        configs.GetEnv("DB_TIMEZONE", "UTC"),
		Path:            configs.GetEnv("DB_PATH", "formbuilder.db"),
		MaxOpenConns:    configs.GetEnvInt("DB_MAX_OPEN_CONNS", 20),
		MaxIdleConns:    configs.GetEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: time.Duration(configs.GetEnvInt("DB_CONN_MAX_LIFETIME_MIN", 30)) * time.Minute,
		LogLevel:        logLevel,
	}
}

// Dialector sürücüye göre gorm dialector'ını döner.
func (c DatabaseConfig) Dialector() (gorm.Dialector, error) {
	switch c.Driver {
	case DriverPostgres:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode, c.TimeZone)
		return postgres.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(c.Path + "?_foreign_keys=on&_busy_timeout=5000"), nil
	default:
		return nil, fmt.Errorf("desteklenmeyen DB_DRIVER: %q", c.Driver)
	}
}

// InitDB yapılandırmaya göre veritabanı bağlantısını açar.
func InitDB() (*gorm.DB, error) {
	return Open(LoadDatabaseConfig())
}

// Open verilen ayarlarla bağlantı açar ve havuzu ayarlar.
func Open(cfg DatabaseConfig) (*gorm.DB, error) {
	dialector, err := cfg.Dialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(cfg.LogLevel),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		configslog.Log.Error("Veritabanına bağlanılamadı", zap.String("driver", cfg.Driver), zap.Error(err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Driver == DriverSQLite {
		// SQLite tek yazıcı ile çalışır, yazma işlemleri bu havuzda sıralanır
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	configslog.SLog.Infof("Veritabanı bağlantısı kuruldu (driver: %s)", cfg.Driver)
	return db, nil
}

// CloseDB bağlantı havuzunu kapatır.
func CloseDB(db *gorm.DB) error {
	if db == nil {
		return errors.New("kapatılacak veritabanı bağlantısı yok")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Veritabanı bağlantısı kapatıldı")
	return nil
}
