package config

import (
	"encoding/hex"
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Store drivers selectable via STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
	StoreDriverMemory   = "memory"
)

type PostgresCfg struct {
	User        string `env:"POSTGRES_USER" envDefault:"notifier"`
	Password    string `env:"POSTGRES_PASSWORD" envDefault:""`
	Host        string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	Database    string `env:"POSTGRES_DB" envDefault:"notifier"`
	SslMode     string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	PoolMaxConn int    `env:"POSTGRES_POOL_MAX_CONN" envDefault:"100"`
}

type MongoCfg struct {
	User        string `env:"MONGO_USER" envDefault:"notifier"`
	Password    string `env:"MONGO_PASSWORD" envDefault:""`
	Host        string `env:"MONGO_HOST" envDefault:"localhost"`
	Port        int    `env:"MONGO_PORT" envDefault:"27017"`
	MaxPoolSize int    `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
}

type RedisCfg struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type SendGridCfg struct {
	// APIKey left empty suppresses real delivery and logs instead.
	APIKey    string `env:"SENDGRID_API_KEY" envDefault:""`
	FromName  string `env:"MAIL_FROM_NAME" envDefault:"customer notifier"`
	FromEmail string `env:"MAIL_FROM_EMAIL" envDefault:"noreply@localhost"`
}

type NotifyCfg struct {
	OperatorEmail string `env:"NOTIFY_OPERATOR_EMAIL"`
	// Timezone is the operator's display zone for notification timestamps.
	Timezone string `env:"NOTIFY_TIMEZONE" envDefault:"Asia/Hong_Kong"`
	// CacheSealKey is an optional hex-encoded 32-byte key; when set, cached
	// customer records are encrypted at rest.
	CacheSealKey string `env:"NOTIFY_CACHE_SEAL_KEY" envDefault:""`
}

type Config struct {
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`
	PostgresCfg PostgresCfg
	MongoCfg    MongoCfg
	RedisCfg    RedisCfg
	SendGridCfg SendGridCfg
	NotifyCfg   NotifyCfg
}

func Build() (Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}
	return cfg, nil
}

// SealKey decodes the optional cache encryption key. Returns nil when the
// feature is disabled.
func (c NotifyCfg) SealKey() ([]byte, error) {
	if c.CacheSealKey == "" {
		return nil, nil
	}

	key, err := hex.DecodeString(c.CacheSealKey)
	if err != nil {
		return nil, fmt.Errorf("cache seal key is not valid hex - %w", err)
	}
	return key, nil
}
