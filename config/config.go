package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Storage      StorageConfig      `mapstructure:"storage"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	JWT          JWTConfig          `mapstructure:"jwt"`
	AES          AESConfig          `mapstructure:"aes"`
	Log          LogConfig          `mapstructure:"log"`
	Payment      PaymentConfig      `mapstructure:"payment"`
	Gateway      GatewayConfig      `mapstructure:"gateway"`
	Webhook      WebhookConfig      `mapstructure:"webhook"`
	Notification NotificationConfig `mapstructure:"notification"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// IsProduction reports whether non-production entrypoints must stay disabled.
func (s ServerConfig) IsProduction() bool {
	return s.Mode == "release"
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"` // postgres, memory
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// PaymentConfig controls deposit and checkout behaviour.
//
// TestMode clamps the amount shown on QR codes to TestAmountCap so that
// non-production environments never ask for real large transfers. The
// ledger is always credited with the original amount.
type PaymentConfig struct {
	TestMode           bool              `mapstructure:"test_mode"`
	TestAmountCap      int64             `mapstructure:"test_amount_cap"`
	AmountTolerance    int64             `mapstructure:"amount_tolerance"`
	DepositExpiry      time.Duration     `mapstructure:"deposit_expiry"`
	BankTransferExpiry time.Duration     `mapstructure:"bank_transfer_expiry"`
	QRTemplate         string            `mapstructure:"qr_template"`
	DefaultBank        BankAccountConfig `mapstructure:"default_bank"`
}

type BankAccountConfig struct {
	BankCode      string `mapstructure:"bank_code"`
	AccountNumber string `mapstructure:"account_number"`
	AccountName   string `mapstructure:"account_name"`
}

type GatewayConfig struct {
	VNPay VNPayConfig `mapstructure:"vnpay"`
}

type VNPayConfig struct {
	TmnCode    string        `mapstructure:"tmn_code"`
	HashSecret string        `mapstructure:"hash_secret"`
	PayURL     string        `mapstructure:"pay_url"`
	ReturnURL  string        `mapstructure:"return_url"`
	Expiry     time.Duration `mapstructure:"expiry"`
}

type WebhookConfig struct {
	APIKeyHash string        `mapstructure:"api_key_hash"` // argon2id encoded; empty disables the check
	ReceiptTTL time.Duration `mapstructure:"receipt_ttl"`
}

type NotificationConfig struct {
	URL     string        `mapstructure:"url"` // empty = log only
	Secret  string        `mapstructure:"secret"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from file and environment variables.
// A local .env file is loaded first without overriding the real environment.
// Environment variables override file values. Prefix: MPW_ (Marketplace Wallet).
// Nested keys use underscore: MPW_DATABASE_HOST, MPW_PAYMENT_TEST_MODE, etc.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("storage.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "marketplace")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "marketplace")
	v.SetDefault("aes.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("payment.test_mode", false)
	v.SetDefault("payment.test_amount_cap", 10000)
	v.SetDefault("payment.amount_tolerance", 1000)
	v.SetDefault("payment.deposit_expiry", "1h")
	v.SetDefault("payment.bank_transfer_expiry", "24h")
	v.SetDefault("payment.qr_template", "compact2")
	v.SetDefault("payment.default_bank.bank_code", "")
	v.SetDefault("payment.default_bank.account_number", "")
	v.SetDefault("payment.default_bank.account_name", "")
	v.SetDefault("gateway.vnpay.tmn_code", "")
	v.SetDefault("gateway.vnpay.hash_secret", "")
	v.SetDefault("gateway.vnpay.pay_url", "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html")
	v.SetDefault("gateway.vnpay.return_url", "")
	v.SetDefault("gateway.vnpay.expiry", "15m")
	v.SetDefault("webhook.api_key_hash", "")
	v.SetDefault("webhook.receipt_ttl", "72h")
	v.SetDefault("notification.url", "")
	v.SetDefault("notification.secret", "")
	v.SetDefault("notification.timeout", "10s")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: MPW_DATABASE_HOST -> database.host
	v.SetEnvPrefix("MPW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
