// Package config loads service settings: built-in defaults, then an optional
// YAML file named by CONFIG_FILE, then environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"

	SchedulerRedis  = "redis"
	SchedulerMemory = "memory"

	NotifierKafka = "kafka"
	NotifierLog   = "log"
)

type Config struct {
	Env       string          `yaml:"env"`
	HTTP      HTTPConfig      `yaml:"http"`
	Log       LogConfig       `yaml:"log"`
	Storage   StorageConfig   `yaml:"storage"`
	DynamoDB  DynamoDBConfig  `yaml:"dynamodb"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Redis     RedisConfig     `yaml:"redis"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Payments  PaymentsConfig  `yaml:"payments"`
	Escrow    EscrowConfig    `yaml:"escrow"`
	Dispute   DisputeConfig   `yaml:"dispute"`
}

type HTTPConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// StorageConfig picks where escrows and disputes live. The memory driver
// also serves platform reads from memory and is meant for local runs.
type StorageConfig struct {
	Driver       string `yaml:"driver"`
	CreateTables bool   `yaml:"create_tables"`
}

type DynamoDBConfig struct {
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

type PostgresConfig struct {
	URL      string `yaml:"url"`
	MaxConns int32  `yaml:"max_conns"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SchedulerConfig struct {
	Driver       string        `yaml:"driver"`
	Key          string        `yaml:"key"`
	PollInterval time.Duration `yaml:"poll_interval"`
	Lease        time.Duration `yaml:"lease"`
	BatchSize    int           `yaml:"batch_size"`
}

type KafkaConfig struct {
	Driver     string   `yaml:"driver"`
	Brokers    []string `yaml:"brokers"`
	Topic      string   `yaml:"topic"`
	AdminTopic string   `yaml:"admin_topic"`
}

type PaymentsConfig struct {
	Provider         string `yaml:"provider"`
	StripeSecretKey  string `yaml:"stripe_secret_key"`
	MercadoPagoToken string `yaml:"mercadopago_access_token"`
	Sandbox          bool   `yaml:"sandbox"`
}

type EscrowConfig struct {
	FeeRate          string        `yaml:"fee_rate"`
	MinimumAmount    string        `yaml:"minimum_amount"`
	InspectionPeriod time.Duration `yaml:"inspection_period"`
	Currency         string        `yaml:"currency"`
}

type DisputeConfig struct {
	ArtisanResponse time.Duration `yaml:"artisan_response"`
}

func Default() Config {
	return Config{
		Env:  "development",
		HTTP: HTTPConfig{Port: 8080},
		Log:  LogConfig{MaxSizeMB: 100, MaxBackups: 5},
		Storage: StorageConfig{
			Driver: StorageDynamoDB,
		},
		DynamoDB: DynamoDBConfig{Region: "us-east-1", AccessKeyID: "local", SecretAccessKey: "local"},
		Postgres: PostgresConfig{MaxConns: 10},
		Redis:    RedisConfig{Addr: "localhost:6379"},
		Scheduler: SchedulerConfig{
			Driver:       SchedulerRedis,
			Key:          "trust:jobs",
			PollInterval: time.Second,
			Lease:        30 * time.Second,
			BatchSize:    50,
		},
		Kafka: KafkaConfig{
			Driver:     NotifierLog,
			Topic:      "trust.notifications",
			AdminTopic: "trust.admin-notifications",
		},
		Payments: PaymentsConfig{Provider: "stripe"},
		Escrow: EscrowConfig{
			FeeRate:          "0.05",
			MinimumAmount:    "500",
			InspectionPeriod: 72 * time.Hour,
			Currency:         "EUR",
		},
		Dispute: DisputeConfig{ArtisanResponse: 48 * time.Hour},
	}
}

// Load reads .env if present, overlays CONFIG_FILE and then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Env, "ENV")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.File, "LOG_FILE")
	setString(&cfg.Storage.Driver, "STORAGE_DRIVER")
	setString(&cfg.DynamoDB.Region, "AWS_REGION")
	setString(&cfg.DynamoDB.Endpoint, "DYNAMODB_ENDPOINT")
	setString(&cfg.DynamoDB.AccessKeyID, "AWS_ACCESS_KEY_ID")
	setString(&cfg.DynamoDB.SecretAccessKey, "AWS_SECRET_ACCESS_KEY")
	setString(&cfg.Postgres.URL, "DATABASE_URL")
	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.Scheduler.Driver, "SCHEDULER_DRIVER")
	setString(&cfg.Kafka.Driver, "NOTIFIER_DRIVER")
	setString(&cfg.Kafka.Topic, "KAFKA_TOPIC")
	setString(&cfg.Kafka.AdminTopic, "KAFKA_ADMIN_TOPIC")
	setString(&cfg.Payments.Provider, "PAYMENT_PROVIDER")
	setString(&cfg.Payments.StripeSecretKey, "STRIPE_SECRET_KEY")
	setString(&cfg.Payments.MercadoPagoToken, "MERCADOPAGO_ACCESS_TOKEN")
	setString(&cfg.Escrow.FeeRate, "ESCROW_FEE_RATE")
	setString(&cfg.Escrow.MinimumAmount, "ESCROW_MINIMUM_AMOUNT")
	setString(&cfg.Escrow.Currency, "ESCROW_CURRENCY")

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = strings.Split(v, ",")
	}

	var err error
	if cfg.HTTP.Port, err = envInt("PORT", cfg.HTTP.Port); err != nil {
		return err
	}
	if cfg.Redis.DB, err = envInt("REDIS_DB", cfg.Redis.DB); err != nil {
		return err
	}
	if cfg.Storage.CreateTables, err = envBool("DYNAMODB_CREATE_TABLES", cfg.Storage.CreateTables); err != nil {
		return err
	}
	if cfg.Payments.Sandbox, err = envBool("PAYMENT_GATEWAY_MOCK", cfg.Payments.Sandbox); err != nil {
		return err
	}
	if cfg.Escrow.InspectionPeriod, err = envDuration("ESCROW_INSPECTION_PERIOD", cfg.Escrow.InspectionPeriod); err != nil {
		return err
	}
	if cfg.Dispute.ArtisanResponse, err = envDuration("DISPUTE_RESPONSE_WINDOW", cfg.Dispute.ArtisanResponse); err != nil {
		return err
	}
	if cfg.Scheduler.PollInterval, err = envDuration("SCHEDULER_POLL_INTERVAL", cfg.Scheduler.PollInterval); err != nil {
		return err
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDynamoDB, StorageMemory:
	default:
		return fmt.Errorf("storage.driver must be %s or %s, got %q", StorageDynamoDB, StorageMemory, c.Storage.Driver)
	}
	switch c.Scheduler.Driver {
	case SchedulerRedis, SchedulerMemory:
	default:
		return fmt.Errorf("scheduler.driver must be %s or %s, got %q", SchedulerRedis, SchedulerMemory, c.Scheduler.Driver)
	}
	switch c.Kafka.Driver {
	case NotifierKafka:
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers is required when the kafka notifier is enabled")
		}
	case NotifierLog:
	default:
		return fmt.Errorf("kafka.driver must be %s or %s, got %q", NotifierKafka, NotifierLog, c.Kafka.Driver)
	}
	if c.Storage.Driver == StorageDynamoDB && c.Postgres.URL == "" {
		return fmt.Errorf("postgres.url (DATABASE_URL) is required with the %s storage driver", StorageDynamoDB)
	}
	if _, err := decimal.NewFromString(c.Escrow.FeeRate); err != nil {
		return fmt.Errorf("escrow.fee_rate: %w", err)
	}
	if _, err := decimal.NewFromString(c.Escrow.MinimumAmount); err != nil {
		return fmt.Errorf("escrow.minimum_amount: %w", err)
	}
	if c.Escrow.InspectionPeriod <= 0 || c.Dispute.ArtisanResponse <= 0 {
		return fmt.Errorf("escrow.inspection_period and dispute.artisan_response must be positive")
	}
	return nil
}

// FeeRate and MinimumAmount are validated by Load.
func (c EscrowConfig) FeeRateDecimal() decimal.Decimal {
	return decimal.RequireFromString(c.FeeRate)
}

func (c EscrowConfig) MinimumAmountDecimal() decimal.Decimal {
	return decimal.RequireFromString(c.MinimumAmount)
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
