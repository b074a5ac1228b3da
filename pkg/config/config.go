package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"ijuruhub/pkg/client"
	"ijuruhub/pkg/logger"
)

type Config struct {
	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	Port string

	RequestTimeout time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	CORSAllowedOrigins []string

	// BookingAutoConfirm decides whether a fresh public booking starts
	// confirmed (optimistic workflow) or pending (manual confirmation).
	BookingAutoConfirm bool

	SendGridAPIKey string
	EmailFrom      string
	EmailFromName  string
	AdminEmail     string
	SupportPhone   string
	SupportAddress string
	PaymentNumber  string

	KafkaBrokers     []string
	KafkaEventsTopic string

	Log    *logger.Logger
	Client *client.Client
}

func Load(serviceName string) *Config {
	cfg := &Config{
		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		Port: getEnvStr(EnvPort, DefaultPort),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		CORSAllowedOrigins: getEnvList(EnvCORSOrigins, []string{"*"}),

		BookingAutoConfirm: getEnvBool(EnvBookingAutoConfirm, false),

		SendGridAPIKey: getEnvStr(EnvSendGridAPIKey, ""),
		EmailFrom:      getEnvStr(EnvEmailFrom, ""),
		EmailFromName:  getEnvStr(EnvEmailFromName, DefaultBrandName),
		AdminEmail:     getEnvStr(EnvAdminEmail, DefaultAdminEmail),
		SupportPhone:   getEnvStr(EnvSupportPhone, DefaultSupportPhone),
		SupportAddress: getEnvStr(EnvSupportAddress, DefaultSupportAddress),
		PaymentNumber:  getEnvStr(EnvPaymentNumber, DefaultSupportPhone),

		KafkaBrokers:     getEnvList(EnvKafkaBrokers, nil),
		KafkaEventsTopic: getEnvStr(EnvKafkaEventsTopic, DefaultKafkaEventsTopic),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
		Client: client.New(),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) ConnectMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

func (cfg *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.MongoURI == "" {
		problems = append(problems, "MongoURI cannot be empty")
	} else if !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
		problems = append(problems, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", cfg.MongoURI))
	}
	if cfg.MongoDatabaseName == "" {
		problems = append(problems, "MongoDatabaseName cannot be empty")
	}
	if cfg.MongoConnTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
	}

	for name, d := range map[string]time.Duration{
		"RequestTimeout":  cfg.RequestTimeout,
		"ReadTimeout":     cfg.ReadTimeout,
		"WriteTimeout":    cfg.WriteTimeout,
		"IdleTimeout":     cfg.IdleTimeout,
		"ShutdownTimeout": cfg.ShutdownTimeout,
	} {
		if d <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive, got: %s", name, d))
		}
	}

	if cfg.MaxRequestSize <= 0 {
		problems = append(problems, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	if cfg.SendGridAPIKey != "" && cfg.EmailFrom == "" {
		problems = append(problems, "EmailFrom is required when SendGridAPIKey is set")
	}

	if len(problems) > 0 {
		msg := "Configuration validation failed:\n"
		for i, p := range problems {
			msg += fmt.Sprintf("  %d. %s\n", i+1, p)
		}
		return fmt.Errorf("%s", msg)
	}
	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"port", cfg.Port,
		"request_timeout", cfg.RequestTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"cors_allowed_origins", cfg.CORSAllowedOrigins,
		"booking_auto_confirm", cfg.BookingAutoConfirm,
		"sendgrid_key_set", cfg.SendGridAPIKey != "",
		"email_from", cfg.EmailFrom,
		"admin_email", cfg.AdminEmail,
		"kafka_brokers", cfg.KafkaBrokers,
		"kafka_events_topic", cfg.KafkaEventsTopic,
	)
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown(cfg.Log)
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// NormalizePage clamps a 1-indexed page number.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// NormalizeLimit clamps a page size into (0, DefaultPaginationLimit].
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	if limit > DefaultPaginationLimit {
		return DefaultPaginationLimit
	}
	return limit
}
