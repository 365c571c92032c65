package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	HTTPPort   string
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	SQLitePath string

	KafkaHost              string
	KafkaOrderChangedTopic string

	S3Bucket           string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	PhotoBaseURL       string

	LogLevel          string
	AutoAssignEnabled bool
}

// Validate checks the keys required by the selected driver and integrations.
func (c Config) Validate() error {
	var errList []error

	if c.HTTPPort == "" {
		errList = append(errList, errors.New("HTTP_PORT is required"))
	}

	switch c.DBDriver {
	case DriverPostgres:
		for key, value := range map[string]string{
			"DB_HOST": c.DBHost,
			"DB_PORT": c.DBPort,
			"DB_USER": c.DBUser,
			"DB_NAME": c.DBName,
		} {
			if value == "" {
				errList = append(errList, fmt.Errorf("%s is required for the postgres driver", key))
			}
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			errList = append(errList, errors.New("SQLITE_PATH is required for the sqlite driver"))
		}
	default:
		errList = append(errList, fmt.Errorf("DB_DRIVER %q is not supported", c.DBDriver))
	}

	if c.KafkaHost != "" && c.KafkaOrderChangedTopic == "" {
		errList = append(errList, errors.New("KAFKA_ORDER_CHANGED_TOPIC is required when KAFKA_HOST is set"))
	}
	if c.S3Bucket != "" && c.AWSRegion == "" {
		errList = append(errList, errors.New("AWS_REGION is required when S3_BUCKET is set"))
	}

	if _, err := c.SlogLevel(); err != nil {
		errList = append(errList, err)
	}

	return errors.Join(errList...)
}

// PostgresDSN renders the connection string for gorm's postgres driver.
func (c Config) PostgresDSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode,
	)
}

// KafkaBrokers splits KAFKA_HOST on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// SlogLevel parses LOG_LEVEL; empty means info.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}
