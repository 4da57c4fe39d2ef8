package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	Port            string
	LogLevel        logrus.Level
	OperatorWorkers int

	SessionTTL       time.Duration
	RecoveryTokenTTL time.Duration
	BcryptCost       int

	// AMQPURL is empty when recovery notifications should only be logged.
	AMQPURL      string
	AMQPExchange string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		Port:             "9446",
		LogLevel:         logrus.InfoLevel,
		OperatorWorkers:  1,
		SessionTTL:       720 * time.Hour,
		RecoveryTokenTTL: time.Hour,
		BcryptCost:       bcrypt.DefaultCost,
		AMQPExchange:     "finance",
	}

	overrideString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	overrideString(&env.PostgresPort, "POSTGRES_PORT")
	overrideString(&env.PostgresDB, "POSTGRES_DB")
	overrideString(&env.PostgresUsername, "POSTGRES_USERNAME")
	overrideString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	overrideString(&env.Port, "PORT")
	overrideString(&env.AMQPURL, "AMQP_URL")
	overrideString(&env.AMQPExchange, "AMQP_EXCHANGE")

	var errs []error

	if envLogLevel := os.Getenv("LOG_LEVEL"); len(envLogLevel) != 0 {
		level, err := logrus.ParseLevel(envLogLevel)
		if err != nil {
			errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
		} else {
			env.LogLevel = level
		}
	}

	errs = append(errs,
		overrideInt(&env.OperatorWorkers, "OPERATOR_WORKERS", 1, 64),
		overrideInt(&env.BcryptCost, "BCRYPT_COST", bcrypt.MinCost, bcrypt.MaxCost),
		overrideDuration(&env.SessionTTL, "SESSION_TTL"),
		overrideDuration(&env.RecoveryTokenTTL, "RECOVERY_TOKEN_TTL"),
	)

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &env, nil
}

// PostgresURL is the connection string shared by the server and the migrator.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func overrideString(target *string, key string) {
	if value := os.Getenv(key); len(value) != 0 {
		*target = value
	}
}

func overrideInt(target *int, key string, lo, hi int) error {
	value := os.Getenv(key)
	if len(value) == 0 {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if n < lo || n > hi {
		return fmt.Errorf("%s: %d is outside [%d, %d]", key, n, lo, hi)
	}
	*target = n
	return nil
}

func overrideDuration(target *time.Duration, key string) error {
	value := os.Getenv(key)
	if len(value) == 0 {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return fmt.Errorf("%s: must be positive", key)
	}
	*target = d
	return nil
}
