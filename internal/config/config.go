package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port             string
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	RedisAddress  string
	RedisPassword string

	RateLimitRequests      int
	RateLimitWindowSeconds int
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:             "3000",
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",

		RedisAddress: "localhost:6379",

		RateLimitRequests:      100,
		RateLimitWindowSeconds: 60,
	}

	envPort := os.Getenv("PORT")
	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envRedisAddress := os.Getenv("REDIS_ADDRESS")
	envRedisPassword := os.Getenv("REDIS_PASSWORD")
	envRateLimitRequests := os.Getenv("RATE_LIMIT_REQUESTS")
	envRateLimitWindowSeconds := os.Getenv("RATE_LIMIT_WINDOW_SECONDS")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if len(envRedisAddress) != 0 {
		env.RedisAddress = envRedisAddress
	}

	if len(envRedisPassword) != 0 {
		env.RedisPassword = envRedisPassword
	}

	if len(envRateLimitRequests) != 0 {
		requests, err := strconv.Atoi(envRateLimitRequests)
		if err != nil {
			return nil, err
		}
		env.RateLimitRequests = requests
	}

	if len(envRateLimitWindowSeconds) != 0 {
		window, err := strconv.Atoi(envRateLimitWindowSeconds)
		if err != nil {
			return nil, err
		}
		env.RateLimitWindowSeconds = window
	}

	return &env, nil
}
