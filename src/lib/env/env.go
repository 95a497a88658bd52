package env

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Environment string

const (
	Production  Environment = "production"
	Development Environment = "development"
)

func Get() Environment {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		panic("No environment var is set")
	}

	switch environment {
	case "production":
		return Production
	case "development":
		return Development
	default:
		panic("Invalid environment is set")
	}
}

func MustGet(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("No env variable found for key %s", key))
	}

	return val
}

func GetOrDefault(key string, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}

	return val
}

// GetSeconds reads a whole number of seconds. Unset or unparseable values
// fall back.
func GetSeconds(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}

	seconds, err := strconv.Atoi(val)
	if err != nil || seconds <= 0 {
		return fallback
	}

	return time.Duration(seconds) * time.Second
}

func GetBool(key string) bool {
	val, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && val
}
