package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	envAPIURL         = "CONDUIT_API_URL"
	envDBPath         = "CONDUIT_DB_PATH"
	envPageSize       = "CONDUIT_PAGE_SIZE"
	envLogLevel       = "CONDUIT_LOG_LEVEL"
	envRequestTimeout = "CONDUIT_REQUEST_TIMEOUT"
)

// dotenvFile is loaded before the environment is read. Variables already set
// in the process environment win over the file.
var dotenvFile = ".env"

func parseEnv(cfg *Config) error {
	_ = godotenv.Load(dotenvFile)

	if v, ok := os.LookupEnv(envAPIURL); ok {
		cfg.APIURL = v
	}
	if v, ok := os.LookupEnv(envDBPath); ok {
		cfg.DBPath = v
	}
	if v, ok := os.LookupEnv(envLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(envPageSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envPageSize, err)
		}
		cfg.PageSize = n
	}
	if v, ok := os.LookupEnv(envRequestTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envRequestTimeout, err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}
