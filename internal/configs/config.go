package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"sdg-content-service/internal/constants"
)

// DBConfig holds the PostgreSQL connection settings.
type DBConfig struct {
	URL string
}

// ScraperConfig holds everything the scrape pipeline needs.
type ScraperConfig struct {
	BaseURL    string
	OutputPath string
	Delay      time.Duration
}

// HTTPConfig holds the REST server settings.
type HTTPConfig struct {
	Port           string
	AllowedOrigins []string
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Enabled bool
	Host    string
	Port    int
	Level   string
}

// AppConfig holds the whole application configuration. All three binaries
// share it; each composition root checks the variables it actually needs.
type AppConfig struct {
	AppName      string
	Scraper      ScraperConfig
	Database     DBConfig
	HTTP         HTTPConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig loads configuration from the environment, reading a .env file
// first when one is present.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		// Running without a .env file is fine; the environment may already
		// be populated.
		log.Printf("Info: no .env file loaded: %v", err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "sdg-content-service")

	cfg.Scraper.BaseURL = getEnvAsString("SDG_BASE_URL", constants.DefaultBaseURL)
	cfg.Scraper.OutputPath = getEnvAsString("OUTPUT_PATH", constants.DefaultOutputPath)
	delayMS := getEnvAsInt("SCRAPE_DELAY_MS", int(constants.DefaultScrapeDelay/time.Millisecond))
	cfg.Scraper.Delay = time.Duration(delayMS) * time.Millisecond

	cfg.Database.URL = os.Getenv("DATABASE_URL")

	cfg.HTTP.Port = getEnvAsString("HTTP_PORT", "8080")
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.HTTP.AllowedOrigins = []string{origins}
	} else {
		cfg.HTTP.AllowedOrigins = []string{"*"}
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: environment variable %s (value: %s) is not an int: %v. Using default: %d", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: environment variable %s (value: %s) is not a bool: %v. Using default: %t", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}
