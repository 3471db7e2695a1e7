package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all the configuration for the application.
type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"production"`
	HTTPServer `yaml:"http_server"`
	Backend    `yaml:"backend"`
	Identity   `yaml:"identity"`
}

// HTTPServer holds settings for the server this service listens on.
type HTTPServer struct {
	Address      string        `yaml:"address" env:"HTTP_SERVER_ADDRESS" env-default:":8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_SERVER_READ_TIMEOUT" env-default:"30s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_SERVER_WRITE_TIMEOUT" env-default:"30s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"HTTP_SERVER_IDLE_TIMEOUT" env-default:"60s"`
}

// Backend holds settings for the upstream shortening/analytics API.
type Backend struct {
	BaseURL        string        `yaml:"base_url" env:"BACKEND_BASE_URL" env-default:"https://s.blatik-short.workers.dev"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"BACKEND_REQUEST_TIMEOUT" env-default:"10s"`
}

// Identity holds settings for resolving who the current visitor is.
type Identity struct {
	GoogleClientID   string        `yaml:"google_client_id" env:"GOOGLE_CLIENT_ID" env-default:""`
	AnonymousCookie  string        `yaml:"anonymous_cookie" env:"ANONYMOUS_COOKIE" env-default:"shortlink_uid"`
	CredentialCookie string        `yaml:"credential_cookie" env:"CREDENTIAL_COOKIE" env-default:"shortlink_session"`
	AnonymousTTL     time.Duration `yaml:"anonymous_ttl" env:"ANONYMOUS_TTL" env-default:"8760h"`
}

// MustLoad loads the application configuration.
func MustLoad() *Config {
	// Try to load .env file (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment variables")
	}

	var cfg Config

	// Check if config file path is specified
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/local.yml" // default path
	}

	// Try to load config file
	if _, err := os.Stat(configPath); err == nil {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("cannot read config: %s", err)
		}
	} else {
		// If config file doesn't exist, use environment variables only
		log.Println("Config file not found, using environment variables only")
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err)
		}
	}

	return &cfg
}
