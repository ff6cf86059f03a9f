package config

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"gopkg.in/yaml.v3"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type AppConfig struct {
	App            AppSettings    `yaml:"app"`
	DatabaseConfig DatabaseConfig `yaml:"databaseConfig"`
	RedisConfig    RedisConfig    `yaml:"redisConfig"`
	S3Config       S3Config       `yaml:"s3Config"`
	JWT            JWTConfig      `yaml:"jwt"`
	Security       SecurityConfig `yaml:"security"`
	TTL            TTL            `yaml:"TTL"`
}

// LoadConfig : reads the yaml file, expanding ${VAR} references from the environment
func LoadConfig(path string) (*AppConfig, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseConfig(file)
}

func ParseConfig(data []byte) (*AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *AppConfig) applyDefaults() {
	if cfg.App.Env == "" {
		cfg.App.Env = EnvProduction
	}
	if cfg.App.ServerAddr == "" {
		cfg.App.ServerAddr = ":5000"
	}
	if len(cfg.App.AllowedOrigins) == 0 {
		cfg.App.AllowedOrigins = []string{"*"}
	}
	if cfg.JWT.AccessTokenTTL == "" {
		cfg.JWT.AccessTokenTTL = "15m"
	}
	if cfg.JWT.RefreshTokenTTL == "" {
		cfg.JWT.RefreshTokenTTL = "168h"
	}
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "medical-directory"
	}
	if cfg.Security.BcryptCost == 0 {
		cfg.Security.BcryptCost = 12
	}
	if cfg.TTL.DoctorsCache == "" {
		cfg.TTL.DoctorsCache = "5m"
	}
	if cfg.TTL.AvatarURL == "" {
		cfg.TTL.AvatarURL = "1h"
	}
}

func (cfg *AppConfig) validate() error {
	if cfg.JWT.AccessSecret == "" || cfg.JWT.RefreshSecret == "" {
		return fmt.Errorf("jwt.access_secret and jwt.refresh_secret are required")
	}
	if cfg.JWT.AccessSecret == cfg.JWT.RefreshSecret {
		return fmt.Errorf("jwt access and refresh secrets must differ")
	}
	for name, value := range map[string]string{
		"jwt.access_token_ttl":  cfg.JWT.AccessTokenTTL,
		"jwt.refresh_token_ttl": cfg.JWT.RefreshTokenTTL,
		"TTL.doctors_cache":     cfg.TTL.DoctorsCache,
		"TTL.avatar_url":        cfg.TTL.AvatarURL,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	return nil
}

func (cfg *AppConfig) IsDevelopment() bool {
	return cfg.App.Env == EnvDevelopment
}

// Duration : parses a value already checked by validate
func Duration(value string) time.Duration {
	d, _ := time.ParseDuration(value)
	return d
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:              serverAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server, router
}

// CORSMiddleware : lets the browser front-end call the API from its own origin
func CORSMiddleware(settings *AppSettings) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: settings.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	})
}

func SetupDatabase(cfg *DatabaseConfig) (*Database, error) {
	db, err := NewDatabaseConnection("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}
	if err := db.Configure(cfg); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
