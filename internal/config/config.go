// Package config reads the configuration of the backend.
//
// Values are read, from highest to lowest priority, from environment
// variables, a .env file, a config.toml file and the built-in defaults.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// MinSecretLength is the minimum length of JWT_SECRET in release mode.
const MinSecretLength = 32

type Config struct {
	Port      string
	APIURL    *url.URL
	GinMode   string
	LogFormat string

	DBDriver models.Driver
	DBDSN    string

	JWTSecret string
	JWTTTL    time.Duration

	// RedisAddr enables the redis revocation store. If empty, revoked
	// sessions are kept in memory.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CORSAllowOrigins []string
	EnablePprof      bool
	ToastTTL         time.Duration
}

var defaults = map[string]any{
	"PORT":               "8080",
	"API_URL":            "http://localhost:8080",
	"GIN_MODE":           "release",
	"LOG_FORMAT":         "",
	"DB_DRIVER":          string(models.DriverSQLite),
	"DB_DSN":             "data/fintrack.db",
	"JWT_SECRET":         "",
	"JWT_TTL":            "24h",
	"REDIS_ADDR":         "",
	"REDIS_PASSWORD":     "",
	"REDIS_DB":           0,
	"CORS_ALLOW_ORIGINS": "",
	"ENABLE_PPROF":       false,
	"TOAST_TTL":          "5s",
}

// Load reads the configuration. The .env file and config.toml are optional.
//
// paths are the directories searched for config.toml. If none are given,
// the working directory is searched.
func Load(paths ...string) (Config, error) {
	// A missing .env file is fine
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.AutomaticEnv()

	apiURL, err := url.Parse(v.GetString("API_URL"))
	if err != nil {
		return Config{}, fmt.Errorf("API_URL is not a valid URL: %w", err)
	}

	return Config{
		Port:             v.GetString("PORT"),
		APIURL:           apiURL,
		GinMode:          v.GetString("GIN_MODE"),
		LogFormat:        v.GetString("LOG_FORMAT"),
		DBDriver:         models.Driver(v.GetString("DB_DRIVER")),
		DBDSN:            v.GetString("DB_DSN"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTTTL:           v.GetDuration("JWT_TTL"),
		RedisAddr:        v.GetString("REDIS_ADDR"),
		RedisPassword:    v.GetString("REDIS_PASSWORD"),
		RedisDB:          v.GetInt("REDIS_DB"),
		CORSAllowOrigins: strings.Fields(v.GetString("CORS_ALLOW_ORIGINS")),
		EnablePprof:      v.GetBool("ENABLE_PPROF"),
		ToastTTL:         v.GetDuration("TOAST_TTL"),
	}, nil
}

// Validate returns all configuration errors at once.
func (c Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New("PORT must be set"))
	}

	if c.APIURL == nil || c.APIURL.Scheme == "" || c.APIURL.Host == "" {
		errs = append(errs, errors.New("API_URL must be an absolute URL"))
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("GIN_MODE must be debug, release or test, not %q", c.GinMode))
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be human or json, not %q", c.LogFormat))
	}

	switch c.DBDriver {
	case models.DriverSQLite, models.DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be sqlite or postgres, not %q", c.DBDriver))
	}

	if c.DBDSN == "" {
		errs = append(errs, errors.New("DB_DSN must be set"))
	}

	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET must be set"))
	} else if c.GinMode == "release" && len(c.JWTSecret) < MinSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d characters long", MinSecretLength))
	}

	if c.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be a positive duration"))
	}

	if c.ToastTTL <= 0 {
		errs = append(errs, errors.New("TOAST_TTL must be a positive duration"))
	}

	return errors.Join(errs...)
}
