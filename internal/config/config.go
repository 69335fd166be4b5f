package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	CORS     CORSConfig
}

type AppConfig struct {
	HTTPPort string
}

type DatabaseConfig struct {
	// URI, when set, overrides the host/user/password parts entirely
	// (e.g. a mongodb+srv connection string).
	URI      string
	Host     string
	User     string
	Password string
	Name     string
}

type JWTConfig struct {
	AccessSecret    string
	AccessExpiresIn time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		HTTPPort: opt("PORT", "5000"),
	}

	cfg.Database = DatabaseConfig{
		URI:      strings.TrimSpace(os.Getenv("MONGODB_URI")),
		Host:     opt("DB_HOST", "localhost:27017"),
		User:     req("DB_USER"),
		Password: req("DB_PASS"),
		Name:     opt("DB_NAME", "job-seekers"),
	}

	cfg.JWT = JWTConfig{
		AccessSecret: req("ACCESS_TOKEN_SECRET"),
		// Token lifetime is fixed by the API contract: 1 hour, no refresh.
		AccessExpiresIn: time.Hour,
	}

	cfg.CORS = CORSConfig{
		AllowedOrigins: parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func parseOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return []string{"http://localhost:3000"}
	}
	return out
}
