package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
)

const (
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	StoreBackend  string

	CORSOrigins    []string
	TrustedProxies []string

	RateLimitPerMinute int
	RedisAddr          string
	RedisPassword      string
	RedisDB            int

	GinMode string
}

// Load reads configuration from the environment with defaults.
// Precedence: explicit env var > .env file (loaded by main) > default.
func Load() (Config, error) {
	cfg := Config{
		Port:               firstEnv([]string{"API_PORT", "PORT"}, "5000"),
		MongoURI:           mongoURI(),
		MongoDatabase:      getEnv("MONGO_DATABASE", "FairMarriage"),
		StoreBackend:       strings.ToLower(getEnv("STORE_BACKEND", BackendMongo)),
		CORSOrigins:        splitList(getEnv("CORS_ORIGINS", "*")),
		TrustedProxies:     splitList(os.Getenv("TRUSTED_PROXIES")),
		RateLimitPerMinute: parseInt("RATE_LIMIT_PER_MINUTE", 120),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:            parseInt("REDIS_DB", 0),
		GinMode:            os.Getenv("GIN_MODE"),
	}

	switch cfg.StoreBackend {
	case BackendMongo, BackendMemory:
	default:
		return Config{}, fmt.Errorf("config: STORE_BACKEND must be %q or %q, got %q", BackendMongo, BackendMemory, cfg.StoreBackend)
	}
	if cfg.RateLimitPerMinute < 0 {
		return Config{}, fmt.Errorf("config: RATE_LIMIT_PER_MINUTE must not be negative")
	}
	return cfg, nil
}

// mongoURI prefers MONGO_URI; otherwise DB_USER/DB_PASS build an Atlas URI.
func mongoURI() string {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri
	}
	user, pass := os.Getenv("DB_USER"), os.Getenv("DB_PASS")
	if user == "" || pass == "" {
		return "mongodb://127.0.0.1:27017"
	}
	cluster := getEnv("MONGO_CLUSTER", "cluster0.jlioc3w.mongodb.net")
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(user), url.QueryEscape(pass), cluster)
}

// RedactedMongoURI is MongoURI with any password removed, for logging.
func (c Config) RedactedMongoURI() string {
	u, err := url.Parse(c.MongoURI)
	if err != nil || u.User == nil {
		return c.MongoURI
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func firstEnv(keys []string, def string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return def
}

func parseInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid integer for %s: %s", key, v)
			return def
		}
		return n
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
