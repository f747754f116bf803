package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
	DB       int

	// ReadyTTL is how long a room stays marked ready in the cache.
	ReadyTTL time.Duration
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxOpenConns int
}

type Breaker struct {
	FailureThreshold uint32
	Interval         time.Duration
	OpenTimeout      time.Duration
}

type Catalog struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// Limit is the page size of the single page requested.
	Limit int
	// Types is the content type allow-list (movie, tv-series, cartoon...).
	Types []string

	Breaker Breaker
}

type LockBackend = string

const (
	LockBackendRedis  LockBackend = "redis"
	LockBackendMemory LockBackend = "memory"
)

type Lock struct {
	Backend LockBackend
	TTL     time.Duration
}

type Config struct {
	HTTP     HTTPServer
	Redis    RedisCache
	Postgres Postgres
	Catalog  Catalog
	Lock     Lock

	LogFormat string
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	return FromEnv()
}

// FromEnv builds the config from the process environment only.
func FromEnv() *Config {
	cfg := &Config{
		HTTP:      *newHTTP(),
		Redis:     *newRedis(),
		Postgres:  *newPostgres(),
		Catalog:   *newCatalog(),
		Lock:      *newLock(),
		LogFormat: getenv("LOG_FORMAT", "text"),
	}

	log.Printf("%s backend config : %s\n", logtag, cfg)
	return cfg
}

// String masks secrets so the config can be logged.
func (c *Config) String() string {
	masked := *c
	masked.Redis.Password = mask(c.Redis.Password)
	masked.Postgres.Password = mask(c.Postgres.Password)
	masked.Catalog.APIKey = mask(c.Catalog.APIKey)
	return fmt.Sprintf("%+v", struct {
		HTTP      HTTPServer
		Redis     RedisCache
		Postgres  Postgres
		Catalog   Catalog
		Lock      Lock
		LogFormat string
	}(masked))
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "3000"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenvSecret("REDIS_PASSWORD", "shared"),
		DB:       getenvInt("REDIS_DB", 0),
		ReadyTTL: getenvDuration("REDIS_READY_TTL", 10*time.Minute),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:         getenv("DB_HOST", "localhost"),
		Port:         getenv("DB_PORT", "5432"),
		User:         getenv("DB_USER", "admin"),
		Password:     getenvSecret("DB_PASSWORD", "shared"),
		DBName:       getenv("DB_NAME", "movies"),
		SSLMode:      getenv("DB_SSLMODE", "disable"),
		MaxOpenConns: getenvInt("DB_MAX_OPEN_CONNS", 10),
	}
}

func newCatalog() *Catalog {
	return &Catalog{
		BaseURL: getenv("KINOPOISK_BASE_URL", "https://api.kinopoisk.dev"),
		APIKey:  getenvSecret("KINOPOISK_API_KEY", ""),
		Timeout: getenvDuration("KINOPOISK_TIMEOUT", 10*time.Second),
		Limit:   getenvInt("KINOPOISK_LIMIT", 15),
		Types:   getenvList("KINOPOISK_TYPES", []string{"movie"}),
		Breaker: Breaker{
			FailureThreshold: uint32(getenvInt("KINOPOISK_BREAKER_FAILURES", 5)),
			Interval:         getenvDuration("KINOPOISK_BREAKER_INTERVAL", time.Minute),
			OpenTimeout:      getenvDuration("KINOPOISK_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func newLock() *Lock {
	return &Lock{
		Backend: getenv("LOCK_BACKEND", LockBackendRedis),
		TTL:     getenvDuration("LOCK_TTL", 30*time.Second),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getenvSecret(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value\n", logtag, key)
		return defaultValue
	}
	fmt.Printf("%s %s is set\n", logtag, key)
	return val
}

func getenvInt(key string, defaultValue int) int {
	raw := getenv(key, strconv.Itoa(defaultValue))
	val, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("%s %s is not an integer (%q). Using default value %d\n", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return val
}

func getenvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getenv(key, defaultValue.String())
	val, err := time.ParseDuration(raw)
	if err != nil {
		fmt.Printf("%s %s is not a duration (%q). Using default value %s\n", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return val
}

func getenvList(key string, defaultValue []string) []string {
	raw := getenv(key, strings.Join(defaultValue, ","))
	out := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "***"
}
