package config

import (
	"os"
	"strconv"
	"time"
)

// Redis captures cache connection settings. An empty URL disables the
// geocode cache entirely.
type Redis struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CacheTTL     time.Duration
}

// Server captures everything main needs to wire the service.
type Server struct {
	Addr          string
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string

	PostgresDSN string
	Redis       Redis

	EphemerisBaseURL string

	NominatimBaseURL   string
	NominatimUserAgent string

	ScanWorkers int
	LogLevel    string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("BODYGRAPH_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	nominatim := os.Getenv("NOMINATIM_BASE_URL")
	if nominatim == "" {
		nominatim = "https://nominatim.openstreetmap.org"
	}

	return Server{
		Addr:          addr,
		JWTSigningKey: jwtSigningKey,
		JWTIssuer:     envDefault("JWT_ISSUER", "bodygraph"),
		JWTAudience:   envDefault("JWT_AUDIENCE", "bodygraph-api"),
		PostgresDSN:   os.Getenv("POSTGRES_DSN"),
		Redis: Redis{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
			CacheTTL:     envDuration("GEOCODE_CACHE_TTL", 24*time.Hour),
		},
		EphemerisBaseURL:   envDefault("EPHEMERIS_BASE_URL", "http://localhost:8081"),
		NominatimBaseURL:   nominatim,
		NominatimUserAgent: envDefault("NOMINATIM_USER_AGENT", "bodygraph"),
		ScanWorkers:        envInt("SCAN_WORKERS", 4),
		LogLevel:           envDefault("LOG_LEVEL", "info"),
	}
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
