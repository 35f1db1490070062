package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env                string
	MongoURI           string
	MongoDB            string
	ServerAddr         string
	PublicBaseURL      string
	FrontendOrigins    []string
	RateLimitContact   int
	RateLimitLogin     int
	RateLimitWindowSec int
	RedisURL           string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	CacheTTLSeconds    int
	JWTSecret          string
	AccessTTLMinutes   int
	BrevoAPIKey        string
	BrevoSenderEmail   string
	BrevoSenderName    string
	OwnerEmail         string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	mongoURI := getEnv("MONGO_URI", "mongodb://localhost:27017/portfolio")
	mongoDB := getEnv("MONGO_DB", "")
	if mongoDB == "" {
		mongoDB = mongoDBFromURI(mongoURI)
	}
	if mongoDB == "" {
		mongoDB = "portfolio"
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		MongoURI:           mongoURI,
		MongoDB:            mongoDB,
		ServerAddr:         getEnv("SERVER_ADDR", ":8080"),
		PublicBaseURL:      strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		FrontendOrigins:    splitOrigins(getEnv("FRONTEND_ORIGINS", "http://localhost:3000")),
		RateLimitContact:   getEnvInt("RATE_LIMIT_CONTACT", 5),
		RateLimitLogin:     getEnvInt("RATE_LIMIT_LOGIN", 10),
		RateLimitWindowSec: getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),
		RedisURL:           getEnv("REDIS_URL", ""),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		CacheTTLSeconds:    getEnvInt("CACHE_TTL_SECONDS", 60),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		AccessTTLMinutes:   getEnvInt("ACCESS_TTL_MINUTES", 1440),
		BrevoAPIKey:        getEnv("BREVO_API_KEY", ""),
		BrevoSenderEmail:   getEnv("BREVO_SENDER_EMAIL", ""),
		BrevoSenderName:    getEnv("BREVO_SENDER_NAME", ""),
		OwnerEmail:         getEnv("OWNER_EMAIL", ""),
	}

	return cfg, nil
}

func mongoDBFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	db := strings.Trim(u.Path, "/")
	if db == "" {
		return ""
	}
	// mongodb URIs sometimes include extra path segments; we only support the first one as db name.
	if idx := strings.Index(db, "/"); idx >= 0 {
		db = db[:idx]
	}
	return db
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			origins = append(origins, strings.TrimRight(p, "/"))
		}
	}
	return origins
}
