package config

import (
	"log"
	"os"
	"strings"
)

type Env struct {
	AppAddr            string
	GinMode            string
	DBDSN              string
	JWTSecret          string
	ServiceSecret      string
	SubscanAPIURL      string
	SubscanAPIKey      string
	RedisAddr          string
	RedisPassword      string
	CORSAllowedOrigins []string
}

// LoadEnv reads configuration from the process environment. A missing token
// signing secret is a fatal startup condition.
func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/jobboard?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	}

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET required")
	}

	subscanURL := strings.TrimSpace(os.Getenv("SUBSCAN_API_URL"))
	if subscanURL == "" {
		subscanURL = "https://polkadot.api.subscan.io/api/v2/scan/search"
	}

	origins := []string{}
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	return Env{
		AppAddr:            appAddr,
		GinMode:            strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN:              dsn,
		JWTSecret:          jwtSecret,
		ServiceSecret:      strings.TrimSpace(os.Getenv("SERVICE_SECRET")),
		SubscanAPIURL:      subscanURL,
		SubscanAPIKey:      strings.TrimSpace(os.Getenv("SUBSCAN_API_KEY")),
		RedisAddr:          strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		CORSAllowedOrigins: origins,
	}
}
