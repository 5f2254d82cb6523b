package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	APIBasePath    string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	// Refresh Token Config
	RefreshTokenExpiryDuration time.Duration

	// External OAuth Providers
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	// Tenant cache, disabled when RedisAddr is empty
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	TenantCacheTTL time.Duration

	// Attachment storage
	S3Bucket            string
	S3Region            string
	S3Endpoint          string
	AttachmentURLExpiry time.Duration

	CORSAllowedOrigins []string
	LoginRateLimit     string
	PlatformAPIKey     string
	PosthogAPIKey      string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.APIBasePath = strings.TrimRight(v.GetString("API_BASE_PATH"), "/")

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = durationOrDefault(v, "JWT_EXPIRY_DURATION", time.Hour)
	cfg.JWTIssuer = v.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "consultancy-admin"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}
	cfg.RefreshTokenExpiryDuration = durationOrDefault(v, "REFRESH_TOKEN_EXPIRY_DURATION", 7*24*time.Hour)

	cfg.GoogleClientID = v.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = v.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = v.GetString("GOOGLE_REDIRECT_URL")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in will not function.")
	}

	cfg.RedisAddr = v.GetString("REDIS_ADDR")
	cfg.RedisPassword = v.GetString("REDIS_PASSWORD")
	cfg.RedisDB = v.GetInt("REDIS_DB")
	cfg.TenantCacheTTL = durationOrDefault(v, "TENANT_CACHE_TTL", 5*time.Minute)

	cfg.S3Bucket = v.GetString("S3_BUCKET")
	cfg.S3Region = v.GetString("S3_REGION")
	cfg.S3Endpoint = v.GetString("S3_ENDPOINT")
	cfg.AttachmentURLExpiry = durationOrDefault(v, "ATTACHMENT_URL_EXPIRY", 15*time.Minute)
	if cfg.S3Bucket == "" {
		log.Println("Warning: S3_BUCKET not set. Contract uploads will fail.")
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.LoginRateLimit = v.GetString("LOGIN_RATE_LIMIT")
	cfg.PlatformAPIKey = v.GetString("PLATFORM_API_KEY")
	if cfg.PlatformAPIKey == "" {
		log.Println("Warning: PLATFORM_API_KEY not set. Tenant approval endpoints are disabled.")
	}
	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("API_BASE_PATH", "/api/v1")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "consultancy-admin")
	v.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("GOOGLE_REDIRECT_URL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("TENANT_CACHE_TTL", "5m")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_REGION", "us-east-2")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("ATTACHMENT_URL_EXPIRY", "15m")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("PLATFORM_API_KEY", "")
	v.SetDefault("POSTHOG_API_KEY", "")
}

// durationOrDefault parses key as a duration, logging and falling back to def when invalid.
func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
