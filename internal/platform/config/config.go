package config

import (
	"errors"
	"log"
	"time"

	"github.com/cefinvest/invest_backend/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// SeedOnStartup populates an empty database with the demo catalog,
	// customers, simulations and history.
	SeedOnStartup bool

	// AutoCreateCustomers makes a simulation against an unknown customer id
	// provision that customer instead of failing with 404.
	AutoCreateCustomers bool

	// RedisAddr enables the product catalog cache when non-empty.
	RedisAddr       string
	ProductCacheTTL time.Duration

	// Bcrypt hashes for the two fixed operator accounts. Outside production
	// an empty hash falls back to the demo credentials (admin/admin123,
	// user/user123); in production an empty hash disables that account and
	// startup fails when both are empty.
	AdminPasswordHash string
	UserPasswordHash  string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "2h")
	viper.SetDefault("JWT_ISSUER", "investment-api")
	viper.SetDefault("SEED_ON_STARTUP", true)
	viper.SetDefault("AUTO_CREATE_CUSTOMERS", true)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("PRODUCT_CACHE_TTL", "5m")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("USER_PASSWORD_HASH", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 2 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.SeedOnStartup = viper.GetBool("SEED_ON_STARTUP")
	cfg.AutoCreateCustomers = viper.GetBool("AUTO_CREATE_CUSTOMERS")

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cacheTTLStr := viper.GetString("PRODUCT_CACHE_TTL")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil {
		cacheTTL = 5 * time.Minute
		log.Printf("Warning: Invalid value for PRODUCT_CACHE_TTL ('%s'). Defaulting to %s.\n", cacheTTLStr, cacheTTL)
	}
	cfg.ProductCacheTTL = cacheTTL

	cfg.AdminPasswordHash = viper.GetString("ADMIN_PASSWORD_HASH")
	cfg.UserPasswordHash = viper.GetString("USER_PASSWORD_HASH")
	if cfg.IsProduction {
		if cfg.AdminPasswordHash == "" && cfg.UserPasswordHash == "" {
			return nil, errors.New("ADMIN_PASSWORD_HASH and USER_PASSWORD_HASH are both unset; no operator could log in")
		}
		if cfg.AdminPasswordHash == "" {
			log.Println("Warning: ADMIN_PASSWORD_HASH not set. Admin login is disabled.")
		}
		if cfg.UserPasswordHash == "" {
			log.Println("Warning: USER_PASSWORD_HASH not set. User login is disabled.")
		}
	} else {
		if cfg.AdminPasswordHash == "" {
			cfg.AdminPasswordHash = demoPasswordHash("admin123")
			log.Println("Warning: ADMIN_PASSWORD_HASH not set. Using demo credentials admin/admin123.")
		}
		if cfg.UserPasswordHash == "" {
			cfg.UserPasswordHash = demoPasswordHash("user123")
			log.Println("Warning: USER_PASSWORD_HASH not set. Using demo credentials user/user123.")
		}
	}

	return cfg, nil
}

// demoPasswordHash hashes one of the fixed demo passwords at startup so a
// fresh development instance has working logins, like the seeded demo data.
func demoPasswordHash(password string) string {
	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("Warning: failed to hash demo password: %v\n", err)
		return ""
	}
	return hash
}
