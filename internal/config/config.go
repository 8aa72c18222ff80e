package config

import (
	"errors"  // For validation errors
	"os"      // For environment variables
	"strconv" // For string to bool conversion
	"time"    // For token lifetime

	"github.com/go-sql-driver/mysql" // DSN builder for the MySQL driver
	"github.com/joho/godotenv"       // For loading .env files
)

// DefaultJWTTTL is the lifetime of issued access tokens
const DefaultJWTTTL = 12 * time.Hour

// Config holds the application configuration
type Config struct {
	AppPort      string        // Application port
	DBUser       string        // Database user
	DBPassword   string        // Database password
	DBHost       string        // Database host
	DBPort       string        // Database port
	DBName       string        // Database name
	JWTSecret    string        // JWT secret key
	JWTTTL       time.Duration // Access token lifetime, also the cookie max-age
	CookieSecure bool          // Mark the auth cookie Secure
	LogLevel     string        // Logrus level name
	IsProd       bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:      getenv("APP_PORT", "3018"),            // Application port
		DBUser:       os.Getenv("DB_USER"),                  // Database user
		DBPassword:   os.Getenv("DB_PASSWORD"),              // Database password
		DBHost:       getenv("DB_HOST", "127.0.0.1"),        // Database host
		DBPort:       getenv("DB_PORT", "3306"),             // Database port
		DBName:       os.Getenv("DB_NAME"),                  // Database name
		JWTSecret:    os.Getenv("JWT_SECRET"),               // JWT secret key, never defaulted
		JWTTTL:       getduration("JWT_TTL", DefaultJWTTTL), // Token lifetime
		CookieSecure: getbool("COOKIE_SECURE"),              // Secure cookie flag
		LogLevel:     getenv("LOG_LEVEL", "info"),           // Log level
		IsProd:       getbool("IS_PROD"),                    // Is production environment
	}
}

// Validate reports the first missing or malformed setting
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be a positive duration")
	}
	if c.DBHost == "" {
		return errors.New("DB_HOST is required")
	}
	if c.DBName == "" {
		return errors.New("DB_NAME is required")
	}
	if c.AppPort == "" {
		return errors.New("APP_PORT is required")
	}
	return nil
}

// DSN builds the MySQL Data Source Name.
// clientFoundRows makes UPDATE report matched rows, so ownership checks folded
// into the WHERE clause stay accurate when values are unchanged.
func (c *Config) DSN() string {
	dsn := mysql.NewConfig()
	dsn.User = c.DBUser
	dsn.Passwd = c.DBPassword
	dsn.Net = "tcp"
	dsn.Addr = c.DBHost + ":" + c.DBPort
	dsn.DBName = c.DBName
	dsn.ParseTime = true
	dsn.ClientFoundRows = true
	return dsn.FormatDSN()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

func getduration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0 // Rejected by Validate
	}
	return d
}
