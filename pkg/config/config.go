package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// FallbackPolicy controls what a failed fetch leaves in the cache.
type FallbackPolicy string

const (
	// FallbackEmpty replaces the source's records with an empty set on failure.
	FallbackEmpty FallbackPolicy = "empty"
	// FallbackDemo replaces the source's records with canned demo data on failure.
	FallbackDemo FallbackPolicy = "demo"
)

// Config holds application configuration
type Config struct {
	Port        string
	Environment string

	// External sources
	ViolationsURL     string
	ViolationsWindow  int // trailing days of violations to request
	ViolationsMaxRows int
	DeedsSearchURL    string
	LisPendensWindow  int // trailing days of filings to request
	TaxBulletinURL    string

	// Refresh schedule, comma-separated HH:MM local times
	RefreshTimes string

	// Failure policy for fetchers
	Fallback FallbackPolicy

	// Admin surface
	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string

	// Security configuration
	AllowedOrigins string
	TrustedProxies string
}

// New creates a new configuration instance from environment variables
func New() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),

		ViolationsURL:     getEnv("VIOLATIONS_URL", "https://services1.arcgis.com/79kfd2K6fphECqU3/arcgis/rest/services/Code_Violations/FeatureServer/0/query"),
		ViolationsWindow:  getEnvAsInt("VIOLATIONS_WINDOW_DAYS", 90),
		ViolationsMaxRows: getEnvAsInt("VIOLATIONS_MAX_ROWS", 500),
		DeedsSearchURL:    getEnv("DEEDS_SEARCH_URL", "https://search.jeffersondeeds.com/InstrumentSearch.php"),
		LisPendensWindow:  getEnvAsInt("LIS_PENDENS_WINDOW_DAYS", 365),
		TaxBulletinURL:    getEnv("TAX_BULLETIN_URL", "https://jeffersoncountyclerk.org/delinquent/bulletin.pdf"),

		RefreshTimes: getEnv("REFRESH_TIMES", "08:00,14:00,22:00"),

		Fallback: FallbackPolicy(getEnv("FALLBACK_POLICY", string(FallbackEmpty))),

		JWTSecret:         getEnv("JWT_SECRET", ""),
		AdminUsername:     getEnv("ADMIN_USERNAME", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		AllowedOrigins: getEnv("ALLOWED_ORIGINS", ""),
		TrustedProxies: getEnv("TRUSTED_PROXIES", ""),
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasAdminCredentials returns true if the admin surface is configured
func (c *Config) HasAdminCredentials() bool {
	return c.AdminUsername != "" && c.AdminPasswordHash != "" && c.JWTSecret != ""
}

// DemoFallbackEnabled returns true if failed fetches should serve canned data
func (c *Config) DemoFallbackEnabled() bool {
	return c.Fallback == FallbackDemo
}

// RefreshTime is one wall-clock time of day at which a refresh fires.
type RefreshTime struct {
	Hour   int
	Minute int
}

// At anchors the refresh time to the date of t, in t's location.
func (r RefreshTime) At(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), r.Hour, r.Minute, 0, 0, t.Location())
}

// GetRefreshTimes parses the configured refresh times into hour/minute pairs.
// Malformed entries are skipped; an empty result falls back to the defaults.
func (c *Config) GetRefreshTimes() []RefreshTime {
	var times []RefreshTime
	for _, part := range strings.Split(c.RefreshTimes, ",") {
		hhmm := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(hhmm) != 2 {
			continue
		}
		hour, err1 := strconv.Atoi(hhmm[0])
		minute, err2 := strconv.Atoi(hhmm[1])
		if err1 != nil || err2 != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
			continue
		}
		times = append(times, RefreshTime{Hour: hour, Minute: minute})
	}
	if len(times) == 0 {
		return []RefreshTime{{Hour: 8}, {Hour: 14}, {Hour: 22}}
	}
	return times
}

// GetAllowedOrigins returns a slice of allowed CORS origins
func (c *Config) GetAllowedOrigins() []string {
	if c.AllowedOrigins == "" {
		return nil
	}
	return strings.Split(c.AllowedOrigins, ",")
}

// GetTrustedProxies returns a slice of trusted proxy IPs
func (c *Config) GetTrustedProxies() []string {
	if c.TrustedProxies == "" {
		return nil
	}
	return strings.Split(c.TrustedProxies, ",")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
