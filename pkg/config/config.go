package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/itsDrac/nft-web/pkg/utils"
)

const (
	// Backend base address used when API_URL is not set
	DefaultAPIURL = "http://localhost:8000"

	// Session cookie and the keys stored in it
	SessionName   = "nft-session"
	SessionUserID = "user_id"

	// Query parameter carrying the current user across pages
	UserIDParam = "user_id"

	// Form field holding the CSRF token
	CSRFFieldName = "csrf_token"

	// Context Keys
	SessionContextKey = "session"
	RequestIDKey      = "X-Request-ID"

	keyLength = 32
)

// Config holds everything read from the environment at startup.
type Config struct {
	Host         string
	Port         string
	APIURL       string
	Env          string
	SessionKey   []byte
	CSRFKey      []byte
	CookieSecure bool
	CORSOrigins  []string
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads the configuration. Missing keys are generated so development
// works without setup; they change on every restart.
func Load() (*Config, error) {
	cfg := &Config{
		Host:         utils.GetEnv("SERVER_HOST", "0.0.0.0"),
		Port:         utils.GetEnv("SERVER_PORT", "8080"),
		APIURL:       utils.GetEnv("API_URL", DefaultAPIURL),
		Env:          utils.GetEnv("GO_ENV", "development"),
		CookieSecure: utils.GetBoolEnv("COOKIE_SECURE", false),
		CORSOrigins:  utils.GetListEnv("CORS_ORIGINS", nil),
	}

	u, err := url.Parse(cfg.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API_URL %q", cfg.APIURL)
	}

	if cfg.SessionKey, err = loadKey("SESSION_KEY"); err != nil {
		return nil, err
	}
	if cfg.CSRFKey, err = loadKey("CSRF_KEY"); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadKey(name string) ([]byte, error) {
	raw := utils.GetEnv(name, "")
	if raw != "" {
		decoded, err := base64.StdEncoding.DecodeString(raw)
		if err == nil && len(decoded) >= keyLength {
			return decoded, nil
		}
		slog.Warn("key is invalid or shorter than 32 bytes, generating one", "key", name)
	} else {
		slog.Warn("key not set, generating one for this run", "key", name)
	}
	b := make([]byte, keyLength)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("generate %s: %w", name, err)
	}
	return b, nil
}
