package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds the settings needed to run the service.
type AppConfig struct {
	ListenAddr      string
	Port            string
	DatabaseDriver  string
	DatabasePath    string
	DatabaseURL     string
	GinMode         string
	LogLevel        string
	LogFormat       string
	UploadDir       string
	UploadURLPath   string
	UploadsBaseURL  string
	CORSOrigins     []string
	MaxPageSize     int
	RateLimitPerMin int
}

// LoadEnvFile merges a dotenv file into the process environment. Variables
// already set win, and a missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads the configuration from environment variables, falling back to
// defaults for anything unset.
func Load() (AppConfig, error) {
	port := envString("PORT", "3002")

	listenAddr := envString("LISTEN_ADDR", "")
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	uploadURLPath := envString("UPLOAD_URL_PATH", "/uploads")
	uploadsBaseURL := strings.TrimRight(envString("UPLOADS_BASE_URL", ""), "/")
	if uploadsBaseURL == "" {
		uploadsBaseURL = fmt.Sprintf("http://localhost:%s%s", port, uploadURLPath)
	}

	maxPageSize, err := envInt("MAX_PAGE_SIZE", 100)
	if err != nil {
		return AppConfig{}, err
	}
	if maxPageSize < 1 {
		return AppConfig{}, fmt.Errorf("MAX_PAGE_SIZE must be positive, got %d", maxPageSize)
	}

	rateLimit, err := envInt("RATE_LIMIT_PER_MIN", 0)
	if err != nil {
		return AppConfig{}, err
	}
	if rateLimit < 0 {
		return AppConfig{}, fmt.Errorf("RATE_LIMIT_PER_MIN must not be negative, got %d", rateLimit)
	}

	ginMode := strings.ToLower(envString("GIN_MODE", "release"))
	switch ginMode {
	case "debug", "release", "test":
	default:
		return AppConfig{}, fmt.Errorf("GIN_MODE must be debug, release or test, got %q", ginMode)
	}

	return AppConfig{
		ListenAddr:      listenAddr,
		Port:            port,
		DatabaseDriver:  strings.ToLower(envString("DATABASE_DRIVER", "sqlite")),
		DatabasePath:    envString("DATABASE_PATH", "database.db"),
		DatabaseURL:     envString("DATABASE_URL", ""),
		GinMode:         ginMode,
		LogLevel:        envString("LOG_LEVEL", "info"),
		LogFormat:       envString("LOG_FORMAT", "json"),
		UploadDir:       envString("UPLOAD_DIR", "uploads"),
		UploadURLPath:   uploadURLPath,
		UploadsBaseURL:  uploadsBaseURL,
		CORSOrigins:     splitList(envString("CORS_ORIGINS", "*")),
		MaxPageSize:     maxPageSize,
		RateLimitPerMin: rateLimit,
	}, nil
}

func envString(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envInt(key string, fallback int) (int, error) {
	raw := envString(key, "")
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return value, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
