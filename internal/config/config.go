package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
)

// Config captures runtime configuration for the catalog service.
type Config struct {
	Catalog   CatalogConfig
	Spanner   SpannerConfig
	Session   SessionConfig
	Server    ServerConfig
	Telemetry TelemetryConfig
	Service   ServiceConfig
}

type CatalogConfig struct {
	Source      string // csv or spanner
	CSVPath     string
	Dataset     string
	PageSize    int
	DefaultSort domain.SortKey
}

type SpannerConfig struct {
	Database string
}

type SessionConfig struct {
	RecentsLimit int
	TTL          time.Duration
}

type ServerConfig struct {
	GRPCPort int
	HTTPPort int
}

type TelemetryConfig struct {
	LogLevel string
}

type ServiceConfig struct {
	Name    string
	Version string
}

const (
	SourceCSV     = "csv"
	SourceSpanner = "spanner"

	defaultCSVPath        = "data/smartcup.csv"
	defaultDataset        = "smartcup_final_6"
	defaultSpannerDB      = "projects/test-project/instances/test-instance/databases/test-db"
	defaultPageSize       = 6
	defaultRecentsLimit   = domain.DefaultRecentsLimit
	defaultSessionTTL     = 24 * time.Hour
	defaultGRPCPort       = 9090
	defaultHTTPPort       = 8080
	defaultLogLevel       = "info"
	defaultServiceName    = "smartcup-catalog"
	defaultServiceVersion = "0.1.0"
)

// Load reads configuration from environment variables, applying defaults when needed.
func Load() (*Config, error) {
	catalogCfg, err := loadCatalogConfig()
	if err != nil {
		return nil, fmt.Errorf("loading catalog config: %w", err)
	}

	sessionCfg, err := loadSessionConfig()
	if err != nil {
		return nil, fmt.Errorf("loading session config: %w", err)
	}

	serverCfg, err := loadServerConfig()
	if err != nil {
		return nil, fmt.Errorf("loading server config: %w", err)
	}

	return &Config{
		Catalog:   catalogCfg,
		Spanner:   SpannerConfig{Database: getEnvOrDefault("SPANNER_DATABASE", defaultSpannerDB)},
		Session:   sessionCfg,
		Server:    serverCfg,
		Telemetry: TelemetryConfig{LogLevel: getEnvOrDefault("LOG_LEVEL", defaultLogLevel)},
		Service: ServiceConfig{
			Name:    getEnvOrDefault("SERVICE_NAME", defaultServiceName),
			Version: getEnvOrDefault("SERVICE_VERSION", defaultServiceVersion),
		},
	}, nil
}

func loadCatalogConfig() (CatalogConfig, error) {
	source := getEnvOrDefault("CATALOG_SOURCE", SourceCSV)
	if source != SourceCSV && source != SourceSpanner {
		return CatalogConfig{}, fmt.Errorf("invalid CATALOG_SOURCE %q: want %s or %s", source, SourceCSV, SourceSpanner)
	}

	pageSize, err := getIntEnv("PAGE_SIZE", defaultPageSize)
	if err != nil {
		return CatalogConfig{}, err
	}
	if pageSize <= 0 {
		return CatalogConfig{}, fmt.Errorf("invalid PAGE_SIZE: %w", domain.ErrInvalidPageSize)
	}

	sortKey, err := domain.ParseSortKey(getEnvOrDefault("DEFAULT_SORT", string(domain.SortCatalog)))
	if err != nil {
		return CatalogConfig{}, fmt.Errorf("invalid DEFAULT_SORT: %w", err)
	}

	return CatalogConfig{
		Source:      source,
		CSVPath:     getEnvOrDefault("CATALOG_CSV_PATH", defaultCSVPath),
		Dataset:     getEnvOrDefault("CATALOG_DATASET", defaultDataset),
		PageSize:    pageSize,
		DefaultSort: sortKey,
	}, nil
}

func loadSessionConfig() (SessionConfig, error) {
	limit, err := getIntEnv("RECENTS_LIMIT", defaultRecentsLimit)
	if err != nil {
		return SessionConfig{}, err
	}

	ttl := defaultSessionTTL
	if value := os.Getenv("SESSION_TTL"); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return SessionConfig{}, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		ttl = parsed
	}

	return SessionConfig{RecentsLimit: limit, TTL: ttl}, nil
}

func loadServerConfig() (ServerConfig, error) {
	grpcPort, err := getIntEnv("GRPC_PORT", defaultGRPCPort)
	if err != nil {
		return ServerConfig{}, err
	}
	httpPort, err := getIntEnv("HTTP_PORT", defaultHTTPPort)
	if err != nil {
		return ServerConfig{}, err
	}
	if err := validatePort(grpcPort); err != nil {
		return ServerConfig{}, fmt.Errorf("invalid GRPC_PORT: %w", err)
	}
	if err := validatePort(httpPort); err != nil {
		return ServerConfig{}, fmt.Errorf("invalid HTTP_PORT: %w", err)
	}
	return ServerConfig{GRPCPort: grpcPort, HTTPPort: httpPort}, nil
}

func validatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", port)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
