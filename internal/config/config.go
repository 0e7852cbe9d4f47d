package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/sports-challenge/internal/platform/logging"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                  string
	ServiceName             string
	ServiceVersion          string
	HTTPAddr                string
	ReadTimeout             time.Duration
	WriteTimeout            time.Duration
	LogLevel                logging.Level
	StorageBackend          string
	DBURL                   string
	DBDisablePreparedBinary bool
	CORSAllowedOrigins      []string
	SwaggerEnabled          bool
	InternalJobToken        string

	SourceDraftURI              string
	SourcePointsURI             string
	SourceScheduleURI           string
	SourceBaseDir               string
	SourceHTTPTimeout           time.Duration
	SourceCircuitEnabled        bool
	SourceCircuitFailureCount   int
	SourceCircuitOpenTimeout    time.Duration
	SourceCircuitHalfOpenMaxReq int
	SourceS3Region              string
	SourceS3Endpoint            string
	SourceS3AccessKeyID         string
	SourceS3SecretAccessKey     string
	SourceFetchWorkers          int

	LeagueTablePath     string
	LeagueMatchStrategy string

	SeedOnStart           bool
	SeedInterval          time.Duration
	SeedLeagueName        string
	SeedLeagueSeason      string
	SeedLeagueDescription string

	UptraceEnabled     bool
	UptraceDSN         string
	UptraceLogsEnabled bool

	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration

	PprofEnabled bool
	PprofAddr    string
}

// Load reads the environment. A .env file, when present, fills in variables
// that are not already set.
func Load() (Config, error) {
	if err := loadDotEnv(getEnv("APP_ENV_FILE", ".env")); err != nil {
		return Config{}, err
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	logLevel, err := logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_LEVEL: %w", err)
	}

	storageBackend, err := parseStorageBackend(getEnv("STORAGE_BACKEND", StorageMemory))
	if err != nil {
		return Config{}, err
	}
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if storageBackend == StoragePostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when STORAGE_BACKEND=postgres")
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	sourceHTTPTimeout, err := time.ParseDuration(getEnv("SOURCE_HTTP_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOURCE_HTTP_TIMEOUT: %w", err)
	}
	if sourceHTTPTimeout <= 0 {
		return Config{}, fmt.Errorf("SOURCE_HTTP_TIMEOUT must be > 0")
	}
	sourceCircuitEnabled, err := strconv.ParseBool(getEnv("SOURCE_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOURCE_CIRCUIT_ENABLED: %w", err)
	}
	sourceCircuitFailureCount, err := getEnvAsInt("SOURCE_CIRCUIT_FAILURE_COUNT", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOURCE_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if sourceCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("SOURCE_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	sourceCircuitOpenTimeout, err := time.ParseDuration(getEnv("SOURCE_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOURCE_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if sourceCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("SOURCE_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	sourceCircuitHalfOpenMaxReq, err := getEnvAsInt("SOURCE_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOURCE_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if sourceCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("SOURCE_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	sourceFetchWorkers, err := getEnvAsInt("SOURCE_FETCH_WORKERS", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOURCE_FETCH_WORKERS: %w", err)
	}
	if sourceFetchWorkers < 1 {
		return Config{}, fmt.Errorf("SOURCE_FETCH_WORKERS must be >= 1")
	}

	leagueMatchStrategy := strings.ToLower(strings.TrimSpace(getEnv("LEAGUE_MATCH_STRATEGY", "exact-longest")))
	switch leagueMatchStrategy {
	case "exact-longest", "first":
	default:
		return Config{}, fmt.Errorf("invalid LEAGUE_MATCH_STRATEGY %q: valid values are exact-longest, first", leagueMatchStrategy)
	}

	seedOnStart, err := strconv.ParseBool(getEnv("SEED_ON_START", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SEED_ON_START: %w", err)
	}
	seedInterval, err := time.ParseDuration(getEnv("SEED_INTERVAL", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SEED_INTERVAL: %w", err)
	}
	if seedInterval < 0 {
		return Config{}, fmt.Errorf("SEED_INTERVAL must be >= 0")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:                  appEnv,
		ServiceName:             getEnv("APP_SERVICE_NAME", "sports-challenge-api"),
		ServiceVersion:          getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:             readTimeout,
		WriteTimeout:            writeTimeout,
		LogLevel:                logLevel,
		StorageBackend:          storageBackend,
		DBURL:                   dbURL,
		DBDisablePreparedBinary: dbDisablePreparedBinary,
		CORSAllowedOrigins:      splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SwaggerEnabled:          swaggerEnabled,
		InternalJobToken:        strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),

		SourceDraftURI:              strings.TrimSpace(getEnv("SOURCE_DRAFT_URI", "draft.csv")),
		SourcePointsURI:             strings.TrimSpace(getEnv("SOURCE_POINTS_URI", "points.csv")),
		SourceScheduleURI:           strings.TrimSpace(getEnv("SOURCE_SCHEDULE_URI", "schedule.csv")),
		SourceBaseDir:               strings.TrimSpace(getEnv("SOURCE_BASE_DIR", "data")),
		SourceHTTPTimeout:           sourceHTTPTimeout,
		SourceCircuitEnabled:        sourceCircuitEnabled,
		SourceCircuitFailureCount:   sourceCircuitFailureCount,
		SourceCircuitOpenTimeout:    sourceCircuitOpenTimeout,
		SourceCircuitHalfOpenMaxReq: sourceCircuitHalfOpenMaxReq,
		SourceS3Region:              strings.TrimSpace(getEnv("SOURCE_S3_REGION", "auto")),
		SourceS3Endpoint:            strings.TrimSpace(getEnv("SOURCE_S3_ENDPOINT", "")),
		SourceS3AccessKeyID:         strings.TrimSpace(getEnv("SOURCE_S3_ACCESS_KEY_ID", "")),
		SourceS3SecretAccessKey:     strings.TrimSpace(getEnv("SOURCE_S3_SECRET_ACCESS_KEY", "")),
		SourceFetchWorkers:          sourceFetchWorkers,

		LeagueTablePath:     strings.TrimSpace(getEnv("LEAGUE_TABLE_PATH", "")),
		LeagueMatchStrategy: leagueMatchStrategy,

		SeedOnStart:           seedOnStart,
		SeedInterval:          seedInterval,
		SeedLeagueName:        strings.TrimSpace(getEnv("SEED_LEAGUE_NAME", "Ryan's Sports Challenge 2026")),
		SeedLeagueSeason:      strings.TrimSpace(getEnv("SEED_LEAGUE_SEASON", "2026")),
		SeedLeagueDescription: strings.TrimSpace(getEnv("SEED_LEAGUE_DESCRIPTION", "")),

		UptraceEnabled:     uptraceEnabled,
		UptraceDSN:         uptraceDSN,
		UptraceLogsEnabled: uptraceLogsEnabled,

		PyroscopeEnabled:       pyroscopeEnabled,
		PyroscopeServerAddress: pyroscopeServerAddress,
		PyroscopeAuthToken:     strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:    pyroscopeUploadRate,

		PprofEnabled: pprofEnabled,
		PprofAddr:    pprofAddr,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.SourceDraftURI == "" || cfg.SourcePointsURI == "" || cfg.SourceScheduleURI == "" {
		return Config{}, fmt.Errorf("SOURCE_DRAFT_URI, SOURCE_POINTS_URI and SOURCE_SCHEDULE_URI cannot be empty")
	}
	if (cfg.SeedOnStart || cfg.SeedInterval > 0) && cfg.SeedLeagueName == "" {
		return Config{}, fmt.Errorf("SEED_LEAGUE_NAME is required when seeding is enabled")
	}

	return cfg, nil
}

func loadDotEnv(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseStorageBackend(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case StorageMemory, StoragePostgres:
		return value, nil
	default:
		return "", fmt.Errorf("invalid STORAGE_BACKEND %q: valid values are %s, %s", v, StorageMemory, StoragePostgres)
	}
}
