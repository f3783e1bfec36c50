package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/color-studio/api/api"
	"github.com/color-studio/api/datastore"
	"github.com/color-studio/api/migrations"
	"github.com/color-studio/api/scheduler"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := api.Config{
		HTTPPort:         getEnv("HTTP_PORT", ":8080"),
		StoreType:        getEnv("STORE_TYPE", "memory"),
		DatabaseType:     getEnv("DB_TYPE", "postgres"),
		DatabaseHost:     getEnv("DB_HOST", "localhost"),
		DatabaseUser:     getEnv("DB_USER", "postgres"),
		DatabasePassword: getEnv("DB_PASSWORD", ""),
		DatabaseName:     getEnv("DB_NAME", "colorstudio"),
		SSLMode:          getEnv("SSL_MODE", "disable"),
		SeedData:         getEnvBool("SEED_DATA", true),
		AllowedOrigins:   getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		DevMode:          getEnvBool("DEV_MODE", true),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		TrendingInterval: getEnvInt("TRENDING_INTERVAL", 300),
		MaxUploadBytes:   int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),
	}

	slog.SetDefault(newLogger(config))

	if err := run(config, openStores); err != nil {
		slog.Default().WithGroup("main").Error("exiting", "error", err)
		os.Exit(1)
	}
}

// storeOpener returns the repositories for a config and a func releasing
// their resources.
type storeOpener func(api.Config) (datastore.PaletteRepository, datastore.GradientRepository, func(), error)

// run wires the stores, scheduler and server. The store is released
// before run returns, whatever the outcome.
func run(config api.Config, open storeOpener) error {
	palettes, gradients, closeStore, err := open(config)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", config.StoreType, err)
	}
	defer closeStore()

	if config.SeedData {
		if err := datastore.Seed(palettes, gradients); err != nil {
			return fmt.Errorf("failed to seed store: %w", err)
		}
	}

	app := &api.Application{
		Config:       config,
		PaletteRepo:  palettes,
		GradientRepo: gradients,
		Logger:       slog.Default().WithGroup("api"),
	}

	trending := scheduler.NewScheduler(palettes, gradients, time.Duration(config.TrendingInterval)*time.Second)
	trending.Start()
	defer trending.Stop()

	mux := http.NewServeMux()
	if err := app.Serve(mux, trending.Stop); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// openStores returns the repositories for config.StoreType and a func
// releasing their resources.
func openStores(config api.Config) (datastore.PaletteRepository, datastore.GradientRepository, func(), error) {
	switch config.StoreType {
	case "memory":
		return datastore.NewMemoryPaletteStore(), datastore.NewMemoryGradientStore(), func() {}, nil
	case "postgres":
		return openDatabaseStores(config)
	default:
		return nil, nil, nil, fmt.Errorf("unknown STORE_TYPE %q, want memory or postgres", config.StoreType)
	}
}

func openDatabaseStores(config api.Config) (datastore.PaletteRepository, datastore.GradientRepository, func(), error) {
	connStr := datastore.BuildDBConnStr(
		config.DatabaseHost,
		config.DatabasePassword,
		config.DatabaseUser,
		config.DatabaseName,
		config.SSLMode,
	)

	dbConn, err := datastore.NewDB(config.DatabaseType, connStr)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %v", err)
	}
	closeDB := func() { dbConn.Close() }

	fail := func(err error) (datastore.PaletteRepository, datastore.GradientRepository, func(), error) {
		closeDB()
		return nil, nil, nil, err
	}

	if err := migrations.RunMigrations(dbConn); err != nil {
		return fail(fmt.Errorf("failed to run migrations: %v", err))
	}

	paletteRepo, err := datastore.NewPaletteDatabase(dbConn)
	if err != nil {
		return fail(fmt.Errorf("failed to create palette repository: %v", err))
	}

	gradientRepo, err := datastore.NewGradientDatabase(dbConn)
	if err != nil {
		return fail(fmt.Errorf("failed to create gradient repository: %v", err))
	}

	logPoolStats(dbConn)
	return paletteRepo, gradientRepo, closeDB, nil
}

func logPoolStats(db *sql.DB) {
	stats := db.Stats()
	slog.Default().WithGroup("main").Info("database connected",
		"open_connections", stats.OpenConnections,
		"max_open", stats.MaxOpenConnections,
	)
}

// newLogger builds the process logger: human readable text in dev mode,
// JSON otherwise.
func newLogger(config api.Config) *slog.Logger {
	level := parseLevel(config.LogLevel)
	if config.DevMode && level > slog.LevelDebug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	if config.DevMode {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func parseLevel(value string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

func getEnvSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
