package api

import (
	"log/slog"

	"github.com/color-studio/api/datastore"
)

type Config struct {
	HTTPPort         string
	StoreType        string
	DatabaseType     string
	DatabaseHost     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseName     string
	SSLMode          string
	SeedData         bool
	AllowedOrigins   []string
	DevMode          bool
	LogLevel         string
	TrendingInterval int // seconds
	MaxUploadBytes   int64
}

type Application struct {
	Config       Config
	PaletteRepo  datastore.PaletteRepository
	GradientRepo datastore.GradientRepository
	Logger       *slog.Logger
}

func (app *Application) logger() *slog.Logger {
	if app.Logger != nil {
		return app.Logger
	}
	return slog.Default().WithGroup("api")
}
