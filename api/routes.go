package api

import (
	"net/http"
	"regexp"
	"strings"
)

var localhostPattern = regexp.MustCompile(`^localhost:\d+$`)

func cleanOrigin(origin string) string {
	cleanedOrigin := strings.TrimPrefix(origin, "https://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "http://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "wss://")
	if idx := strings.Index(cleanedOrigin, "/"); idx != -1 {
		cleanedOrigin = cleanedOrigin[:idx]
	}
	return cleanedOrigin
}

func isAllowedOrigin(origin string, allowedOrigins []string) bool {
	cleanedRequest := cleanOrigin(origin)

	// Allow localhost for development
	if localhostPattern.MatchString(cleanedRequest) {
		return true
	}

	for _, allowed := range allowedOrigins {
		if cleanOrigin(strings.TrimSpace(allowed)) == cleanedRequest {
			return true
		}
	}

	return false
}

func wrapMuxWithCorsAndOrigins(mux *http.ServeMux, app *Application) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin == "" {
			origin = r.Header.Get("Referer")
		}

		if origin == "" || isAllowedOrigin(origin, app.Config.AllowedOrigins) {
			handleCors(mux.ServeHTTP)(w, r)
			return
		}

		app.logger().Warn("origin rejected", "origin", origin)
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("origin not allowed: " + cleanOrigin(origin)))
	})
}

func (app *Application) BuildRoutes(mux *http.ServeMux) *http.ServeMux {
	finalMux := http.NewServeMux()

	mux.HandleFunc("/", app.home)

	// Palettes
	mux.HandleFunc("/api/palettes", app.palettes)
	mux.HandleFunc("/api/palettes/trending", app.getTrendingPalettes)
	mux.HandleFunc("/api/palettes/{id}", app.getPalette)
	mux.HandleFunc("/api/palettes/{id}/use", app.usePalette)
	mux.HandleFunc("/api/palettes/{id}/png", app.getPalettePNG)

	// Gradients
	mux.HandleFunc("/api/gradients", app.gradients)
	mux.HandleFunc("/api/gradients/trending", app.getTrendingGradients)
	mux.HandleFunc("/api/gradients/{id}", app.getGradient)
	mux.HandleFunc("/api/gradients/{id}/use", app.useGradient)
	mux.HandleFunc("/api/gradients/{id}/css", app.getGradientCSS)
	mux.HandleFunc("/api/gradients/{id}/png", app.getGradientPNG)

	// Color tools
	mux.HandleFunc("/api/colors/convert", app.convertHex)
	mux.HandleFunc("/api/colors/convert/rgb", app.convertRGB)
	mux.HandleFunc("/api/colors/convert/hsl", app.convertHSL)
	mux.HandleFunc("/api/colors/contrast", app.checkContrast)
	mux.HandleFunc("/api/colors/harmony", app.getHarmony)
	mux.HandleFunc("/api/colors/themes", app.getThemes)
	mux.HandleFunc("/api/colors/generate", app.generatePalette)
	mux.HandleFunc("/api/colors/extract", app.extractColors)
	mux.HandleFunc("/api/colors/strip", app.renderStrip)

	// Wrap entire mux with request logging, CORS and origins check
	finalMux.Handle("/", app.logRequests(wrapMuxWithCorsAndOrigins(mux, app)))

	return finalMux
}
