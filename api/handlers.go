package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"net/http"
	"strconv"

	"github.com/color-studio/api/colorspace"
	"github.com/color-studio/api/render"
)

// maxJSONBytes caps request bodies for JSON endpoints.
const maxJSONBytes = 1 << 20

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		app.notFound(w, r, fmt.Errorf("no route for %s", r.URL.Path))
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Color Studio API")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeJSON reads a single JSON value from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

func parseID(r *http.Request) (int, error) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", raw)
	}
	return id, nil
}

// queryInt reads an optional integer query parameter.
func queryInt(r *http.Request, key string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query parameter %s=%q is not an integer", key, raw)
	}
	return v, nil
}

// queryFloat reads a required numeric query parameter.
func queryFloat(r *http.Request, key string) (float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, fmt.Errorf("query parameter %s is required", key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("query parameter %s=%q is not a number", key, raw)
	}
	return v, nil
}

// imageSize reads the optional width and height query parameters.
func imageSize(r *http.Request) (int, int, error) {
	width, err := queryInt(r, "width", 0)
	if err != nil {
		return 0, 0, err
	}
	height, err := queryInt(r, "height", 0)
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

// writePNG encodes img before writing anything so encoding failures can
// still be reported as JSON errors.
func (app *Application) writePNG(w http.ResponseWriter, r *http.Request, img image.Image, filename string) {
	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, img); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// renderError maps renderer failures to client or server errors.
func (app *Application) renderError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, colorspace.ErrInvalidFormat) {
		app.invalidColor(w, r, err)
		return
	}
	if errors.Is(err, render.ErrInvalidSize) || errors.Is(err, render.ErrNoColors) {
		app.badRequest(w, r, err)
		return
	}
	app.internalServerError(w, r, err)
}
