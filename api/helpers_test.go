package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/color-studio/api/datastore"
)

// newTestServer returns a handler over freshly seeded in-memory stores.
func newTestServer(t *testing.T) (*Application, http.Handler) {
	t.Helper()

	palettes := datastore.NewMemoryPaletteStore()
	gradients := datastore.NewMemoryGradientStore()
	if err := datastore.Seed(palettes, gradients); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}

	app := &Application{
		Config: Config{
			StoreType:      "memory",
			AllowedOrigins: []string{"https://colors.example.com"},
			MaxUploadBytes: 1 << 20,
		},
		PaletteRepo:  palettes,
		GradientRepo: gradients,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return app, app.BuildRoutes(http.NewServeMux())
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return v
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()

	if rec.Code != want {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, want, rec.Body.String())
	}
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, name string) HandlerError {
	t.Helper()

	expectStatus(t, rec, status)
	herr := decodeBody[HandlerError](t, rec)
	if herr.ErrorName != name {
		t.Errorf("errorName = %q, want %q", herr.ErrorName, name)
	}
	if herr.CallerInfo == "" || herr.CallerInfo == "[unknown]" {
		t.Errorf("callerInfo = %q, want file:line", herr.CallerInfo)
	}
	return herr
}
