package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/color-studio/api/colorspace"
	"github.com/color-studio/api/models"
	"github.com/color-studio/api/palettegen"
	"github.com/color-studio/api/render"
)

// GET /api/colors/convert?hex=
func (app *Application) convertHex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	rgb, err := colorspace.HexToRGB(r.URL.Query().Get("hex"))
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewColorInfo(rgb))
}

// GET /api/colors/convert/rgb?r=&g=&b=
func (app *Application) convertRGB(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	var channels [3]float64
	for i, key := range []string{"r", "g", "b"} {
		v, err := queryFloat(r, key)
		if err != nil {
			app.badRequest(w, r, err)
			return
		}
		channels[i] = v
	}

	rgb := colorspace.RGBFromFloats(channels[0], channels[1], channels[2])
	writeJSON(w, http.StatusOK, models.NewColorInfo(rgb))
}

// GET /api/colors/convert/hsl?h=&s=&l=
func (app *Application) convertHSL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	var hsl [3]float64
	for i, key := range []string{"h", "s", "l"} {
		v, err := queryFloat(r, key)
		if err != nil {
			app.badRequest(w, r, err)
			return
		}
		hsl[i] = v
	}

	writeJSON(w, http.StatusOK, models.NewColorInfo(colorspace.HSLToRGB(hsl[0], hsl[1], hsl[2])))
}

// GET /api/colors/contrast?fg=&bg=
func (app *Application) checkContrast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	query := r.URL.Query()
	fg, err := colorspace.HexToRGB(query.Get("fg"))
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}
	bg, err := colorspace.HexToRGB(query.Get("bg"))
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewContrastResult(fg, bg))
}

// GET /api/colors/harmony?hex=&type=
func (app *Application) getHarmony(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	query := r.URL.Query()
	kind := palettegen.HarmonyKind(strings.ToLower(query.Get("type")))
	if kind == "" {
		kind = palettegen.HarmonyComplementary
	}

	colors, err := palettegen.Harmony(query.Get("hex"), kind)
	switch {
	case errors.Is(err, colorspace.ErrInvalidFormat):
		app.invalidColor(w, r, err)
		return
	case err != nil:
		app.badRequest(w, r, err)
		return
	}

	base, _ := colorspace.Normalize(query.Get("hex"))
	writeJSON(w, http.StatusOK, models.HarmonyResponse{
		Base:   base,
		Type:   string(kind),
		Colors: colors,
	})
}

// GET /api/colors/themes
func (app *Application) getThemes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	writeJSON(w, http.StatusOK, palettegen.Themes())
}

// GET /api/colors/generate?theme=&seed=
func (app *Application) generatePalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	query := r.URL.Query()
	theme := strings.ToLower(query.Get("theme"))
	if theme == "" {
		theme = string(palettegen.Random)
	}

	seed := uint64(time.Now().UnixNano())
	if raw := query.Get("seed"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			app.badRequest(w, r, errors.New("seed must be a non-negative integer"))
			return
		}
		seed = parsed
	}

	colors, err := palettegen.Generate(palettegen.Theme(theme), seed)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.GenerateResponse{
		Theme:  theme,
		Seed:   seed,
		Colors: colors,
	})
}

// POST /api/colors/strip
func (app *Application) renderStrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	var req models.StripRequest
	if err := decodeJSON(w, r, &req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	img, err := render.PaletteStrip(req.Colors, req.Width, req.Height)
	if err != nil {
		app.renderError(w, r, err)
		return
	}

	app.writePNG(w, r, img, "palette.png")
}
