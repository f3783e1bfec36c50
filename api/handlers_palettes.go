package api

import (
	"fmt"
	"net/http"

	"github.com/color-studio/api/datastore"
	"github.com/color-studio/api/models"
	"github.com/color-studio/api/render"
)

// GET, POST /api/palettes
func (app *Application) palettes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		app.getAllPalettes(w, r)
	case http.MethodPost:
		app.createPalette(w, r)
	default:
		app.methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (app *Application) getAllPalettes(w http.ResponseWriter, r *http.Request) {
	palettes, err := app.PaletteRepo.GetAll()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, palettes)
}

func (app *Application) createPalette(w http.ResponseWriter, r *http.Request) {
	var input models.PaletteInput
	if err := decodeJSON(w, r, &input); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	palette, err := input.Validate()
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	created, err := app.PaletteRepo.Create(palette)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.logger().Info("palette created", "id", created.ID, "colors", len(created.Colors))
	writeJSON(w, http.StatusCreated, created)
}

// GET /api/palettes/trending
func (app *Application) getTrendingPalettes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	trending, err := app.PaletteRepo.GetTrending(datastore.TrendingPaletteLimit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, trending)
}

// lookupPalette resolves the {id} path value, writing the error response
// itself when the palette cannot be returned.
func (app *Application) lookupPalette(w http.ResponseWriter, r *http.Request) (models.Palette, bool) {
	id, err := parseID(r)
	if err != nil {
		app.badRequest(w, r, err)
		return models.Palette{}, false
	}

	palette, err := app.PaletteRepo.Get(id)
	if isNotFound(err) {
		app.notFound(w, r, fmt.Errorf("palette %d not found", id))
		return models.Palette{}, false
	}
	if err != nil {
		app.internalServerError(w, r, err)
		return models.Palette{}, false
	}
	return palette, true
}

// GET /api/palettes/{id}
func (app *Application) getPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	palette, ok := app.lookupPalette(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, palette)
}

// POST /api/palettes/{id}/use
func (app *Application) usePalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	id, err := parseID(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	if err := app.PaletteRepo.IncrementUsage(id); err != nil {
		if isNotFound(err) {
			app.notFound(w, r, fmt.Errorf("palette %d not found", id))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Usage updated"})
}

// GET /api/palettes/{id}/png?width=&height=
func (app *Application) getPalettePNG(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	width, height, err := imageSize(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	palette, ok := app.lookupPalette(w, r)
	if !ok {
		return
	}

	img, err := render.PaletteStrip(palette.Colors, width, height)
	if err != nil {
		app.renderError(w, r, err)
		return
	}

	app.writePNG(w, r, img, fmt.Sprintf("palette-%d.png", palette.ID))
}
