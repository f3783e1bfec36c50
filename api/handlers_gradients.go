package api

import (
	"fmt"
	"net/http"

	"github.com/color-studio/api/datastore"
	"github.com/color-studio/api/models"
	"github.com/color-studio/api/render"
)

// GET, POST /api/gradients
func (app *Application) gradients(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		app.getAllGradients(w, r)
	case http.MethodPost:
		app.createGradient(w, r)
	default:
		app.methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (app *Application) getAllGradients(w http.ResponseWriter, r *http.Request) {
	gradients, err := app.GradientRepo.GetAll()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, gradients)
}

func (app *Application) createGradient(w http.ResponseWriter, r *http.Request) {
	var input models.GradientInput
	if err := decodeJSON(w, r, &input); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	gradient, err := input.Validate()
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	created, err := app.GradientRepo.Create(gradient)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.logger().Info("gradient created", "id", created.ID, "type", created.Type)
	writeJSON(w, http.StatusCreated, created)
}

// GET /api/gradients/trending
func (app *Application) getTrendingGradients(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	trending, err := app.GradientRepo.GetTrending(datastore.TrendingGradientLimit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, trending)
}

func (app *Application) lookupGradient(w http.ResponseWriter, r *http.Request) (models.Gradient, bool) {
	id, err := parseID(r)
	if err != nil {
		app.badRequest(w, r, err)
		return models.Gradient{}, false
	}

	gradient, err := app.GradientRepo.Get(id)
	if isNotFound(err) {
		app.notFound(w, r, fmt.Errorf("gradient %d not found", id))
		return models.Gradient{}, false
	}
	if err != nil {
		app.internalServerError(w, r, err)
		return models.Gradient{}, false
	}
	return gradient, true
}

// GET /api/gradients/{id}
func (app *Application) getGradient(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	gradient, ok := app.lookupGradient(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, gradient)
}

// POST /api/gradients/{id}/use
func (app *Application) useGradient(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	id, err := parseID(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	if err := app.GradientRepo.IncrementUsage(id); err != nil {
		if isNotFound(err) {
			app.notFound(w, r, fmt.Errorf("gradient %d not found", id))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Usage updated"})
}

// GET /api/gradients/{id}/css
func (app *Application) getGradientCSS(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	gradient, ok := app.lookupGradient(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, models.GradientCSSResponse{
		CSS:         gradient.CSS(),
		Declaration: gradient.CSSDeclaration(),
	})
}

// GET /api/gradients/{id}/png?width=&height=
func (app *Application) getGradientPNG(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	width, height, err := imageSize(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	gradient, ok := app.lookupGradient(w, r)
	if !ok {
		return
	}

	img, err := render.GradientImage(gradient, width, height)
	if err != nil {
		app.renderError(w, r, err)
		return
	}

	app.writePNG(w, r, img, fmt.Sprintf("gradient-%d.png", gradient.ID))
}
