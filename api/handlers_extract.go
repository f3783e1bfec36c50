package api

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"net/http"

	"github.com/color-studio/api/extractor"
	"github.com/color-studio/api/models"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	defaultMaxUploadBytes = 10 << 20
	// maxImagePixels bounds the decoded size of an upload.
	maxImagePixels = 50_000_000
	uploadField    = "image"
)

var errImageTooLarge = errors.New("image dimensions too large")

// POST /api/colors/extract
//
// Accepts either a multipart form with the file in the "image" field or
// the raw image bytes as the request body. Sampling can be tuned with
// the stride, bucketSize, maxColors and alphaThreshold query parameters.
func (app *Application) extractColors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	opts, err := extractOptions(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	data, err := app.readUpload(w, r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			app.payloadTooLarge(w, r, fmt.Errorf("upload exceeds %d bytes", tooLarge.Limit))
			return
		}
		app.badRequest(w, r, err)
		return
	}

	img, format, err := decodeImage(data)
	switch {
	case errors.Is(err, image.ErrFormat):
		app.unsupportedMediaType(w, r, err)
		return
	case errors.Is(err, errImageTooLarge):
		app.payloadTooLarge(w, r, err)
		return
	case err != nil:
		app.badRequest(w, r, fmt.Errorf("could not decode image: %v", err))
		return
	}

	pix, width, height := extractor.PixelsFromImage(img)
	colors, err := opts.Extract(pix, width, height)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	message := fmt.Sprintf("extracted colors: %d", len(colors))
	if len(colors) == 0 {
		message = "no colors found"
	}

	app.logger().Debug("colors extracted", "format", format, "width", width, "height", height, "colors", len(colors))
	writeJSON(w, http.StatusOK, models.ExtractResponse{
		Width:   width,
		Height:  height,
		Colors:  colors,
		Message: message,
	})
}

func (app *Application) maxUploadBytes() int64 {
	if app.Config.MaxUploadBytes > 0 {
		return app.Config.MaxUploadBytes
	}
	return defaultMaxUploadBytes
}

// readUpload returns the uploaded image bytes from a multipart form or
// the raw body.
func (app *Application) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	limit := app.maxUploadBytes()
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType != "multipart/form-data" {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		if len(data) == 0 {
			return nil, errors.New("request body is empty")
		}
		return data, nil
	}

	// Allow for multipart framing around the file itself.
	r.Body = http.MaxBytesReader(w, r.Body, limit+(1<<20))
	if err := r.ParseMultipartForm(limit); err != nil {
		return nil, err
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		return nil, fmt.Errorf("missing %q file field: %v", uploadField, err)
	}
	defer file.Close()

	if header.Size > limit {
		return nil, &http.MaxBytesError{Limit: limit}
	}
	return io.ReadAll(file)
}

// decodeImage checks the declared dimensions before decoding the pixels.
func decodeImage(data []byte) (image.Image, string, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}
	if cfg.Width*cfg.Height > maxImagePixels {
		return nil, format, fmt.Errorf("%w: %dx%d", errImageTooLarge, cfg.Width, cfg.Height)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, format, err
	}
	return img, format, nil
}

func extractOptions(r *http.Request) (extractor.Options, error) {
	opts := extractor.DefaultOptions

	for _, p := range []struct {
		key string
		dst *int
	}{
		{"stride", &opts.Stride},
		{"bucketSize", &opts.BucketSize},
		{"maxColors", &opts.MaxColors},
	} {
		v, err := queryInt(r, p.key, *p.dst)
		if err != nil {
			return extractor.Options{}, err
		}
		if v < 1 {
			return extractor.Options{}, fmt.Errorf("query parameter %s must be positive", p.key)
		}
		*p.dst = v
	}

	alpha, err := queryInt(r, "alphaThreshold", int(opts.AlphaThreshold))
	if err != nil {
		return extractor.Options{}, err
	}
	if alpha < 0 || alpha > 255 {
		return extractor.Options{}, fmt.Errorf("query parameter alphaThreshold must be within 0-255")
	}
	opts.AlphaThreshold = uint8(alpha)

	return opts, nil
}
