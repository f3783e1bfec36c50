package models

import "github.com/color-studio/api/extractor"

type MessageResponse struct {
	Message string `json:"message"`
}

type GradientCSSResponse struct {
	CSS         string `json:"css"`
	Declaration string `json:"declaration"`
}

type HarmonyResponse struct {
	Base   string   `json:"base"`
	Type   string   `json:"type"`
	Colors []string `json:"colors"`
}

type GenerateResponse struct {
	Theme  string   `json:"theme"`
	Seed   uint64   `json:"seed"`
	Colors []string `json:"colors"`
}

type ExtractResponse struct {
	Width   int                        `json:"width"`
	Height  int                        `json:"height"`
	Colors  []extractor.ExtractedColor `json:"colors"`
	Message string                     `json:"message"`
}

// StripRequest asks for a palette strip image. Zero sizes use the
// renderer defaults.
type StripRequest struct {
	Colors []string `json:"colors"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
}
