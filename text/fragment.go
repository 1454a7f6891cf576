package text

import "math"

// Fragment is a piece of extracted text with its baseline position.
type Fragment struct {
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	FontName string  `json:"font_name,omitempty"`
	FontSize float64 `json:"font_size,omitempty"`
}

// IsFinite reports whether all coordinates are finite numbers.
func (f Fragment) IsFinite() bool {
	for _, v := range [...]float64{f.X, f.Y, f.Width, f.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Page is the unordered fragment set of one page plus its dimensions.
type Page struct {
	Number    int        `json:"number"`
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
	Fragments []Fragment `json:"fragments"`
}
