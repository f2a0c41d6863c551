package sink

import (
	"encoding/json"

	"github.com/matzehuels/wordcast/pkg/cloud"
)

type jsonOutput struct {
	Width           float64    `json:"width"`
	Height          float64    `json:"height"`
	FontFamily      string     `json:"font_family"`
	Seed            uint64     `json:"seed,omitempty"`
	RunID           string     `json:"run_id,omitempty"`
	Placed          []jsonWord `json:"placed"`
	Unplaced        []string   `json:"unplaced"`
	Evaluations     int        `json:"evaluations"`
	BudgetExhausted bool       `json:"budget_exhausted,omitempty"`
}

type jsonWord struct {
	Text     string  `json:"text"`
	FontSize int     `json:"font_size"`
	Color    string  `json:"color"`
	Left     float64 `json:"left"`
	Top      float64 `json:"top"`
	Right    float64 `json:"right"`
	Bottom   float64 `json:"bottom"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

// RenderJSON exports the layout as indented JSON for external renderers.
// Placed words keep placement order.
func RenderJSON(r cloud.Result, opts ...Option) ([]byte, error) {
	s := newSettings(opts...)

	out := jsonOutput{
		Width:           s.width,
		Height:          s.height,
		FontFamily:      s.fontFamily,
		Seed:            s.seed,
		RunID:           s.runID,
		Placed:          make([]jsonWord, 0, len(r.Placed)),
		Unplaced:        make([]string, 0, len(r.Unplaced)),
		Evaluations:     r.Evaluations,
		BudgetExhausted: r.BudgetExhausted,
	}
	for _, p := range r.Placed {
		out.Placed = append(out.Placed, jsonWord{
			Text:     p.Text,
			FontSize: p.FontSize,
			Color:    string(p.Color),
			Left:     p.Box.Left,
			Top:      p.Box.Top,
			Right:    p.Box.Right,
			Bottom:   p.Box.Bottom,
			Width:    p.Box.Width(),
			Height:   p.Box.Height(),
		})
	}
	for _, w := range r.Unplaced {
		out.Unplaced = append(out.Unplaced, w.Text)
	}
	return json.MarshalIndent(out, "", "  ")
}
