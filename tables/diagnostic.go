package tables

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Rejection records a candidate column dropped because its gap was not
// empty on enough consecutive lines.
type Rejection struct {
	Edge      float64 `json:"edge"`
	Alignment string  `json:"alignment"`
	Text      string  `json:"text"`
}

// String returns a string representation of the rejection
func (r Rejection) String() string {
	return fmt.Sprintf("column space is not contiguous - column x1=%g text=%s", r.Edge, r.Text)
}

// Diagnostic holds every signal computed while classifying one line.
type Diagnostic struct {
	Page        int `json:"page"`
	Line        int `json:"line"`
	WindowStart int `json:"window_start"`
	WindowEnd   int `json:"window_end"`

	PartOfTable bool `json:"part_of_table"`

	HasTable     bool `json:"has_table"`
	ColumnCount  int  `json:"column_count"`
	HasTextInGap bool `json:"has_text_in_gap"`

	// Advisory only; never part of the verdict
	LineSpacingUniform bool    `json:"line_spacing_uniform"`
	PitchRatio         float64 `json:"pitch_ratio"`

	UniformHeight bool    `json:"uniform_height"`
	Height        float64 `json:"height,omitempty"`

	HasDateColumn bool `json:"has_date_column"`

	Rejections []Rejection `json:"rejections,omitempty"`
}

// String renders the diagnostic on one line.
func (d Diagnostic) String() string {
	return fmt.Sprintf("line=%d window=%d-%d isPartOfTable=%t hasTable=%t hasTextInSpaceBetweenColumns=%t isLineDistanceUniform=%t lineUniformHeight=%t hasDate=%t",
		d.Line, d.WindowStart, d.WindowEnd, d.PartOfTable, d.HasTable, d.HasTextInGap,
		d.LineSpacingUniform, d.UniformHeight, d.HasDateColumn)
}

// Attrs returns the diagnostic as structured log attributes.
func (d Diagnostic) Attrs() []slog.Attr {
	return []slog.Attr{
		slog.Int("page", d.Page),
		slog.Int("line", d.Line),
		slog.String("window", fmt.Sprintf("%d-%d", d.WindowStart, d.WindowEnd)),
		slog.Bool("part_of_table", d.PartOfTable),
		slog.Bool("has_table", d.HasTable),
		slog.Int("columns", d.ColumnCount),
		slog.Bool("text_in_gap", d.HasTextInGap),
		slog.Bool("spacing_uniform", d.LineSpacingUniform),
		slog.Bool("height_uniform", d.UniformHeight),
		slog.Bool("has_date", d.HasDateColumn),
	}
}

// Sink receives diagnostics as lines are classified.
type Sink interface {
	Emit(d Diagnostic)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(d Diagnostic)

// Emit calls f(d).
func (f SinkFunc) Emit(d Diagnostic) {
	f(d)
}

// CollectSink keeps every diagnostic it receives. It is safe for
// concurrent use.
type CollectSink struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
}

// Emit stores the diagnostic.
func (s *CollectSink) Emit(d Diagnostic) {
	s.mu.Lock()
	s.diagnostics = append(s.diagnostics, d)
	s.mu.Unlock()
}

// Diagnostics returns a copy of the collected diagnostics.
func (s *CollectSink) Diagnostics() []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Diagnostic(nil), s.diagnostics...)
}

// SlogSink writes diagnostics to a structured logger.
type SlogSink struct {
	Logger *slog.Logger
	Level  slog.Level
}

// NewSlogSink creates a sink logging at debug level. A nil logger uses
// slog.Default().
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{Logger: logger, Level: slog.LevelDebug}
}

// Emit logs the diagnostic and each column rejection.
func (s *SlogSink) Emit(d Diagnostic) {
	ctx := context.Background()
	if !s.Logger.Enabled(ctx, s.Level) {
		return
	}
	for _, r := range d.Rejections {
		s.Logger.LogAttrs(ctx, s.Level, "ignoring column",
			slog.Int("page", d.Page),
			slog.Int("line", d.Line),
			slog.Float64("x1", r.Edge),
			slog.String("alignment", r.Alignment),
			slog.String("text", r.Text),
		)
	}
	s.Logger.LogAttrs(ctx, s.Level, "line classified", d.Attrs()...)
}
