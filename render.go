package relsql

import (
	"log/slog"

	"github.com/zoobzio/relsql/internal/render"
)

// Render walks stmt and returns the canonical SQL text it denotes.
func Render(stmt *Statement, opts ...Option) (string, error) {
	return render.Render(stmt, opts...)
}

// Option configures a single Render call.
type Option = render.Option

// WithLogger attaches a *slog.Logger that receives one WARN record per
// unsupported node the renderer skips. When no logger is attached the
// record goes to slog.Default().
func WithLogger(logger *slog.Logger) Option { return render.WithLogger(logger) }

// WithSchema attaches a Schema whose registry is consulted for every
// table and column reference before it is rendered.
func WithSchema(s *Schema) Option {
	if s == nil || s.registry == nil {
		return func(*render.Options) {}
	}
	return render.WithSchema(s.registry)
}
