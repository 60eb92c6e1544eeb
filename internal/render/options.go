package render

import "log/slog"

// Options configures a single Render call. Nothing here gates SQL
// syntax — relsql targets one canonical dialect — it only configures the
// ambient concerns around rendering: diagnostics and, through
// SchemaValidator, optional schema-aware validation.
type Options struct {
	Logger          *slog.Logger
	SchemaValidator SchemaValidator
}

// SchemaValidator is implemented by schema.Registry. It is declared here,
// not imported from the schema package, so internal/render never depends
// upward on a package that itself depends on internal/ast — the
// dependency runs one way.
type SchemaValidator interface {
	ValidateTable(name string) error
	ValidateColumn(table, column string) error
}

// Option mutates an Options value under construction.
type Option func(*Options)

// WithLogger attaches a *slog.Logger that receives one WARN record per
// unsupported node the renderer skips. When no logger is attached the
// record goes to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithSchema attaches a SchemaValidator consulted for every table and
// column reference before it is rendered.
func WithSchema(v SchemaValidator) Option {
	return func(o *Options) { o.SchemaValidator = v }
}

// resolve applies opts over the zero value Options.
func resolve(opts []Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
