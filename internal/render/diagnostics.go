package render

import (
	"log/slog"
	"reflect"

	"github.com/zoobzio/relsql/internal/ast"
)

// warnUnsupported logs a single WARN record naming the concrete Go type
// of a node the renderer does not recognize, then lets the caller render
// nothing for it. The record goes to the logger on opts, falling back to
// slog.Default() when none was attached: an unrecognized node must leave
// a trace somewhere even when the caller never configured diagnostics.
func warnUnsupported(opts *Options, kind string, seg ast.Segment) {
	logger := slog.Default()
	if opts != nil && opts.Logger != nil {
		logger = opts.Logger
	}
	logger.Warn("unsupported node skipped",
		"kind", kind,
		"type", reflect.TypeOf(seg).String(),
	)
}
