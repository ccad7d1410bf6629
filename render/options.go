package render

import (
	"context"
	"log/slog"
)

// Options configures a conversion. The zero value (or nil) gives silent
// diagnostics and the built-in resolvers.
type Options struct {
	// Logger receives conversion warnings: text nodes that should have
	// been converted upstream, zero-size subtree roots. Nil discards
	// all output. Diagnostics never change what the pass produces.
	Logger *slog.Logger

	// FilterResolver resolves filter chains into device regions.
	// Nil selects the built-in resolver.
	FilterResolver FilterResolver

	// PaintResolver resolves paint descriptors into concrete paints.
	// Nil selects the built-in resolver.
	PaintResolver PaintResolver
}

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message
// formatting entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// converter carries the per-conversion state: the injected diagnostics
// sink and the two resolvers. It holds no mutable state of its own, so
// one converter serves an entire recursive pass.
type converter struct {
	log     *slog.Logger
	filters FilterResolver
	paints  PaintResolver
}

func newConverter(opts *Options) *converter {
	c := &converter{}
	if opts != nil {
		c.log = opts.Logger
		c.filters = opts.FilterResolver
		c.paints = opts.PaintResolver
	}
	if c.log == nil {
		c.log = slog.New(nopHandler{})
	}
	if c.filters == nil {
		c.filters = defaultFilterResolver{}
	}
	if c.paints == nil {
		c.paints = defaultPaintResolver{}
	}
	return c
}
