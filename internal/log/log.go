// Package log provides a section-filtered slog.Logger: a record below
// LevelWarn is only emitted if it carries a "section" attribute whose value
// is (or is prefixed by) one of the sections the logger was built with.
// Warn and above always pass through. This lets every package log freely at
// Debug without drowning callers who only care about one subsystem.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
)

// defaultSections are the subsystems DefaultLogger surfaces Debug records
// for: the constraint generator and the unifier/solver.
var defaultSections = []string{"infer", "unify"}

var LoggerOpts = &slog.HandlerOptions{
	AddSource: true,
	Level:     slog.LevelDebug,
	ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == "time" {
			return slog.Attr{}
		}
		return a
	},
}

// DefaultLogger is the logger every package in this module logs through,
// scoped to defaultSections.
var DefaultLogger = New(os.Stdout, defaultSections...)

// New returns a logger writing text-formatted records to w, passing through
// Warn/Error unconditionally and Debug/Info only when tagged with one of
// sections (by prefix match on the "section" attribute's value).
func New(w io.Writer, sections ...string) *slog.Logger {
	return slog.New(&filteringHandler{
		underlying: slog.NewTextHandler(w, LoggerOpts),
		sections:   sections,
	})
}

var _ slog.Handler = &filteringHandler{}

type filteringHandler struct {
	underlying slog.Handler
	sections   []string
}

func (f *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return f.underlying.Enabled(ctx, level)
}

func (f *filteringHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= slog.LevelWarn {
		return f.underlying.Handle(ctx, record)
	}
	if !f.hasWantedSection(record) {
		return nil
	}
	return f.underlying.Handle(ctx, record)
}

func (f *filteringHandler) hasWantedSection(record slog.Record) bool {
	found := false
	record.Attrs(func(attr slog.Attr) bool {
		found = attr.Key == "section" && slices.ContainsFunc(f.sections, func(section string) bool {
			return strings.HasPrefix(attr.Value.String(), section)
		})
		return !found
	})
	return found
}

func (f *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	for _, attr := range attrs {
		if attr.Key == "section" && slices.ContainsFunc(f.sections, func(section string) bool {
			return strings.HasPrefix(attr.Value.String(), section)
		}) {
			// Every record logged through the derived handler carries a
			// wanted section, so it needs no further filtering.
			return f.underlying.WithAttrs(attrs)
		}
	}
	return &filteringHandler{underlying: f.underlying.WithAttrs(attrs), sections: f.sections}
}

func (f *filteringHandler) WithGroup(name string) slog.Handler {
	return &filteringHandler{underlying: f.underlying.WithGroup(name), sections: f.sections}
}
