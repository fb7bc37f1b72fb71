// Package log builds the slog.Logger used by the uuidgen command from a
// handful of functional options.
//
// Generated UUIDs go to standard output, so log records go to standard error
// unless another writer is given:
//
//	logger := log.New(
//		log.WithLevel("debug"),
//		log.WithFormat("json"),
//	)
//
// Attribute keys are lower camelCase and messages start with a capital letter
// and carry no trailing punctuation.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Defaults for a new logger.
const (
	DefaultLevel  = slog.LevelWarn
	DefaultFormat = FormatText
)

// Format selects the handler used to render records.
type Format uint8

const (
	FormatText Format = iota // key=value pairs
	FormatJSON               // one JSON object per record
)

// String returns the lower-case name of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	default:
		return "text"
	}
}

type config struct {
	level     slog.Level
	format    Format
	addSource bool
	writer    io.Writer
}

// Option modifies the logger configuration.
type Option func(*config)

// WithLevel sets the minimum level. It accepts a slog.Level or any string
// ParseLevel understands; anything else leaves the level unchanged.
func WithLevel(v any) Option {
	return func(c *config) {
		switch t := v.(type) {
		case slog.Level:
			c.level = t
		case string:
			if level, err := ParseLevel(t); err == nil {
				c.level = level
			}
		}
	}
}

// WithFormat sets the output format. It accepts a Format or a string
// ParseFormat understands; anything else leaves the format unchanged.
func WithFormat(v any) Option {
	return func(c *config) {
		switch t := v.(type) {
		case Format:
			c.format = t
		case string:
			if format, err := ParseFormat(t); err == nil {
				c.format = format
			}
		}
	}
}

// WithAddSource includes the file and line of the log call in each record.
func WithAddSource(add bool) Option {
	return func(c *config) {
		c.addSource = add
	}
}

// WithWriter sets the destination. A nil writer is ignored.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.writer = w
		}
	}
}

// New creates a logger. Without options it writes warnings and errors as
// text to os.Stderr.
func New(opts ...Option) *slog.Logger {
	c := config{
		level:  DefaultLevel,
		format: DefaultFormat,
		writer: os.Stderr,
	}
	for _, opt := range opts {
		opt(&c)
	}

	o := &slog.HandlerOptions{
		Level:     c.level,
		AddSource: c.addSource,
	}

	var handler slog.Handler
	switch c.format {
	case FormatJSON:
		handler = slog.NewJSONHandler(c.writer, o)
	default:
		handler = slog.NewTextHandler(c.writer, o)
	}
	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel converts a string such as "debug", "INFO" or "warn+2" into a
// slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// ParseFormat converts "text" or "json", in any case, into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("invalid log format %q", s)
	}
}
