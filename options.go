package hl7

import (
	"os"

	"github.com/oarkflow/log"
)

// Option configures a Codec.
type Option func(*Options)

// Options holds the codec configuration.
type Options struct {
	// Separators used for serialization and for input without a header.
	// A zero value means DefaultSeparators, or for serialization the
	// separators a message was parsed with.
	Separators Separators

	// Strict surfaces malformed numeric and date tokens as *FormatError
	// instead of reading them as absent.
	Strict bool

	// Escaping enables escape sequences in string primitives
	Escaping bool

	// Version forces the catalog used to parse messages; empty reads MSH-12
	Version string

	// GenericSegments parses unknown non-Z segments as generic segments
	// instead of failing with *UnknownSegmentError.
	GenericSegments bool

	Logger *log.Logger
}

// quietLogger is the default: the codec only logs at debug level, so nothing
// is written unless the caller passes a debug logger through WithLogger.
var quietLogger = log.Logger{
	Level:  log.InfoLevel,
	Writer: log.IOWriter{Writer: os.Stderr},
}

// DefaultOptions returns the default configuration: default separators,
// lenient primitives, escaping on, info-level logging.
func DefaultOptions() *Options {
	return &Options{
		Escaping: true,
		Logger:   &quietLogger,
	}
}

// WithSeparators sets the delimiters used for serialization and headerless input.
func WithSeparators(s Separators) Option {
	return func(o *Options) {
		o.Separators = s
	}
}

// WithStrict enables strict primitive conversion.
func WithStrict(enable bool) Option {
	return func(o *Options) {
		o.Strict = enable
	}
}

// WithEscaping toggles escape sequence handling.
func WithEscaping(enable bool) Option {
	return func(o *Options) {
		o.Escaping = enable
	}
}

// WithVersion forces the catalog version.
func WithVersion(version string) Option {
	return func(o *Options) {
		o.Version = version
	}
}

// WithGenericSegments accepts unknown segments as generic segments.
func WithGenericSegments(enable bool) Option {
	return func(o *Options) {
		o.GenericSegments = enable
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
