package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Record records the record type name under the key "record".
func Record(name string) slog.Attr {
	return slog.String("record", name)
}

// Field records a field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Index records a sequence position under the key "index".
// Negative indexes mean "no element" and yield an empty Attr.
func Index(i int) slog.Attr {
	if i < 0 {
		return slog.Attr{}
	}
	return slog.Int("index", i)
}

// Kind records a failure kind under the key "kind".
func Kind(kind string) slog.Attr {
	if kind == "" {
		return slog.Attr{}
	}
	return slog.String("kind", kind)
}

// Source records an input location, such as a file path, under the key "source".
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
