// Package logging sends slog output to a file so it does not corrupt the
// terminal UI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Init makes a text logger writing to path the slog default. The returned
// closer releases the file. An empty path discards all logs.
func Init(path string, level slog.Level) (io.Closer, error) {
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return io.NopCloser(nil), nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	SetOutput(file, level)
	return file, nil
}

// SetOutput points the default logger at w.
func SetOutput(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}
