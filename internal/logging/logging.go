// /internal/logging/logging.go
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the global logger. With a file path, output is rotated
// on disk; otherwise it goes to stderr in console form.
func Setup(level, filePath string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if filePath != "" {
		out = &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
		}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
