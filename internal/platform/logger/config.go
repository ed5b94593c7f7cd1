package logger

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// LoggerConfig selects the level, encoding and destination of the logger.
// The service fills it from its viper configuration.
type LoggerConfig struct {
	Level      string
	Format     string
	OutputFile string
}

// DefaultConfig is used for the bootstrap logger, before the configuration
// has been read.
func DefaultConfig() *LoggerConfig {
	return &LoggerConfig{Level: "info", Format: FormatJSON, OutputFile: "stdout"}
}

// ToZapLevel parses Level, accepting "warning" for warn. Anything unknown is info.
func (c *LoggerConfig) ToZapLevel() zapcore.Level {
	level := strings.ToLower(strings.TrimSpace(c.Level))
	if level == "warning" {
		level = "warn"
	}
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return parsed
}

func (c *LoggerConfig) encoding() string {
	switch strings.ToLower(c.Format) {
	case FormatConsole, "text":
		return FormatConsole
	default:
		return FormatJSON
	}
}

func (c *LoggerConfig) toStdStream() bool {
	return c.OutputFile == "" || c.OutputFile == "stdout" || c.OutputFile == "stderr"
}
