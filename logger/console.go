package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

const colorReset = "\033[0m"

// levelStyle maps an upper-cased zerolog level to its short tag and color.
var levelStyle = map[string]struct{ tag, color string }{
	"TRACE": {"TRC", "\033[90m"},
	"DEBUG": {"DBG", "\033[36m"},
	"INFO":  {"INF", "\033[32m"},
	"WARN":  {"WRN", "\033[33m"},
	"ERROR": {"ERR", "\033[31m"},
	"FATAL": {"FTL", "\033[35m"},
}

// newConsoleLogger renders entries as "15:04:05 [name][INF] msg key:value".
// The name prefix is omitted for the default logger.
func newConsoleLogger(cfg *Config, w io.Writer, name string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    cfg.NoColor,
		FormatLevel: func(i any) string {
			return levelPrefix(fmt.Sprint(i), name, cfg.NoColor)
		},
		FormatFieldName: func(i any) string {
			return fmt.Sprintf("%s:", i)
		},
	})
}

func levelPrefix(level, name string, noColor bool) string {
	lvl := strings.ToUpper(level)
	style, ok := levelStyle[lvl]
	if !ok {
		style.tag = lvl
	}
	out := "[" + style.tag + "]"
	if style.color != "" && !noColor {
		out = style.color + out + colorReset
	}
	if name != "" && name != "default" {
		out = "[" + name + "]" + out
	}
	return out
}
