// Package logging provides the leveled, optionally colored logger backing
// the urplit CLI and its notice sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/woozymasta/urplit"
)

// ANSI colors (empty when disabled)
var (
	red    = ""
	green  = ""
	yellow = ""
	blue   = ""
	cyan   = ""
	nc     = ""
)

// Logger writes leveled lines to stdout (errors to stderr).
type Logger struct {
	verbose bool
}

// NewLogger enables colors when stdout is a terminal and NO_COLOR is unset.
func NewLogger(verbose bool) *Logger {
	enable := isTerminal(os.Stdout) && os.Getenv("NO_COLOR") == "" && strings.ToLower(os.Getenv("TERM")) != "dumb"
	if enable {
		red = "\033[1;91m"
		green = "\033[1;92m"
		yellow = "\033[1;93m"
		blue = "\033[1;94m"
		cyan = "\033[1;96m"
		nc = "\033[0m"
	} else {
		red, green, yellow, blue, cyan, nc = "", "", "", "", "", ""
	}

	return &Logger{verbose: verbose}
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func (l *Logger) line(level, color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	out := os.Stdout
	if level == "ERROR" {
		out = os.Stderr
	}
	if color != "" {
		_, _ = io.WriteString(out, ts+" "+color+"["+level+"]"+nc+" "+text+"\n")
		return
	}
	_, _ = io.WriteString(out, ts+" ["+level+"] "+text+"\n")
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...any) {
	l.line("INFO", blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...any) {
	l.line("SUCCESS", green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...any) {
	l.line("WARN", yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...any) {
	l.line("ERROR", red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose.
func (l *Logger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", cyan, fmt.Sprintf(format, args...))
}

// Sink adapts the logger to the converter's notice interface. Notices tagged
// with an asset carry its name as a prefix.
type Sink struct {
	Log *Logger
}

// Notify routes a notice to the level-matching logger method.
func (s Sink) Notify(n urplit.Notice) {
	msg := n.Message
	if n.Asset != "" {
		msg = n.Asset + ": " + msg
	}
	switch n.Level {
	case urplit.NoticeError:
		s.Log.Error("%s", msg)
	case urplit.NoticeWarning:
		s.Log.Warn("%s", msg)
	default:
		s.Log.Info("%s", msg)
	}
}
