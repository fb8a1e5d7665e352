package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Minimal leveled logger shared by the API and the seed loader.
// - zero external deps
// - provides Debug/Info/Warn/Error/Fatal variants and Init(level)
// - With(key, value, ...) attaches key=value fields to a line

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var (
	mu     sync.RWMutex
	logger *log.Logger = log.New(os.Stdout, "", 0)
	level  Level       = LevelInfo
)

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal).
// Call early during startup. Default level is Info.
func Init(l string) {
	mu.Lock()
	defer mu.Unlock()
	s := strings.ToLower(strings.TrimSpace(l))
	switch s {
	case "debug":
		level = LevelDebug
	case "warn", "warning":
		level = LevelWarn
	case "error":
		level = LevelError
	case "fatal":
		level = LevelFatal
	default:
		level = LevelInfo
	}
}

// SetOutput redirects all log lines to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = log.New(w, "", 0)
}

func header(lvl string) string {
	return fmt.Sprintf("%s [%s] ", time.Now().Format(time.RFC3339), strings.ToUpper(lvl))
}

func shouldLog(l Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return l >= level
}

func output() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func printf(l Level, lvl, suffix, format string, v ...interface{}) {
	if !shouldLog(l) {
		return
	}
	output().Printf(header(lvl)+format+suffix, v...)
}

func Debugf(format string, v ...interface{}) { printf(LevelDebug, "debug", "", format, v...) }

func Infof(format string, v ...interface{}) { printf(LevelInfo, "info", "", format, v...) }

func Warnf(format string, v ...interface{}) { printf(LevelWarn, "warn", "", format, v...) }

func Errorf(format string, v ...interface{}) { printf(LevelError, "error", "", format, v...) }

func Fatalf(format string, v ...interface{}) {
	output().Printf(header("fatal")+format, v...)
	os.Exit(1)
}

// Println kept for brief messages (maps to Info)
func Println(v ...interface{}) {
	if !shouldLog(LevelInfo) {
		return
	}
	output().Print(header("info") + fmt.Sprintln(v...))
}

// Debug/Info/Warn/Error helpers that accept a single string
func Debug(v string) { Debugf("%s", v) }
func Info(v string)  { Infof("%s", v) }
func Warn(v string)  { Warnf("%s", v) }
func Error(v string) { Errorf("%s", v) }

// Entry is a logger bound to a set of key=value fields.
type Entry struct {
	fields string
}

// With returns an Entry carrying the given alternating keys and values.
func With(kv ...interface{}) *Entry {
	return (&Entry{}).With(kv...)
}

func (e *Entry) With(kv ...interface{}) *Entry {
	var b strings.Builder
	b.WriteString(e.fields)
	for i := 0; i < len(kv); i += 2 {
		var val interface{} = "(missing)"
		if i+1 < len(kv) {
			val = kv[i+1]
		}
		fmt.Fprintf(&b, " %v=%v", kv[i], val)
	}
	return &Entry{fields: b.String()}
}

// suffix renders the fields with percent signs escaped for Printf.
func (e *Entry) suffix() string { return strings.ReplaceAll(e.fields, "%", "%%") }

func (e *Entry) Debugf(format string, v ...interface{}) {
	printf(LevelDebug, "debug", e.suffix(), format, v...)
}

func (e *Entry) Infof(format string, v ...interface{}) {
	printf(LevelInfo, "info", e.suffix(), format, v...)
}

func (e *Entry) Warnf(format string, v ...interface{}) {
	printf(LevelWarn, "warn", e.suffix(), format, v...)
}

func (e *Entry) Errorf(format string, v ...interface{}) {
	printf(LevelError, "error", e.suffix(), format, v...)
}

// LevelString returns the current level as text.
func LevelString() string {
	mu.RLock()
	defer mu.RUnlock()
	switch level {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	}
	return "info"
}
