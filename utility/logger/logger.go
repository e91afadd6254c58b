package logger

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	log "github.com/jeanphorn/log4go"
)

var (
	level  = log.DEBUG
	logger = log.NewDefaultLogger(level)
	levels = map[string]log.Level{
		"DEBUG":    log.DEBUG,
		"TRACE":    log.TRACE,
		"INFO":     log.INFO,
		"WARNING":  log.WARNING,
		"ERROR":    log.ERROR,
		"CRITICAL": log.CRITICAL,
	}
)

// SetLevel ... Replaces the default logger with one filtering below the named level
func SetLevel(name string) {
	lvl, ok := levels[strings.ToUpper(name)]
	if !ok {
		return
	}
	level = lvl
	logger = log.NewDefaultLogger(level)
}

// Info log information
func Info(arg0 interface{}, args ...interface{}) {
	logger.Log(log.INFO, getSource(), format(arg0, args...))
}

// Debug log debug
func Debug(arg0 interface{}, args ...interface{}) {
	logger.Log(log.DEBUG, getSource(), format(arg0, args...))
}

// Warning log warnings
func Warning(arg0 interface{}, args ...interface{}) {
	logger.Log(log.WARNING, getSource(), format(arg0, args...))
}

// Error log errors
func Error(arg0 interface{}, args ...interface{}) {
	logger.Log(log.ERROR, getSource(), format(arg0, args...))
}

// Fatal log fatal errors
func Fatal(arg0 interface{}, args ...interface{}) {
	logger.Log(log.CRITICAL, getSource(), format(arg0, args...))
	logger.Close()
	os.Exit(1)
}

func format(arg0 interface{}, args ...interface{}) string {
	if message, ok := arg0.(string); ok {
		return fmt.Sprintf(message, args...)
	}
	return fmt.Sprint(append([]interface{}{arg0}, args...)...)
}

func getSource() (source string) {
	if pc, _, line, ok := runtime.Caller(2); ok {
		source = fmt.Sprintf("%s:%d", runtime.FuncForPC(pc).Name(), line)
	}
	return
}
