package logger

import "fmt"

// Init initializes the default logger. Kept separate from InitStructured so
// early startup lines (before the env is known) still have somewhere to go.
func Init() {
	InitStructured("")
}

// Info logs a printf-style info message
func Info(format string, args ...interface{}) {
	zlog.Info().Msg(fmt.Sprintf(format, args...))
}

// Warn logs a printf-style warning message
func Warn(format string, args ...interface{}) {
	zlog.Warn().Msg(fmt.Sprintf(format, args...))
}

// Error logs a printf-style error message
func Error(format string, args ...interface{}) {
	zlog.Error().Msg(fmt.Sprintf(format, args...))
}
