// Package logger provides leveled, component-tagged logging for the
// core: a global writer, a minimum level, and per-component enable
// switches so CPU-instruction tracing can be toggled independently of
// mapper, bus, or console logging.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"
)

// LogLevel represents different logging levels
type LogLevel int

const (
	LogLevelOff LogLevel = iota
	LogLevelError
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
	LogLevelTrace
)

// Logger handles all logging for the emulator
type Logger struct {
	level          LogLevel
	writer         io.Writer
	cpuEnabled     bool
	ppuEnabled     bool
	busEnabled     bool
	mapperEnabled  bool
	consoleEnabled bool
}

var globalLogger *Logger

// Initialize sets up the global logger
func Initialize(level LogLevel, filename string) error {
	var writer io.Writer = os.Stdout

	if filename != "" {
		file, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		writer = file
	}

	globalLogger = &Logger{
		level:          level,
		writer:         writer,
		cpuEnabled:     true,
		ppuEnabled:     false,
		busEnabled:     false,
		mapperEnabled:  false,
		consoleEnabled: true,
	}

	return nil
}

// SetCPULogging enables or disables CPU instruction logging
func SetCPULogging(enabled bool) {
	if globalLogger != nil {
		globalLogger.cpuEnabled = enabled
	}
}

// SetPPULogging enables or disables PPU logging
func SetPPULogging(enabled bool) {
	if globalLogger != nil {
		globalLogger.ppuEnabled = enabled
	}
}

// SetBusLogging enables or disables bus routing logging
func SetBusLogging(enabled bool) {
	if globalLogger != nil {
		globalLogger.busEnabled = enabled
	}
}

// SetMapperLogging enables or disables mapper logging
func SetMapperLogging(enabled bool) {
	if globalLogger != nil {
		globalLogger.mapperEnabled = enabled
	}
}

// SetConsoleLogging enables or disables console lifecycle logging
func SetConsoleLogging(enabled bool) {
	if globalLogger != nil {
		globalLogger.consoleEnabled = enabled
	}
}

// LogCPU logs CPU instruction execution at Debug level and above
func LogCPU(format string, args ...interface{}) {
	if globalLogger != nil && globalLogger.cpuEnabled && globalLogger.level >= LogLevelDebug {
		timestamp := time.Now().Format("15:04:05.000")
		message := fmt.Sprintf(format, args...)
		fmt.Fprintf(globalLogger.writer, "[%s] CPU: %s\n", timestamp, message)
	}
}

// LogPPU logs PPU register operations
func LogPPU(format string, args ...interface{}) {
	if globalLogger != nil && globalLogger.ppuEnabled && globalLogger.level >= LogLevelTrace {
		timestamp := time.Now().Format("15:04:05.000")
		message := fmt.Sprintf(format, args...)
		fmt.Fprintf(globalLogger.writer, "[%s] PPU: %s\n", timestamp, message)
	}
}

// LogBus logs bus routing decisions
func LogBus(format string, args ...interface{}) {
	if globalLogger != nil && globalLogger.busEnabled && globalLogger.level >= LogLevelTrace {
		timestamp := time.Now().Format("15:04:05.000")
		message := fmt.Sprintf(format, args...)
		fmt.Fprintf(globalLogger.writer, "[%s] BUS: %s\n", timestamp, message)
	}
}

// LogMapper logs mapper operations
func LogMapper(format string, args ...interface{}) {
	if globalLogger != nil && globalLogger.mapperEnabled && globalLogger.level >= LogLevelDebug {
		timestamp := time.Now().Format("15:04:05.000")
		message := fmt.Sprintf(format, args...)
		fmt.Fprintf(globalLogger.writer, "[%s] MAPPER: %s\n", timestamp, message)
	}
}

// LogConsole logs console lifecycle events (ROM load/unload, run start/stop)
func LogConsole(format string, args ...interface{}) {
	if globalLogger != nil && globalLogger.consoleEnabled && globalLogger.level >= LogLevelInfo {
		timestamp := time.Now().Format("15:04:05.000")
		message := fmt.Sprintf(format, args...)
		fmt.Fprintf(globalLogger.writer, "[%s] CONSOLE: %s\n", timestamp, message)
	}
}

// LogInfo logs general information
func LogInfo(format string, args ...interface{}) {
	if globalLogger != nil && globalLogger.level >= LogLevelInfo {
		timestamp := time.Now().Format("15:04:05.000")
		message := fmt.Sprintf(format, args...)
		fmt.Fprintf(globalLogger.writer, "[%s] INFO: %s\n", timestamp, message)
	}
}

// LogError logs errors
func LogError(format string, args ...interface{}) {
	if globalLogger != nil && globalLogger.level >= LogLevelError {
		timestamp := time.Now().Format("15:04:05.000")
		message := fmt.Sprintf(format, args...)
		fmt.Fprintf(globalLogger.writer, "[%s] ERROR: %s\n", timestamp, message)
	}
}

// LogDebug logs debug information
func LogDebug(format string, args ...interface{}) {
	if globalLogger != nil && globalLogger.level >= LogLevelDebug {
		timestamp := time.Now().Format("15:04:05.000")
		message := fmt.Sprintf(format, args...)
		fmt.Fprintf(globalLogger.writer, "[%s] DEBUG: %s\n", timestamp, message)
	}
}

// GetLogLevelFromString converts string to LogLevel
func GetLogLevelFromString(level string) LogLevel {
	switch level {
	case "off":
		return LogLevelOff
	case "error":
		return LogLevelError
	case "warn":
		return LogLevelWarn
	case "info":
		return LogLevelInfo
	case "debug":
		return LogLevelDebug
	case "trace":
		return LogLevelTrace
	default:
		return LogLevelInfo
	}
}

// Close closes the logger and any associated files
func Close() {
	if globalLogger != nil {
		if file, ok := globalLogger.writer.(*os.File); ok && file != os.Stdout && file != os.Stderr {
			file.Close()
		}
	}
}
