package buddy

import (
	"fmt"
	"log"
	"os"
)

// LogLevel represents the logging verbosity of the package-level logger.
type LogLevel int

const (
	// LogLevelNone disables all logging.
	LogLevelNone LogLevel = iota
	// LogLevelFatal enables only fatal logging.
	LogLevelFatal
	// LogLevelError enables error and fatal logging.
	LogLevelError
	// LogLevelInfo enables info, error and fatal logging.
	LogLevelInfo
	// LogLevelDebug enables all logging.
	LogLevelDebug
)

var currentLogLevel = LogLevelInfo

var (
	debugLogger *log.Logger
	infoLogger  *log.Logger
	errorLogger *log.Logger
	fatalLogger *log.Logger
)

func init() {
	debugLogger = log.New(os.Stdout, "[DEBUG] ", log.Ldate|log.Ltime|log.Lshortfile)
	infoLogger = log.New(os.Stdout, "[INFO] ", log.Ldate|log.Ltime|log.Lshortfile)
	errorLogger = log.New(os.Stderr, "[ERROR] ", log.Ldate|log.Ltime|log.Lshortfile)
	fatalLogger = log.New(os.Stderr, "[FATAL] ", log.Ldate|log.Ltime|log.Lshortfile)
}

// SetLogLevel adjusts the package-level logging verbosity.
func SetLogLevel(level LogLevel) {
	currentLogLevel = level
}

// exitFunc is called by Fatal after the diagnostic has been written. It is
// a variable, not a direct os.Exit call, so tests can substitute a
// panic-and-recover stand-in to exercise fatal conditions without
// killing the test binary.
var exitFunc = os.Exit

// Debug logs debug information.
func Debug(format string, v ...interface{}) {
	if currentLogLevel >= LogLevelDebug {
		debugLogger.Output(2, fmt.Sprintf(format, v...))
	}
}

// Info logs informational messages.
func Info(format string, v ...interface{}) {
	if currentLogLevel >= LogLevelInfo {
		infoLogger.Output(2, fmt.Sprintf(format, v...))
	}
}

// Error logs error information.
func Error(format string, v ...interface{}) {
	if currentLogLevel >= LogLevelError {
		errorLogger.Output(2, fmt.Sprintf(format, v...))
	}
}

// Fatal writes a diagnostic and aborts the process. It backs all three
// unrecoverable conditions an Arena can hit: host OOM at Init,
// corruption detected during free-list traversal, and an invalid Free.
func Fatal(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	if currentLogLevel >= LogLevelFatal {
		fatalLogger.Output(2, msg)
	}
	exitFunc(1)
}
