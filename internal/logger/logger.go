// Package logger configures the process-wide zerolog logger and provides the
// Logs collaborator the repositories and services receive by constructor.
package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var globalLogger zerolog.Logger

var once sync.Once

// InitLogging configures the global zerolog logger, writing to stdout and,
// when logFilePath is set, to that file as well.
func InitLogging(logFilePath string) {
	once.Do(func() {
		writers := []io.Writer{os.Stdout}

		if logFilePath != "" {
			file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
			if err != nil {
				// The logger is not usable yet, report on stderr and continue
				// with stdout only.
				os.Stderr.WriteString("Failed to open log file: " + err.Error() + "\n")
			} else {
				writers = append(writers, file)
			}
		}

		multi := zerolog.MultiLevelWriter(writers...)
		logger := zerolog.New(multi).With().Timestamp().Logger().Level(zerolog.InfoLevel)
		globalLogger = logger
		log.Logger = logger
	})
}

// Logs is the diagnostic side channel handed to every repository and service.
// It reports failures with a source label of the form
// "<ComponentName> - <OperationName>" and never affects control flow.
type Logs struct {
	log zerolog.Logger
}

// NewLogs returns a Logs writing through the global logger. InitLogging must
// have run first; otherwise output goes to a disabled logger.
func NewLogs() *Logs {
	return &Logs{log: globalLogger}
}

// NewLogsWithWriter returns a Logs writing to w, used by tests to capture
// output.
func NewLogsWithWriter(w io.Writer) *Logs {
	return &Logs{log: zerolog.New(w).With().Timestamp().Logger()}
}

// LogToFile records a failure with its originating component and operation.
func (l *Logs) LogToFile(message, source string) {
	l.log.Error().Str("source", source).Msg(message)
}

// LogWarning records a non-fatal anomaly.
func (l *Logs) LogWarning(message, source string) {
	l.log.Warn().Str("source", source).Msg(message)
}

func getLogger(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return &globalLogger
	}
	return l
}

// InfoLog logs an info level message.
func InfoLog(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Info().Msgf(msg, args...)
}

// WarnLog logs a warning level message.
func WarnLog(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Warn().Msgf(msg, args...)
}

// ErrorLog logs an error level message.
func ErrorLog(ctx context.Context, msg string, args ...interface{}) {
	l := getLogger(ctx)
	if len(args) > 0 {
		if err, ok := args[0].(error); ok {
			l.Error().Err(err).Msg(msg)
			return
		}
	}
	l.Error().Msgf(msg, args...)
}
