package logger

import (
	"io"
	"os"
	"time"

	"github.com/piresc/riderstate/internal/pkg/models"
	"github.com/sirupsen/logrus"
)

// AppLogger wraps logrus with the fields every entry of this function carries
type AppLogger struct {
	*logrus.Logger
	service string
	version string
}

// Config holds logger configuration
type Config struct {
	Level   string
	Format  string
	Service string
	Version string
}

// NewAppLogger creates a logger writing to stdout, which Lambda ships to CloudWatch
func NewAppLogger(config Config) *AppLogger {
	return NewAppLoggerWithOutput(config, os.Stdout)
}

// NewAppLoggerWithOutput creates a logger writing to out
func NewAppLoggerWithOutput(config Config, out io.Writer) *AppLogger {
	logger := logrus.New()
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	// fatal and panic would leave no level to write the invocation event at
	if level < logrus.ErrorLevel {
		level = logrus.ErrorLevel
	}
	logger.SetLevel(level)

	if config.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	}

	return &AppLogger{
		Logger:  logger,
		service: config.Service,
		version: config.Version,
	}
}

// InitAppLoggerFromConfig initializes the logger directly from config models
func InitAppLoggerFromConfig(configs *models.Config) *AppLogger {
	return NewAppLogger(Config{
		Level:   configs.Logger.Level,
		Format:  configs.Logger.Format,
		Service: configs.App.Name,
		Version: configs.App.Version,
	})
}

// WithFields adds custom fields to log entry
func (al *AppLogger) WithFields(fields logrus.Fields) *logrus.Entry {
	if fields == nil {
		fields = logrus.Fields{}
	}
	fields["service"] = al.service
	if al.version != "" {
		fields["version"] = al.version
	}

	return al.Logger.WithFields(fields)
}

// WithError adds error field to log entry
func (al *AppLogger) WithError(err error) *logrus.Entry {
	return al.WithFields(nil).WithError(err)
}
