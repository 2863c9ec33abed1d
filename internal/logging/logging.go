// Package logging wires the process-wide structured logger. Output goes to
// stderr by default; when a log file is configured it is rotated with
// lumberjack so long-running deployments do not fill the disk.
package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the shared logrus instance used across the service.
var Logger = logrus.New()

var once sync.Once

// Init configures the global logger. Safe to call more than once; only the
// first call takes effect.
func Init(logFile string) {
	once.Do(func() {
		Logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
		Logger.SetLevel(logrus.InfoLevel)

		if logFile != "" {
			Logger.SetOutput(&lumberjack.Logger{
				Filename:   logFile,
				MaxSize:    10, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			})
		}
	})
}
