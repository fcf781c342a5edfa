package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the process-wide structured logger.
var Log = logrus.New()

// Init configures Log from config values. When file is non-empty, output
// goes to stdout and a size-rotated file.
func Init(level, file string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	Log.SetLevel(parsed)
	Log.SetFormatter(&logrus.JSONFormatter{})

	if file != "" {
		rotated := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		Log.SetOutput(io.MultiWriter(os.Stdout, rotated))
		return
	}
	Log.SetOutput(os.Stdout)
}
