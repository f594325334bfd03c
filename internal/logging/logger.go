package logging

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger = logrus.New()

type CustomFormatter struct {
	SystemName string
}

func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	fmt.Fprintf(b, "Date: %s, Time: %s, ", entry.Time.Format("2006-01-02"), entry.Time.Format("15:04:05"))
	fmt.Fprintf(b, "Event Source: %s, ", f.SystemName)
	fmt.Fprintf(b, "Event Type: %s, ", strings.ToUpper(entry.Level.String()))
	fmt.Fprintf(b, "Log ID: %s, ", uuid.New().String())
	fmt.Fprintf(b, "Message: %s", entry.Message)

	for k, v := range entry.Data {
		fmt.Fprintf(b, ", %s: %v", k, v)
	}

	if entry.HasCaller() {
		fmt.Fprintf(b, ", Location: %s:%d in %s", entry.Caller.File, entry.Caller.Line, entry.Caller.Function)
	}

	b.WriteByte('\n')

	return b.Bytes(), nil
}

// InitLogger routes output to a rotating file when logFile is set and to
// stderr otherwise.
func InitLogger(systemName string, logFile string, level string) {
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o700); err != nil {
			logrus.Fatalf("Failed to create log directory: %v", err)
		}

		Logger.SetOutput(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		})
	} else {
		Logger.SetOutput(os.Stderr)
	}

	Logger.SetFormatter(&CustomFormatter{SystemName: systemName})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Logger.SetLevel(lvl)
	Logger.SetReportCaller(lvl >= logrus.DebugLevel)
}
