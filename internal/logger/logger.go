// README: Application logger; structured JSON output via logrus.
package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// New builds the application logger. Unknown levels fall back to info so a
// typo in the environment never silences logging entirely.
func New(level string) *logrus.Logger {
	log := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	return log
}
