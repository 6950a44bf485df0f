package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup настраивает глобальный logrus: JSON-формат, вывод в stdout.
func Setup(logLevel string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // уровень по умолчанию
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(level)
}
