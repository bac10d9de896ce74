package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	logg *logrus.Logger
)

func GetLogger() *logrus.Logger {
	return logg
}

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetLevel(logrus.InfoLevel)
	logg.SetOutput(os.Stdout)
}

func applyLogLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logg.Warnf("unknown LOG_LEVEL %q, keeping %s", level, logg.GetLevel())
		return
	}
	logg.SetLevel(parsed)
}

func LogError(moduleName string, funcName string, context string, err error) {
	logg.WithFields(logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
		"context":  context,
	}).Error(err.Error())
}
