package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

// Logger returns the shared application logger
func Logger() *logrus.Logger {
	return logg
}

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetLevel(logrus.InfoLevel)
	logg.SetOutput(os.Stdout)
}

// ConfigureLogger applies the configured log level to the shared logger.
// Unknown levels fall back to info.
func ConfigureLogger(c *Config) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logg.SetLevel(level)
}
