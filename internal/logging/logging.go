package logging

import (
	log "github.com/sirupsen/logrus"
)

// AppName is the name of this application, used to tag all log entries.
const AppName = "minicover"

// AppLogger returns the base log entry of this application.
func AppLogger() *log.Entry {
	return log.WithFields(log.Fields{"app": AppName})
}

// SetLevel sets the global logging level. A level that cannot be parsed
// leaves the current level in place.
func SetLevel(level string) {
	parsedLevel, err := log.ParseLevel(level)
	if err != nil {
		AppLogger().Warnf("unable to parse log level '%s', keeping '%s'", level, log.GetLevel())
		return
	}
	log.SetLevel(parsedLevel)
}
