package app

import (
	"os"

	log "github.com/sirupsen/logrus"
)

const LogLevelEnv = "LOG_LEVEL"

// SetupLogLevel sets the logrus level from LOG_LEVEL, Info when unset.
func SetupLogLevel() error {
	level := os.Getenv(LogLevelEnv)
	if level == "" {
		log.SetLevel(log.InfoLevel)
		return nil
	}
	logrusLevel, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(logrusLevel)
	return nil
}
