// Package logging configures the process-wide logrus logger.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

const tokenPrefixLen = 10

// Setup applies level and format to the standard logrus logger. Unknown
// levels fall back to info.
func Setup(level, format string) {
	logrus.SetOutput(os.Stdout)

	if format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// MaskToken keeps only the first characters of a credential.
func MaskToken(token string) string {
	if len(token) <= tokenPrefixLen {
		return token[:len(token)/2] + "..."
	}
	return token[:tokenPrefixLen] + "..."
}

// Truncate shortens payloads before they are attached to log fields.
func Truncate(body []byte, max int) string {
	if len(body) <= max {
		return string(body)
	}
	return string(body[:max]) + "...(truncated)"
}
