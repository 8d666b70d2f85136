// Package config holds process-wide settings shared by the internal packages.
package config

import (
	"os"
	"strings"
)

// LogLevelEnv is the environment variable that enables debug logging when set
// to "debug".
const LogLevelEnv = "FBSCREENSHOT_LOG_LEVEL"

// Debug enables debug log output.
var Debug bool

// FromEnv sets Debug from the environment. It never clears a Debug value that
// was already switched on by a flag.
func FromEnv() {
	if strings.EqualFold(os.Getenv(LogLevelEnv), "debug") {
		Debug = true
	}
}
