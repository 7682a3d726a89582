package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

var Network string

var (
	WindowSize   int
	PollInterval time.Duration
	Plain        bool
	NoColor      bool
	LogFile      string
	LogLevel     string
)

// DotEnvFile is read by LoadDotEnv before any command runs.
var DotEnvFile = ".env"

// LoadDotEnv loads DotEnvFile into the process environment. Variables that
// are already set win. A missing file is not an error.
func LoadDotEnv() error {
	if _, err := os.Stat(DotEnvFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(DotEnvFile)
}
