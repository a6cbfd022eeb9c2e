package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// defaultEnvFile is the .env path probed when THOUGHTFORGE_ENV_FILE is unset.
const defaultEnvFile = ".env"

// loadEnvFile loads the given .env file into the process environment using
// godotenv. Variables already present in the environment are never
// overridden, so a real THOUGHTFORGE_API_KEY always wins over a file value.
//
// When path is empty the default "./.env" is probed; a missing default file
// is not an error (local env files are optional and never committed). A
// missing explicitly-configured file is reported.
func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("error loading env file %q: %w", path, err)
	}

	return nil
}
