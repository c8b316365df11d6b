package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// dotEnvFile is read from the working directory at startup.
const dotEnvFile = ".env"

// loadDotEnv copies the variables defined in path into the process
// environment. A variable that is already set, even to "", keeps its value,
// so the shell always wins over the file. A missing file is not an error.
func loadDotEnv(path string) error {
	values, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	for key, value := range values {
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("load %s: set %s: %w", path, key, err)
		}
	}
	return nil
}
