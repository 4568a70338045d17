package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/willibrandon/envlog/selflog"
)

// DefaultDotEnvFile is loaded when no paths are given.
const DefaultDotEnvFile = ".env"

// LoadDotEnv loads variables from .env files into the process environment.
// Variables that are already set are not overridden. Missing files are
// skipped; any other failure is reported through selflog and returned.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{DefaultDotEnvFile}
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			selflog.Printf("[configuration] failed to load %s: %v", path, err)
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// FromDotEnv builds an Environment from .env files layered under the
// process environment, without modifying the process environment.
// Process variables take precedence, as with LoadDotEnv.
func FromDotEnv(paths ...string) (Environment, error) {
	if len(paths) == 0 {
		paths = []string{DefaultDotEnvFile}
	}

	vars := make(map[string]string)
	for _, path := range paths {
		fileVars, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			selflog.Printf("[configuration] failed to read %s: %v", path, err)
			return Environment{}, fmt.Errorf("read %s: %w", path, err)
		}
		for k, v := range fileVars {
			if _, exists := vars[k]; !exists {
				vars[k] = v
			}
		}
	}

	return FromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}), nil
}
