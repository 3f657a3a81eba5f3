package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const defaultBuildMode = "production"

// dotEnvFiles returns the dotenv files for mode, highest priority first.
func dotEnvFiles(dir, mode string) []string {
	if mode == "" {
		mode = defaultBuildMode
	}

	return []string{
		filepath.Join(dir, ".env."+mode+".local"),
		filepath.Join(dir, ".env."+mode),
		filepath.Join(dir, ".env.local"),
		filepath.Join(dir, ".env"),
	}
}

// loadDotEnv loads the dotenv files of the given mode from dir into the
// process environment. godotenv never overrides a variable that is already
// set, so loading in priority order gives the first file the last word
// and keeps the real environment on top. Missing files are skipped.
func loadDotEnv(dir, mode string) error {
	for _, path := range dotEnvFiles(dir, mode) {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("error loading dotenv file %s: %w", path, err)
		}
	}

	return nil
}
