package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads local env files before the yaml config is read.
// .env.local is loaded first and godotenv never overwrites variables that are
// already set, so precedence ends up: real environment > .env.local > .env.
// Missing files are skipped; the returned slice names the files actually read,
// for the startup log.
func LoadDotEnv() []string {
	var loaded []string
	for _, name := range []string{".env.local", ".env"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err == nil {
			loaded = append(loaded, name)
		}
	}
	return loaded
}
