package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"

	"github.com/angeloszaimis/storagecheck/internal/resolver"
)

// Load reads path and overlays environ on top of it.
func Load(path string, environ []string) (resolver.Map, error) {
	snapshot := resolver.Map{}

	if path != "" {
		values, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read env file %s: %w", path, err)
		}
		for k, v := range values {
			snapshot[k] = v
		}
	}

	for k, v := range FromEnviron(environ) {
		snapshot[k] = v
	}

	return snapshot, nil
}

// FromEnviron converts KEY=VALUE entries, as returned by os.Environ, into a
// snapshot. Entries without a separator are skipped.
func FromEnviron(environ []string) resolver.Map {
	snapshot := make(resolver.Map, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		snapshot[key] = value
	}
	return snapshot
}

// Loader returns a function that produces a fresh snapshot on every call.
func Loader(path string, environ func() []string) func() (resolver.Source, error) {
	return func() (resolver.Source, error) {
		m, err := Load(path, environ())
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}
