package config

import (
	"fmt"
	"strings"
)

// ConfigError reports why a config file could not be used: environment
// variables it references that are unset, and settings Validate rejected.
type ConfigError struct {
	Path    string
	Missing []string // NAME, or "NAME: message" for ${NAME:?message}
	Errors  []string // "section.key: reason"
}

func (e *ConfigError) Error() string {
	if !e.HasErrors() {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "config %s:", e.Path)
	writeSection(&b, "unset environment variables", e.Missing)
	writeSection(&b, "invalid settings", e.Errors)
	return b.String()
}

func writeSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:", title)
	for _, item := range items {
		fmt.Fprintf(b, "\n  - %s", item)
	}
}

// HasErrors reports whether anything was recorded.
func (e *ConfigError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}
