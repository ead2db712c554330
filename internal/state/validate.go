package state

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateURL validates an absolute http(s) URL.
func ValidateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("url cannot be empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url must use http or https: %q", raw)
	}

	if u.Host == "" {
		return fmt.Errorf("url must include a host: %q", raw)
	}

	return nil
}

// ValidateFallbackTemplate validates a skin fallback URL template.
// It must be a valid URL containing exactly one %s placeholder for the player id.
func ValidateFallbackTemplate(tmpl string) error {
	if strings.Count(tmpl, "%") != 1 || strings.Count(tmpl, "%s") != 1 {
		return fmt.Errorf("template must contain exactly one %%s placeholder: %q", tmpl)
	}

	return ValidateURL(strings.Replace(tmpl, "%s", "id", 1))
}

// ValidateLogLevel validates a log level name.
func ValidateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("invalid log level: %q (must be debug, info, warn, or error)", level)
}

// ValidatePath validates a file path.
// This is a basic check to prevent directory traversal attacks.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if strings.Contains(path, "..") {
		return fmt.Errorf("path cannot contain '..': %q", path)
	}

	return nil
}
