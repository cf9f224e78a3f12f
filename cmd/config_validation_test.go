package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestValidateStartupConfigWithGetterEmpty verifies empty configuration passes validation.
func TestValidateStartupConfigWithGetterEmpty(t *testing.T) {
	err := validateStartupConfigWithGetter(newMapConfigGetter(map[string]any{}))
	require.NoError(t, err)
}

// TestValidateStartupConfigWithGetterDefaults verifies the flag defaults pass validation.
func TestValidateStartupConfigWithGetterDefaults(t *testing.T) {
	cfg := map[string]any{
		"timeout":          "15s",
		"language":         "en",
		"user-agent":       "explain (https://github.com/Laisky/explain)",
		"search-endpoint":  "",
		"summary-endpoint": "",
		"color":            "always",
		"output":           "text",
		"log-level":        "warn",
	}

	err := validateStartupConfigWithGetter(newMapConfigGetter(cfg))
	require.NoError(t, err)
}

// TestValidateStartupConfigWithGetterValidExplicit verifies explicit overrides pass validation.
func TestValidateStartupConfigWithGetterValidExplicit(t *testing.T) {
	cfg := map[string]any{
		"timeout":          3 * time.Second,
		"language":         "zh-yue",
		"search-endpoint":  "http://localhost:8080/w/api.php",
		"summary-endpoint": "https://example.org/api/rest_v1/page/summary",
		"color":            "NEVER",
		"output":           "json",
	}

	err := validateStartupConfigWithGetter(newMapConfigGetter(cfg))
	require.NoError(t, err)
}

// TestValidateStartupConfigWithGetterCollectsAllErrors verifies every violation is reported at once.
func TestValidateStartupConfigWithGetterCollectsAllErrors(t *testing.T) {
	cfg := map[string]any{
		"timeout":          "-1s",
		"language":         "English",
		"user-agent":       " ",
		"search-endpoint":  "ftp://example.org",
		"summary-endpoint": "not a url",
		"color":            "sometimes",
		"output":           "xml",
		"log-level":        "verbose",
	}

	err := validateStartupConfigWithGetter(newMapConfigGetter(cfg))
	require.Error(t, err)
	for _, key := range []string{
		"timeout", "language", "user-agent", "search-endpoint",
		"summary-endpoint", "color", "output", "log-level",
	} {
		require.Contains(t, err.Error(), key)
	}
}

// TestValidateStartupConfigWithGetterBadDuration verifies unparsable durations fail validation.
func TestValidateStartupConfigWithGetterBadDuration(t *testing.T) {
	err := validateStartupConfigWithGetter(newMapConfigGetter(map[string]any{"timeout": "soon"}))
	require.Error(t, err)
	require.Contains(t, err.Error(), "timeout must be a duration")
}

// TestValidateStartupConfigWithGetterNilGetter verifies nil getter input is rejected.
func TestValidateStartupConfigWithGetterNilGetter(t *testing.T) {
	err := validateStartupConfigWithGetter(nil)
	require.Error(t, err)
}

func newMapConfigGetter(root map[string]any) configGetter {
	return func(key string) any {
		if key == "" {
			return nil
		}

		parts := strings.Split(key, ".")
		var current any = root
		for _, part := range parts {
			nextMap, ok := current.(map[string]any)
			if !ok {
				return nil
			}

			next, exists := nextMap[part]
			if !exists {
				return nil
			}
			current = next
		}

		return current
	}
}
