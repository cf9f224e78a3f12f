package cmd

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	errors "github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"

	"github.com/Laisky/explain/internal/explain"
)

// languageRegexp matches wikipedia language edition codes like "en" or "zh-yue".
var languageRegexp = regexp.MustCompile(`^[a-z]{2,3}(-[a-z]+)*$`)

// configGetter retrieves raw configuration values by key.
type configGetter func(key string) any

// validateStartupConfig validates startup configuration from the shared config source.
// It returns an error when any configured value is malformed or violates constraints.
func validateStartupConfig() error {
	return validateStartupConfigWithGetter(func(key string) any {
		return gconfig.S.Get(key)
	})
}

// validateStartupConfigWithGetter validates startup configuration via a key-value getter.
// It accepts a value getter and returns nil when all configured values are valid.
func validateStartupConfigWithGetter(get configGetter) error {
	if get == nil {
		return errors.New("config getter is nil")
	}

	validationErrs := make([]string, 0)

	validateLookupConfig(get, &validationErrs)
	validateOutputConfig(get, &validationErrs)

	if len(validationErrs) == 0 {
		return nil
	}

	return errors.Errorf("invalid configuration:\n - %s", strings.Join(validationErrs, "\n - "))
}

// validateLookupConfig validates the encyclopedia client settings.
func validateLookupConfig(get configGetter, errs *[]string) {
	validateOptionalDurationPositive(get, "timeout", errs)
	validateOptionalStringNonEmpty(get, "user-agent", errs)
	validateOptionalURL(get, "search-endpoint", errs)
	validateOptionalURL(get, "summary-endpoint", errs)

	raw := get("language")
	if raw == nil {
		return
	}
	lang, parseErr := parseStrictString(raw)
	if parseErr != nil || !languageRegexp.MatchString(strings.TrimSpace(lang)) {
		appendValidationError(errs, "language must be a wikipedia language code like \"en\"")
	}
}

// validateOutputConfig validates presentation settings.
func validateOutputConfig(get configGetter, errs *[]string) {
	validateOptionalEnum(get, "color", errs,
		string(explain.ColorAlways), string(explain.ColorAuto), string(explain.ColorNever))
	validateOptionalEnum(get, "output", errs,
		string(explain.OutputText), string(explain.OutputJSON))
	validateOptionalEnum(get, "log-level", errs,
		"debug", "info", "warn", "error")
}

// validateOptionalDurationPositive validates an optionally configured positive duration key.
// It accepts a getter, the key, and an error collector pointer and appends validation errors.
func validateOptionalDurationPositive(get configGetter, key string, errs *[]string) {
	raw := get(key)
	if raw == nil {
		return
	}

	value, parseErr := parseStrictDuration(raw)
	if parseErr != nil {
		appendValidationError(errs, "%s must be a duration like \"15s\"", key)
		return
	}

	if value <= 0 {
		appendValidationError(errs, "%s must be > 0", key)
	}
}

// validateOptionalEnum validates an optionally configured string key against allowed values.
func validateOptionalEnum(get configGetter, key string, errs *[]string, allowed ...string) {
	raw := get(key)
	if raw == nil {
		return
	}

	value, parseErr := parseStrictString(raw)
	if parseErr == nil {
		normalized := strings.ToLower(strings.TrimSpace(value))
		for _, candidate := range allowed {
			if normalized == candidate {
				return
			}
		}
	}

	appendValidationError(errs, "%s must be one of [%s]", key, strings.Join(allowed, ", "))
}

// validateOptionalURL validates an optionally configured absolute URL key.
// An empty value means unset.
func validateOptionalURL(get configGetter, key string, errs *[]string) {
	raw := get(key)
	if raw == nil {
		return
	}

	value, parseErr := parseStrictString(raw)
	if parseErr != nil {
		appendValidationError(errs, "%s must be a string URL", key)
		return
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host == "" ||
		(parsed.Scheme != "http" && parsed.Scheme != "https") {
		appendValidationError(errs, "%s must be a valid absolute http(s) URL", key)
	}
}

// validateOptionalStringNonEmpty validates an optionally configured non-empty string key.
// It accepts a getter, the key, and an error collector pointer and appends validation errors.
func validateOptionalStringNonEmpty(get configGetter, key string, errs *[]string) {
	raw := get(key)
	if raw == nil {
		return
	}

	value, parseErr := parseStrictString(raw)
	if parseErr != nil {
		appendValidationError(errs, "%s must be a string", key)
		return
	}

	if strings.TrimSpace(value) == "" {
		appendValidationError(errs, "%s must not be empty", key)
	}
}

// parseStrictDuration parses a value as a duration.
// Strings use time.ParseDuration, integers are taken as seconds.
func parseStrictDuration(value any) (time.Duration, error) {
	switch v := value.(type) {
	case time.Duration:
		return v, nil
	case int:
		return time.Duration(v) * time.Second, nil
	case int64:
		return time.Duration(v) * time.Second, nil
	case string:
		parsed, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return 0, errors.Wrap(err, "parse duration")
		}
		return parsed, nil
	default:
		return 0, errors.Errorf("unsupported duration type %T", value)
	}
}

// parseStrictString parses a value as a strict string.
// It accepts a raw value and returns the parsed string and an error when parsing fails.
func parseStrictString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", errors.Errorf("unsupported string type %T", value)
	}
}

// appendValidationError appends a formatted validation error to the collector.
// It accepts an error slice pointer, a format string, and format arguments, and has no return value.
func appendValidationError(errs *[]string, format string, args ...any) {
	if errs == nil {
		return
	}
	*errs = append(*errs, fmt.Sprintf(format, args...))
}
