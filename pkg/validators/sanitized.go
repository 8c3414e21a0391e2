package validators

import (
	"os"
	"strconv"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize is 4KB (conservative default)
	DefaultMaxInputSize = 4096
	// EnvMaxInputSize is the environment variable to override the default
	EnvMaxInputSize = "FORMTREE_MAX_INPUT_SIZE"
)

// Sanitized records a violation when a text value is larger than limit bytes,
// is not valid UTF-8, or contains control characters other than newline, tab
// and carriage return. A limit <= 0 uses EnvMaxInputSize or DefaultMaxInputSize.
// Non-string values are ignored.
func Sanitized(limit int, message ...any) Validator {
	msg := mustMessage("validators.Sanitized", message, "This value contains invalid characters or is too long.")

	return func(value any, ctx *Context) {
		s, ok := value.(string)
		if !ok {
			return
		}
		size := limit
		if size <= 0 {
			size = getMaxInputSize()
		}
		if len(s) > size || !utf8.ValidString(s) || hasUnsafeControl(s) {
			ctx.AddViolation(ToViolation(msg, value, size))
		}
	}
}

func hasUnsafeControl(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) && !isSafeControl(r) {
			return true
		}
	}
	return false
}

func isSafeControl(r rune) bool {
	return r == '\n' || r == '\t' || r == '\r'
}

func getMaxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
