package onboarding

import (
	"fmt"
	"strings"
)

// ParseMultiSelect reads a multi-select field that may arrive as a list, a
// comma-separated string or a newline-separated string. Entries are trimmed
// and empty entries dropped. The result is never nil.
func ParseMultiSelect(value any) []string {
	out := make([]string, 0)
	switch v := value.(type) {
	case nil:
		return out
	case []string:
		for _, item := range v {
			out = appendTrimmed(out, item)
		}
	case []any:
		for _, item := range v {
			if item == nil {
				continue
			}
			if s, ok := item.(string); ok {
				out = appendTrimmed(out, s)
				continue
			}
			out = appendTrimmed(out, fmt.Sprint(item))
		}
	case string:
		for _, item := range strings.FieldsFunc(v, isSelectSeparator) {
			out = appendTrimmed(out, item)
		}
	}
	return out
}

func isSelectSeparator(r rune) bool {
	return r == ',' || r == '\n' || r == '\r'
}

func appendTrimmed(out []string, s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return out
	}
	return append(out, s)
}
