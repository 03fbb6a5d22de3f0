package domain

import (
	"fmt"
	"strings"
)

// ParseWindow accepts one of the Windows labels exactly.
func ParseWindow(s string) (Window, error) {
	return parseOption("window", s, Windows())
}

// ParseSortBy accepts one of the SortOrders labels exactly.
func ParseSortBy(s string) (SortBy, error) {
	return parseOption("sort order", s, SortOrders())
}

// ParseLanguage accepts one of the Languages codes exactly.
func ParseLanguage(s string) (Language, error) {
	return parseOption("language", s, Languages())
}

func parseOption[T ~string](kind, s string, valid []T) (T, error) {
	for _, v := range valid {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid %s %q (valid: %s)", kind, s, JoinOptions(valid))
}

// JoinOptions renders options as a comma separated list.
func JoinOptions[T ~string](opts []T) string {
	parts := make([]string, len(opts))
	for i, o := range opts {
		parts[i] = string(o)
	}
	return strings.Join(parts, ", ")
}
