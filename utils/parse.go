package utils

import (
	"strconv"
	"strings"
)

// ParseID parses a positive integer path identifier.
func ParseID(s string) (uint, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}
