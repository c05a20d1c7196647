package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseID parses a numeric path identifier such as a bioId.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be an integer", raw)
	}
	if id < 0 {
		return 0, fmt.Errorf("invalid id %q: must not be negative", raw)
	}
	return id, nil
}
