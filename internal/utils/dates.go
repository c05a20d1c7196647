package utils

import (
	"time"

	"github.com/harentsoaR/fair-marriage-api/internal/models"
)

// ParseMarriageDate parses an MM-DD-YYYY review date. Like $dateFromString
// with "%m-%d-%Y", one-digit months and days ("3-7-2021") are accepted.
func ParseMarriageDate(s string) (time.Time, bool) {
	for _, layout := range []string{models.MarriageDateLayout, "1-2-2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
