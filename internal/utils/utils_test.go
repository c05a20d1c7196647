package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMarriageDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"03-15-2020", time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"12-31-2019", time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC), true},
		{"3-7-2021", time.Date(2021, 3, 7, 0, 0, 0, 0, time.UTC), true},
		{"12-31-2019 ", time.Time{}, false},
		{"15-03-2020", time.Time{}, false},
		{"2020-03-15", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseMarriageDate(tt.in)
			require.Equal(t, tt.ok, ok)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	for _, bad := range []string{"", "abc", "4.2", "-1"} {
		_, err := ParseID(bad)
		assert.Error(t, err, bad)
	}
}
