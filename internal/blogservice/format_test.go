package blogservice

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	testCases := []struct {
		name     string
		in       time.Time
		expected string
	}{
		{
			name:     "afternoon",
			in:       time.Date(2024, time.March, 9, 14, 5, 33, 0, time.UTC),
			expected: "Sat Mar 09 2024 14:05",
		},
		{
			name:     "single digit day is zero padded",
			in:       time.Date(2024, time.July, 1, 9, 7, 0, 0, time.UTC),
			expected: "Mon Jul 01 2024 09:07",
		},
		{
			name:     "midnight",
			in:       time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			expected: "Wed Jan 01 2025 00:00",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := formatTime(tc.in)
			if got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
