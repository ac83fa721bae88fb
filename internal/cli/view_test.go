package cli

import (
	"testing"
	"time"
)

func TestGreeting(t *testing.T) {
	tests := []struct {
		name string
		hour int
		want string
	}{
		{name: "early morning", hour: 0, want: "Good Morning"},
		{name: "late morning", hour: 11, want: "Good Morning"},
		{name: "noon", hour: 12, want: "Good Afternoon"},
		{name: "afternoon", hour: 16, want: "Good Afternoon"},
		{name: "evening", hour: 17, want: "Good Evening"},
		{name: "night", hour: 23, want: "Good Evening"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2026, 2, 14, tt.hour, 30, 0, 0, time.UTC)
			if got := Greeting(now); got != tt.want {
				t.Errorf("Greeting(%02d:30) = %q, want %q", tt.hour, got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "Saturday, Feb 14" {
		t.Errorf("FormatDate() = %q, want %q", got, "Saturday, Feb 14")
	}
}
