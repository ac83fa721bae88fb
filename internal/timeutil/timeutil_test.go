package timeutil

import (
	"errors"
	"testing"
	"time"
)

func TestDateKeyUsesLocalFields(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	// 00:30 and 23:30 on the same local day straddle UTC midnight in
	// UTC+5:30, which is exactly where a UTC-based key would split the day.
	early := time.Date(2026, time.February, 14, 0, 30, 0, 0, kolkata)
	late := time.Date(2026, time.February, 14, 23, 30, 0, 0, kolkata)

	if got, want := DateKey(early), "2026-02-14"; got != want {
		t.Errorf("DateKey(early) = %q, want %q", got, want)
	}
	if DateKey(early) != DateKey(late) {
		t.Errorf("same local day produced different keys: %q vs %q", DateKey(early), DateKey(late))
	}
}

func TestDateKeyZeroPadding(t *testing.T) {
	d := time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC)
	if got, want := DateKey(d), "2026-03-05"; got != want {
		t.Errorf("DateKey() = %q, want %q", got, want)
	}
}

func TestToMinutes(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "morning", in: "08:30", want: 510},
		{name: "midnight", in: "00:00", want: 0},
		{name: "end of day", in: "23:59", want: 1439},
		{name: "missing colon", in: "0830", wantErr: true},
		{name: "non-numeric hours", in: "ab:30", wantErr: true},
		{name: "non-numeric minutes", in: "08:cd", wantErr: true},
		{name: "hour out of range", in: "24:00", wantErr: true},
		{name: "minute out of range", in: "08:60", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMinutes(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToMinutes(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrFormat) {
					t.Errorf("ToMinutes(%q) error = %v, want ErrFormat", tt.in, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{
			name: "same day",
			a:    time.Date(2026, 2, 14, 9, 0, 0, 0, loc),
			b:    time.Date(2026, 2, 14, 23, 0, 0, 0, loc),
			want: 0,
		},
		{
			name: "next day ignores clock time",
			a:    time.Date(2026, 2, 14, 23, 0, 0, 0, loc),
			b:    time.Date(2026, 2, 15, 1, 0, 0, 0, loc),
			want: 1,
		},
		{
			name: "spans a month boundary",
			a:    time.Date(2026, 1, 31, 12, 0, 0, 0, loc),
			b:    time.Date(2026, 2, 2, 12, 0, 0, 0, loc),
			want: 2,
		},
		{
			name: "negative when b is earlier",
			a:    time.Date(2026, 2, 15, 0, 0, 0, 0, loc),
			b:    time.Date(2026, 2, 14, 0, 0, 0, 0, loc),
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	got, err := ParseDate("2026-02-14", loc)
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.February || got.Day() != 14 {
		t.Errorf("ParseDate() = %v, want 2026-02-14", got)
	}
	if got.Hour() != 0 || got.Minute() != 0 || got.Location() != loc {
		t.Errorf("ParseDate() = %v, want midnight in %v", got, loc)
	}

	if _, err := ParseDate("2026/02/14", loc); err == nil {
		t.Error("ParseDate() accepted slash-separated date")
	}
}

func TestValidateTimezone(t *testing.T) {
	for tz, wantOK := range map[string]bool{
		"":                 true,
		"Local":            true,
		"UTC":              true,
		"Asia/Kolkata":     true,
		"Invalid/Timezone": false,
	} {
		err := ValidateTimezone(tz)
		if gotOK := err == nil; gotOK != wantOK {
			t.Errorf("ValidateTimezone(%q) = %v, want ok=%v", tz, err, wantOK)
		}
	}
}
