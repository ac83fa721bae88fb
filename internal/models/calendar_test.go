package models

import (
	"encoding/json"
	"testing"
)

func TestDayOrderCodeUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantInt *int
		wantStr *string
		wantErr bool
	}{
		{
			name:    "number",
			raw:     `{"dayOrder": 3, "isHoliday": false}`,
			wantInt: intPtr(3),
		},
		{
			name:    "labeled string",
			raw:     `{"dayOrder": "Day-3", "isHoliday": false}`,
			wantStr: strPtr("Day-3"),
		},
		{
			name: "null",
			raw:  `{"dayOrder": null, "isHoliday": true, "event": "Pongal"}`,
		},
		{
			name: "absent",
			raw:  `{"isHoliday": true}`,
		},
		{
			name:    "object is rejected",
			raw:     `{"dayOrder": {"n": 3}, "isHoliday": false}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entry DayEntry
			err := json.Unmarshal([]byte(tt.raw), &entry)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tt.wantInt != nil {
				if entry.DayOrder.Int == nil || *entry.DayOrder.Int != *tt.wantInt {
					t.Errorf("DayOrder.Int = %v, want %d", entry.DayOrder.Int, *tt.wantInt)
				}
			}
			if tt.wantStr != nil {
				if entry.DayOrder.Str == nil || *entry.DayOrder.Str != *tt.wantStr {
					t.Errorf("DayOrder.Str = %v, want %q", entry.DayOrder.Str, *tt.wantStr)
				}
			}
			if tt.wantInt == nil && tt.wantStr == nil && !entry.DayOrder.IsNull() {
				t.Errorf("DayOrder = %+v, want null", entry.DayOrder)
			}
		})
	}
}

func TestDayOrderCodeRoundTrip(t *testing.T) {
	for _, raw := range []string{`3`, `"Day-3"`, `null`} {
		var c DayOrderCode
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			t.Fatalf("Unmarshal(%s): %v", raw, err)
		}
		out, err := json.Marshal(c)
		if err != nil {
			t.Fatalf("Marshal(%s): %v", raw, err)
		}
		if string(out) != raw {
			t.Errorf("round trip of %s = %s", raw, out)
		}
	}
}

func TestTimeTableIntegerKeys(t *testing.T) {
	raw := `{"1": [{"name": "Tamil", "code": "TAM101"}], "2": []}`
	var tt TimeTable
	if err := json.Unmarshal([]byte(raw), &tt); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(tt[1]) != 1 || tt[1][0].Code != "TAM101" {
		t.Errorf("day order 1 = %+v, want one subject TAM101", tt[1])
	}
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }
