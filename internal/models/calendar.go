package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// DayOrderCode is the raw day-order field of a calendar entry. The published
// calendar is hand-maintained and encodes the value inconsistently: a JSON
// number (3), a labeled string ("Day-3"), or null. The code is kept as-is
// here; schedule.ResolveDay normalizes it to an integer.
type DayOrderCode struct {
	Int *int
	Str *string
}

// IsNull reports whether no value was present.
func (c DayOrderCode) IsNull() bool { return c.Int == nil && c.Str == nil }

func (c *DayOrderCode) UnmarshalJSON(data []byte) error {
	*c = DayOrderCode{}
	if string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		c.Str = &s
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("day order must be a number, string, or null: %w", err)
	}
	n := int(f)
	c.Int = &n
	return nil
}

func (c DayOrderCode) MarshalJSON() ([]byte, error) {
	switch {
	case c.Int != nil:
		return []byte(strconv.Itoa(*c.Int)), nil
	case c.Str != nil:
		return json.Marshal(*c.Str)
	default:
		return []byte("null"), nil
	}
}

// DayEntry is one calendar date's record. IsHoliday and DayOrder are
// independent fields: holidays conventionally carry a null day order, but the
// data does not guarantee it.
type DayEntry struct {
	DayOrder  DayOrderCode `json:"dayOrder"`
	IsHoliday bool         `json:"isHoliday"`
	Event     string       `json:"event,omitempty"`
}

// CalendarMap maps a YYYY-MM-DD date key to its entry. A date absent from
// the map has no data, which is distinct from an explicit holiday.
type CalendarMap map[string]DayEntry

// EventInfo is a derived upcoming-event record, ordered by ascending date.
type EventInfo struct {
	Name      string `json:"name"`
	Date      string `json:"date"` // YYYY-MM-DD
	DaysLeft  int    `json:"daysLeft"`
	IsHoliday bool   `json:"isHoliday"`
}
