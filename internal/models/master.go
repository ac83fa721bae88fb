package models

// ShiftTiming is one numbered period slot in a shift's time grid.
type ShiftTiming struct {
	Period    int    `json:"period"`
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
}

// Shift is a named daily time grid. Timings are ordered by period index and
// trusted as published; the engine never re-sorts them.
type Shift struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Timings []ShiftTiming `json:"timings"`
}

// Section is a course section with its own timetable document.
type Section struct {
	Name        string `json:"name"`
	TimetableID string `json:"timetableId"`
}

// ShiftDetail assigns a timetable to a shift within a year, optionally split
// further into sections.
type ShiftDetail struct {
	ShiftID     string    `json:"shiftId"`
	TimetableID string    `json:"timetableId,omitempty"`
	Sections    []Section `json:"sections,omitempty"`
}

// YearConfig describes one year of study within a department. Older data
// carries only a year-level TimetableID; newer data routes through Shifts /
// ShiftDetails. The fetch layer resolves the most specific match.
type YearConfig struct {
	Year         string        `json:"year"`
	TimetableID  string        `json:"timetableId,omitempty"`
	Shifts       []string      `json:"shifts,omitempty"`
	ShiftDetails []ShiftDetail `json:"shiftDetails,omitempty"`
}

// Department groups years under a department name.
type Department struct {
	Name  string       `json:"name"`
	Years []YearConfig `json:"years"`
}

// MasterConfig is the published root document: the department/year/section
// catalogue plus the shift time grids shared by all timetables.
type MasterConfig struct {
	Departments []Department `json:"departments"`
	Shifts      []Shift      `json:"shifts"`
}

// FindShift returns the shift with the given id, or nil.
func (m *MasterConfig) FindShift(id string) *Shift {
	if m == nil {
		return nil
	}
	for i := range m.Shifts {
		if m.Shifts[i].ID == id {
			return &m.Shifts[i]
		}
	}
	return nil
}

// UserProfile is the student's course selection, cached locally after setup.
type UserProfile struct {
	Department string `json:"department"`
	Year       string `json:"year"`
	Shift      string `json:"shift"`
	Section    string `json:"section"`
}
