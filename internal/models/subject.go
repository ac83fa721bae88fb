package models

// Subject is one entry in a day-order's ordered class list. Subjects carry no
// intrinsic time; clock times are attached positionally from the selected
// shift's timing table.
type Subject struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Room    string `json:"room,omitempty"`
	Teacher string `json:"teacher,omitempty"`
}

// TimeTable maps a day-order (1-6) to its ordered subject list.
type TimeTable map[int][]Subject

// EnrichedSubject is a Subject with its concrete period timing attached.
type EnrichedSubject struct {
	Subject
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
	Period    int    `json:"period"`
}

// ClassStatus classifies "now" relative to the day's schedule.
type ClassStatus string

const (
	StatusBefore  ClassStatus = "before"  // before the first class starts
	StatusDuring  ClassStatus = "during"  // inside a class interval
	StatusBetween ClassStatus = "between" // in a gap between two classes
	StatusAfter   ClassStatus = "after"   // at/after the last class's end
)

// NextClassInfo is the live view of the schedule at a given instant. It is
// recomputed on every load and on the watch-mode tick, never persisted.
type NextClassInfo struct {
	Current          *EnrichedSubject `json:"current"`
	Next             *EnrichedSubject `json:"next"`
	Status           ClassStatus      `json:"status"`
	MinutesUntilNext int              `json:"minutes_until_next"`
}
