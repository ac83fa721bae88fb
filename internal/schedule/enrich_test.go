package schedule

import (
	"testing"

	"github.com/glitch-xp/loyola-academic-calender/internal/models"
)

func morningShiftConfig() *models.MasterConfig {
	return &models.MasterConfig{
		Shifts: []models.Shift{
			{
				ID:   "shift1",
				Name: "Morning",
				Timings: []models.ShiftTiming{
					{Period: 1, StartTime: "08:30", EndTime: "09:25"},
					{Period: 2, StartTime: "09:25", EndTime: "10:20"},
				},
			},
		},
	}
}

func TestEnrichSubjects(t *testing.T) {
	subjects := []models.Subject{
		{Name: "Tamil", Code: "TAM101"},
		{Name: "English", Code: "ENG101"},
	}

	got := EnrichSubjects(subjects, "shift1", morningShiftConfig())
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	want := []models.EnrichedSubject{
		{Subject: subjects[0], StartTime: "08:30", EndTime: "09:25", Period: 1},
		{Subject: subjects[1], StartTime: "09:25", EndTime: "10:20", Period: 2},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("subject %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestEnrichSubjectsUnknownShift(t *testing.T) {
	subjects := []models.Subject{
		{Name: "Tamil", Code: "TAM101"},
		{Name: "English", Code: "ENG101"},
	}

	got := EnrichSubjects(subjects, "unknownShift", morningShiftConfig())
	for i, sub := range got {
		if sub.StartTime != "00:00" || sub.EndTime != "00:00" {
			t.Errorf("subject %d times = %s-%s, want 00:00-00:00", i, sub.StartTime, sub.EndTime)
		}
		if sub.Period != i+1 {
			t.Errorf("subject %d period = %d, want %d", i, sub.Period, i+1)
		}
	}
}

func TestEnrichSubjectsNilConfig(t *testing.T) {
	got := EnrichSubjects([]models.Subject{{Name: "Tamil", Code: "TAM101"}}, "shift1", nil)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].StartTime != "00:00" || got[0].EndTime != "00:00" || got[0].Period != 1 {
		t.Errorf("degraded timing = %+v", got[0])
	}
}

func TestEnrichSubjectsLongerThanTimings(t *testing.T) {
	subjects := []models.Subject{
		{Name: "Tamil", Code: "TAM101"},
		{Name: "English", Code: "ENG101"},
		{Name: "Maths", Code: "MAT101"},
	}

	// Three subjects against the two-period shift: the first two get real
	// timings, the tail degrades per-index without failing the rest.
	got := EnrichSubjects(subjects, "shift1", morningShiftConfig())
	if got[1].StartTime != "09:25" {
		t.Errorf("subject 1 start = %s, want 09:25", got[1].StartTime)
	}
	if got[2].StartTime != "00:00" || got[2].EndTime != "00:00" || got[2].Period != 3 {
		t.Errorf("tail subject = %+v, want degraded timing with period 3", got[2])
	}
}

func TestEnrichSubjectsEmpty(t *testing.T) {
	got := EnrichSubjects(nil, "shift1", morningShiftConfig())
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
