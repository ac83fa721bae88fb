// Package fetch retrieves the three published JSON documents: the master
// config, a per-course timetable, and the shared academic calendar.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/glitch-xp/loyola-academic-calender/internal/logger"
	"github.com/glitch-xp/loyola-academic-calender/internal/models"
)

// CourseData bundles the two course-specific documents fetched together
// during setup and refresh.
type CourseData struct {
	TimeTable models.TimeTable
	Calendar  models.CalendarMap
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchMasterConfig retrieves the department/year/section catalogue and the
// shared shift time grids.
func (c *Client) FetchMasterConfig(ctx context.Context) (*models.MasterConfig, error) {
	var cfg models.MasterConfig
	if err := c.getJSON(ctx, "master config", "/assets/data/master_config.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FetchCourseData resolves the profile's timetable ID through the master
// config, then fetches the timetable and the shared calendar.
func (c *Client) FetchCourseData(ctx context.Context, profile models.UserProfile) (*CourseData, error) {
	master, err := c.FetchMasterConfig(ctx)
	if err != nil {
		return nil, err
	}

	timetableID, err := ResolveTimetableID(master, profile)
	if err != nil {
		return nil, &DataFetchError{Doc: "timetable", Err: err}
	}

	var data CourseData
	if err := c.getJSON(ctx, "timetable", "/assets/data/timetable/"+timetableID+".json", &data.TimeTable); err != nil {
		return nil, err
	}
	if err := c.getJSON(ctx, "calendar", "/assets/data/calendar.json", &data.Calendar); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) getJSON(ctx context.Context, doc, path string, v any) error {
	url := c.baseURL + path
	requestID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &DataFetchError{Doc: doc, Err: err}
	}
	req.Header.Set("X-Request-ID", requestID)

	logger.Debug("fetching document", "doc", doc, "url", url, "request_id", requestID)

	res, err := c.http.Do(req)
	if err != nil {
		logger.Warn("request failed", "doc", doc, "request_id", requestID, "error", err)
		return &NetworkError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		io.Copy(io.Discard, res.Body)
		logger.Warn("unexpected status", "doc", doc, "request_id", requestID, "status", res.StatusCode)
		return &DataFetchError{Doc: doc, Err: fmt.Errorf("unexpected status %d", res.StatusCode)}
	}

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return &DataFetchError{Doc: doc, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// ResolveTimetableID walks the master config from the profile's department
// and year down through shift details and sections to the most specific
// timetable ID, falling back to the year-level ID for older data.
func ResolveTimetableID(master *models.MasterConfig, profile models.UserProfile) (string, error) {
	var year *models.YearConfig
	for di := range master.Departments {
		if master.Departments[di].Name != profile.Department {
			continue
		}
		for yi := range master.Departments[di].Years {
			if master.Departments[di].Years[yi].Year == profile.Year {
				year = &master.Departments[di].Years[yi]
				break
			}
		}
		break
	}
	if year == nil {
		return "", fmt.Errorf("no timetable for department %q year %q", profile.Department, profile.Year)
	}

	for _, detail := range year.ShiftDetails {
		if detail.ShiftID != profile.Shift {
			continue
		}
		for _, section := range detail.Sections {
			if section.Name == profile.Section && section.TimetableID != "" {
				return section.TimetableID, nil
			}
		}
		if detail.TimetableID != "" {
			return detail.TimetableID, nil
		}
	}

	if year.TimetableID != "" {
		return year.TimetableID, nil
	}
	return "", fmt.Errorf("no timetable for department %q year %q shift %q section %q",
		profile.Department, profile.Year, profile.Shift, profile.Section)
}
