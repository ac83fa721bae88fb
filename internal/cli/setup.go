package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/glitch-xp/loyola-academic-calender/internal/logger"
	"github.com/glitch-xp/loyola-academic-calender/internal/models"
	"github.com/glitch-xp/loyola-academic-calender/internal/storage"
)

type SetupCmd struct{}

// Run walks the first-run selection flow: fetch the master config, ask for
// department/year/shift/section, then fetch and cache the course documents.
// Re-running replaces the previous selection and its cached documents.
func (c *SetupCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	fetchCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	master, err := ctx.Client.FetchMasterConfig(fetchCtx)
	if err != nil {
		return err
	}

	profile, err := selectCourse(master)
	if err != nil {
		return err
	}

	data, err := ctx.Client.FetchCourseData(fetchCtx, *profile)
	if err != nil {
		return err
	}

	// Drop the previous selection's documents before writing the new ones.
	if err := storage.ClearUser(ctx.Store); err != nil {
		return err
	}
	if err := storage.SaveProfile(ctx.Store, *profile); err != nil {
		return err
	}
	if err := storage.SaveMasterConfig(ctx.Store, *master); err != nil {
		return err
	}
	if err := storage.SaveTimeTable(ctx.Store, data.TimeTable); err != nil {
		return err
	}
	if err := storage.SaveCalendar(ctx.Store, data.Calendar); err != nil {
		return err
	}
	if err := storage.StampLastFetch(ctx.Store, time.Now()); err != nil {
		return err
	}

	logger.Info("setup completed", "department", profile.Department, "year", profile.Year,
		"shift", profile.Shift, "section", profile.Section)
	fmt.Printf("All set: %s, year %s, section %s. Try 'loyolacal today'.\n",
		profile.Department, profile.Year, profile.Section)
	return nil
}

// selectCourse runs the selection forms one level at a time, since each
// level's options depend on the previous answer.
func selectCourse(master *models.MasterConfig) (*models.UserProfile, error) {
	if len(master.Departments) == 0 {
		return nil, fmt.Errorf("master config lists no departments")
	}

	var profile models.UserProfile

	deptNames := make([]string, len(master.Departments))
	for i, dept := range master.Departments {
		deptNames[i] = dept.Name
	}
	if err := selectOne("Department", deptNames, &profile.Department); err != nil {
		return nil, err
	}

	var dept *models.Department
	for i := range master.Departments {
		if master.Departments[i].Name == profile.Department {
			dept = &master.Departments[i]
		}
	}

	yearNames := make([]string, len(dept.Years))
	for i, year := range dept.Years {
		yearNames[i] = year.Year
	}
	if err := selectOne("Year", yearNames, &profile.Year); err != nil {
		return nil, err
	}

	var year *models.YearConfig
	for i := range dept.Years {
		if dept.Years[i].Year == profile.Year {
			year = &dept.Years[i]
		}
	}

	shifts := shiftOptions(master, year)
	if len(shifts) == 1 {
		profile.Shift = shifts[0]
	} else if len(shifts) > 1 {
		if err := selectOne("Shift", shifts, &profile.Shift); err != nil {
			return nil, err
		}
	}

	sections := sectionOptions(year, profile.Shift)
	if len(sections) == 1 {
		profile.Section = sections[0]
	} else if len(sections) > 1 {
		if err := selectOne("Section", sections, &profile.Section); err != nil {
			return nil, err
		}
	}

	return &profile, nil
}

func selectOne(title string, options []string, value *string) error {
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(huh.NewOptions(options...)...).
			Value(value),
	)).Run()
}

func shiftOptions(master *models.MasterConfig, year *models.YearConfig) []string {
	if len(year.Shifts) > 0 {
		return year.Shifts
	}
	var ids []string
	for _, detail := range year.ShiftDetails {
		ids = append(ids, detail.ShiftID)
	}
	if len(ids) > 0 {
		return ids
	}
	for _, shift := range master.Shifts {
		ids = append(ids, shift.ID)
	}
	return ids
}

func sectionOptions(year *models.YearConfig, shiftID string) []string {
	for _, detail := range year.ShiftDetails {
		if detail.ShiftID != shiftID {
			continue
		}
		var names []string
		for _, section := range detail.Sections {
			names = append(names, section.Name)
		}
		return names
	}
	return nil
}
