package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glitch-xp/loyola-academic-calender/internal/constants"
	"github.com/glitch-xp/loyola-academic-calender/internal/models"
	"github.com/glitch-xp/loyola-academic-calender/internal/schedule"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)

	classStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(1, 0).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(44).
			Align(lipgloss.Center)

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	holidayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)
)

// Snapshot is one day's worth of data for the live view. The watch loop
// rebuilds it after every background refresh and at midnight rollover.
type Snapshot struct {
	DateKey  string
	Resolved *schedule.ResolvedDay
	Subjects []models.EnrichedSubject
	Event    *models.EventInfo
}

type TickMsg time.Time

// SnapshotMsg replaces the model's day data, usually after a refresh.
type SnapshotMsg struct {
	Snapshot Snapshot
	Err      error
}

// RefreshStartedMsg flips the spinner on while a background fetch runs.
type RefreshStartedMsg struct{}

type Model struct {
	snapshot   Snapshot
	now        func() time.Time
	time       time.Time
	spinner    spinner.Model
	refreshing bool
	lastErr    error
	width      int
	height     int
}

func NewModel(snap Snapshot, now func() time.Time) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return Model{
		snapshot: snap,
		now:      now,
		time:     now(),
		spinner:  sp,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case TickMsg:
		m.time = m.now()
		return m, tick()
	case RefreshStartedMsg:
		m.refreshing = true
		return m, m.spinner.Tick
	case SnapshotMsg:
		m.refreshing = false
		m.lastErr = msg.Err
		if msg.Err == nil {
			m.snapshot = msg.Snapshot
		}
	case spinner.TickMsg:
		if m.refreshing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View() string {
	header := titleStyle.Render(constants.AppName + "  " + m.time.Format(constants.TimeFormat))

	content := lipgloss.JoinVertical(lipgloss.Center, header, m.bodyView())

	var footer string
	switch {
	case m.refreshing:
		footer = m.spinner.View() + " refreshing..."
	case m.lastErr != nil:
		footer = mutedStyle.Render(fmt.Sprintf("refresh failed: %v", m.lastErr))
	default:
		footer = mutedStyle.Render("q to quit")
	}
	content = lipgloss.JoinVertical(lipgloss.Center, content, footer)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m Model) bodyView() string {
	snap := m.snapshot

	if snap.Resolved != nil && snap.Resolved.IsHoliday {
		label := "Holiday"
		if snap.Resolved.Event != "" {
			label = "Holiday: " + snap.Resolved.Event
		}
		return holidayStyle.Render(label)
	}
	if snap.Resolved == nil || snap.Resolved.DayOrder == nil {
		return mutedStyle.Render("No day order for " + snap.DateKey)
	}
	if len(snap.Subjects) == 0 {
		return mutedStyle.Render(fmt.Sprintf("Day Order %d, no classes", *snap.Resolved.DayOrder))
	}

	info := schedule.Track(snap.Subjects, m.time)
	if info == nil {
		return mutedStyle.Render("No classes today")
	}

	var lines []string
	switch info.Status {
	case models.StatusBefore:
		lines = append(lines,
			timeStyle.Render("First class at "+info.Next.StartTime),
			classStyle.Render(info.Next.Name),
			mutedStyle.Render(fmt.Sprintf("starts in %d min", info.MinutesUntilNext)),
		)
	case models.StatusDuring:
		lines = append(lines,
			timeStyle.Render(fmt.Sprintf("%s - %s", info.Current.StartTime, info.Current.EndTime)),
			classStyle.Render(info.Current.Name),
		)
		if info.Next != nil {
			lines = append(lines, mutedStyle.Render(
				fmt.Sprintf("next: %s in %d min", info.Next.Name, info.MinutesUntilNext)))
		} else {
			lines = append(lines, mutedStyle.Render("last class of the day"))
		}
	case models.StatusBetween:
		lines = append(lines,
			timeStyle.Render("Break"),
			classStyle.Render(info.Next.Name),
			mutedStyle.Render(fmt.Sprintf("starts in %d min", info.MinutesUntilNext)),
		)
	case models.StatusAfter:
		lines = append(lines, mutedStyle.Render("Classes are done for today"))
	}

	if snap.Event != nil {
		lines = append(lines, mutedStyle.Render(
			fmt.Sprintf("upcoming: %s (%s)", snap.Event.Name, snap.Event.Date)))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
