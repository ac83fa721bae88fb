package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mitchellh/go-ps"
	"github.com/robfig/cron/v3"

	"github.com/glitch-xp/loyola-academic-calender/internal/keyring"
	"github.com/glitch-xp/loyola-academic-calender/internal/logger"
	"github.com/glitch-xp/loyola-academic-calender/internal/notifier"
	"github.com/glitch-xp/loyola-academic-calender/internal/schedule"
	"github.com/glitch-xp/loyola-academic-calender/internal/timeutil"
	"github.com/glitch-xp/loyola-academic-calender/internal/tui"
)

type WatchCmd struct {
	NoRefresh bool `help:"Disable the scheduled background refresh."`
	NoNotify  bool `help:"Disable webhook reminders."`
}

// Run starts the live schedule view. A cron job refreshes the cache in the
// background, and a minute loop fires webhook reminders ahead of each class.
func (c *WatchCmd) Run(ctx *Context) error {
	if err := ensureSingleInstance(); err != nil {
		return err
	}
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	snap, err := buildSnapshot(ctx)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(*snap, ctx.Now), tea.WithAltScreen())

	var sched *cron.Cron
	if !c.NoRefresh {
		sched = cron.New()
		_, err := sched.AddFunc(ctx.Config.RefreshCron, func() {
			p.Send(tui.RefreshStartedMsg{})
			msg := tui.SnapshotMsg{}
			if err := Refresh(ctx); err != nil {
				logger.Error("background refresh failed", "error", err)
				msg.Err = err
			} else if snap, err := buildSnapshot(ctx); err != nil {
				msg.Err = err
			} else {
				msg.Snapshot = *snap
			}
			p.Send(msg)
		})
		if err != nil {
			return fmt.Errorf("invalid refresh_cron %q: %w", ctx.Config.RefreshCron, err)
		}
		sched.Start()
		defer sched.Stop()
	}

	stopNotify := make(chan struct{})
	defer close(stopNotify)
	if !c.NoNotify && ctx.Config.Notify.Enabled {
		go c.notifyLoop(ctx, stopNotify)
	}

	// Roll the snapshot over at each new minute so the view crosses midnight.
	go func() {
		lastKey := snap.DateKey
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-stopNotify:
				return
			case <-ticker.C:
				key := timeutil.DateKey(ctx.Now())
				if key == lastKey {
					continue
				}
				lastKey = key
				if snap, err := buildSnapshot(ctx); err == nil {
					p.Send(tui.SnapshotMsg{Snapshot: *snap})
				}
			}
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}

// notifyLoop sends a webhook reminder once per class, at the configured lead
// time before its start.
func (c *WatchCmd) notifyLoop(ctx *Context, stop <-chan struct{}) {
	token, err := keyring.GetToken()
	if err != nil {
		logger.Warn("keyring unavailable, sending reminders without a token", "error", err)
	}
	n := notifier.New(ctx.Config.Notify.WebhookURL, token)
	lead := ctx.Config.Notify.LeadMinutes

	notified := make(map[string]bool)
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			now := ctx.Now()
			view, err := ctx.LoadDayView(now)
			if err != nil || view.Resolved == nil || view.Resolved.IsHoliday {
				continue
			}
			nowMin := timeutil.MinuteOfDay(now)
			for i := range view.Subjects {
				subject := &view.Subjects[i]
				startMin, err := timeutil.ToMinutes(subject.StartTime)
				if err != nil {
					continue
				}
				key := fmt.Sprintf("%s/%d", timeutil.DateKey(now), subject.Period)
				if notified[key] || nowMin != startMin-lead {
					continue
				}
				notified[key] = true
				text := fmt.Sprintf("%s starts at %s", subject.Name, subject.StartTime)
				if subject.Room != "" {
					text += " in " + subject.Room
				}
				if err := n.Notify("Class reminder", text); err != nil {
					logger.Error("failed to send reminder", "subject", subject.Name, "error", err)
				}
			}
		}
	}
}

func buildSnapshot(ctx *Context) (*tui.Snapshot, error) {
	now := ctx.Now()
	view, err := ctx.LoadDayView(now)
	if err != nil {
		return nil, err
	}
	return &tui.Snapshot{
		DateKey:  timeutil.DateKey(now),
		Resolved: view.Resolved,
		Subjects: view.Subjects,
		Event:    schedule.NextEvent(view.Calendar, now),
	}, nil
}

// ensureSingleInstance refuses to start when another watch process is already
// running, since two instances would double-send reminders.
func ensureSingleInstance() error {
	procs, err := ps.Processes()
	if err != nil {
		// Process listing is best effort, start anyway.
		logger.Warn("failed to list processes", "error", err)
		return nil
	}
	self := os.Getpid()
	for _, proc := range procs {
		if proc.Pid() == self {
			continue
		}
		if proc.Executable() == "loyolacal" {
			return fmt.Errorf("another loyolacal process is already running (pid %d)", proc.Pid())
		}
	}
	return nil
}
