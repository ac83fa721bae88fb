package storage

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/glitch-xp/loyola-academic-calender/internal/constants"
	"github.com/glitch-xp/loyola-academic-calender/internal/models"
)

func newTestStores(t *testing.T) map[string]Provider {
	t.Helper()
	dir := t.TempDir()
	return map[string]Provider{
		"json":   NewFromPath(filepath.Join(dir, "cache.json")),
		"sqlite": NewFromPath(filepath.Join(dir, "cache.db")),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, store := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init: %v", err)
			}
			defer store.Close()
			if err := store.Load(); err != nil {
				t.Fatalf("Load: %v", err)
			}

			profile := models.UserProfile{Department: "B.Com CA", Year: "II", Shift: "shift1", Section: "A"}
			if err := SaveProfile(store, profile); err != nil {
				t.Fatalf("SaveProfile: %v", err)
			}

			got, err := GetProfile(store)
			if err != nil {
				t.Fatalf("GetProfile: %v", err)
			}
			if got == nil || *got != profile {
				t.Errorf("GetProfile() = %+v, want %+v", got, profile)
			}

			// Overwrite wins.
			profile.Section = "B"
			if err := SaveProfile(store, profile); err != nil {
				t.Fatalf("SaveProfile overwrite: %v", err)
			}
			got, _ = GetProfile(store)
			if got.Section != "B" {
				t.Errorf("Section after overwrite = %q, want B", got.Section)
			}
		})
	}
}

func TestMissingKeyIsNotAnError(t *testing.T) {
	for name, store := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init: %v", err)
			}
			defer store.Close()

			profile, err := GetProfile(store)
			if err != nil {
				t.Fatalf("GetProfile on empty store: %v", err)
			}
			if profile != nil {
				t.Errorf("GetProfile() = %+v, want nil", profile)
			}

			cal, err := GetCalendar(store)
			if err != nil {
				t.Fatalf("GetCalendar on empty store: %v", err)
			}
			if cal != nil {
				t.Errorf("GetCalendar() = %+v, want nil", cal)
			}
		})
	}
}

func TestClearUser(t *testing.T) {
	for name, store := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init: %v", err)
			}
			defer store.Close()

			one := 1
			if err := SaveProfile(store, models.UserProfile{Department: "BSc CS"}); err != nil {
				t.Fatal(err)
			}
			if err := SaveCalendar(store, models.CalendarMap{"2026-02-14": {DayOrder: models.DayOrderCode{Int: &one}}}); err != nil {
				t.Fatal(err)
			}
			if err := SaveMasterConfig(store, models.MasterConfig{}); err != nil {
				t.Fatal(err)
			}

			if err := ClearUser(store); err != nil {
				t.Fatalf("ClearUser: %v", err)
			}

			if profile, _ := GetProfile(store); profile != nil {
				t.Error("profile survived ClearUser")
			}
			if cal, _ := GetCalendar(store); cal != nil {
				t.Error("calendar survived ClearUser")
			}
			// Master config is shared; it must survive.
			var cfg models.MasterConfig
			if ok, _ := store.Get(constants.KeyMasterConfig, &cfg); !ok {
				t.Error("master config did not survive ClearUser")
			}
		})
	}
}

func TestLastFetchStamp(t *testing.T) {
	for name, store := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init: %v", err)
			}
			defer store.Close()

			got, err := LastFetch(store)
			if err != nil {
				t.Fatalf("LastFetch on empty store: %v", err)
			}
			if !got.IsZero() {
				t.Errorf("LastFetch() = %v, want zero", got)
			}

			at := time.Date(2026, 2, 14, 6, 0, 0, 0, time.UTC)
			if err := StampLastFetch(store, at); err != nil {
				t.Fatalf("StampLastFetch: %v", err)
			}
			got, err = LastFetch(store)
			if err != nil {
				t.Fatalf("LastFetch: %v", err)
			}
			if !got.Equal(at) {
				t.Errorf("LastFetch() = %v, want %v", got, at)
			}
		})
	}
}

func TestLoadBeforeInitFails(t *testing.T) {
	for name, store := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Load(); err == nil {
				t.Error("Load() on uninitialized store succeeded")
			}
		})
	}
}

// Watch mode reads from its tick goroutines while the scheduled refresh
// writes, so a loaded store must tolerate concurrent Get/Set/Remove. Run
// with -race.
func TestConcurrentAccess(t *testing.T) {
	for name, store := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init: %v", err)
			}
			defer store.Close()

			if err := SaveProfile(store, models.UserProfile{Department: "BSc CS", Section: "A"}); err != nil {
				t.Fatal(err)
			}

			var wg sync.WaitGroup
			for w := 0; w < 4; w++ {
				wg.Add(1)
				go func(w int) {
					defer wg.Done()
					for i := 0; i < 50; i++ {
						profile := models.UserProfile{Department: "BSc CS", Section: fmt.Sprintf("%d-%d", w, i)}
						if err := SaveProfile(store, profile); err != nil {
							t.Errorf("SaveProfile: %v", err)
							return
						}
						if err := StampLastFetch(store, time.Now()); err != nil {
							t.Errorf("StampLastFetch: %v", err)
							return
						}
					}
				}(w)
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < 50; i++ {
						if _, err := GetProfile(store); err != nil {
							t.Errorf("GetProfile: %v", err)
							return
						}
						if _, err := LastFetch(store); err != nil {
							t.Errorf("LastFetch: %v", err)
							return
						}
					}
				}()
			}
			wg.Wait()

			profile, err := GetProfile(store)
			if err != nil {
				t.Fatalf("GetProfile after workers: %v", err)
			}
			if profile == nil || profile.Department != "BSc CS" {
				t.Errorf("GetProfile() = %+v after concurrent writes", profile)
			}
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := SaveProfile(store, models.UserProfile{Department: "BA English"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer reopened.Close()

	profile, err := GetProfile(reopened)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile == nil || profile.Department != "BA English" {
		t.Errorf("GetProfile() = %+v after reopen", profile)
	}
}
