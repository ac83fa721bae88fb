package constants

const (
	AppName           = "loyolacal"
	Version           = "v0.3.1"
	DefaultConfigPath = "~/.config/loyolacal/config.yaml"
	DefaultCachePath  = "~/.config/loyolacal/loyolacal.db"

	// DefaultBaseURL is the raw-content root of the published data repository.
	DefaultBaseURL = "https://raw.githubusercontent.com/glitch-xp/loyola-academic-calender/main"

	// KeyringService and KeyringUser identify the optional notifier webhook
	// token in the OS keyring.
	KeyringService = "loyolacal"
	KeyringUser    = "notify-webhook-token"

	// DefaultRefreshCron re-fetches remote data every morning while watch
	// mode is running.
	DefaultRefreshCron = "0 6 * * *"

	// NotifyLeadMinutes is how far ahead of a class start the watch-mode
	// reminder fires.
	NotifyLeadMinutes = 5
)

// Cache keys. The remote documents are cached verbatim under these keys so
// that every screen works offline after the first successful fetch.
const (
	KeyUserProfile    = "user_profile"
	KeyMasterConfig   = "master_config"
	KeyTimeTable      = "timetable"
	KeyDayOrderConfig = "day_order_config"
	KeyLastFetch      = "last_fetch_timestamp"
)
