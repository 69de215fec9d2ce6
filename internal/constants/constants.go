package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	// HighRiskWindowMinutes is how recently a player's last game must have
	// ended for them to count as likely to queue again. Boundary inclusive.
	HighRiskWindowMinutes = 15

	// DefaultBatchDelay is the pause between players in a batch run,
	// keeping sequential resolution under the upstream rate limit.
	DefaultBatchDelay = 500 * time.Millisecond
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	// UnknownChampion is returned by asset lookups that miss the table.
	UnknownChampion = "Unknown"
)
