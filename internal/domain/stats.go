package domain

import "time"

// StageStats holds statistics about one stage invocation.
type StageStats struct {
	Stage     string
	Selected  int
	Claimed   int
	Succeeded int
	Rejected  int
	Failed    int
	Skipped   int
	Duration  time.Duration
}
