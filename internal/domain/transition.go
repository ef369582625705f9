package domain

import "time"

// Transition is a status change committed by a stage, emitted to observers.
type Transition struct {
	RecordID  int64      `json:"record_id"`
	Stage     string     `json:"stage"`
	From      Status     `json:"from"`
	To        Status     `json:"to"`
	ErrorType *ErrorType `json:"error_type,omitempty"`
	At        time.Time  `json:"at"`
}
