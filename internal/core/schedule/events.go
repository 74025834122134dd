package schedule

import (
	"time"

	"praymate/internal/core/model"
)

// EventType defines the type of scheduler event.
type EventType string

const (
	// EventTimeUpdate is emitted on every tick.
	EventTimeUpdate EventType = "time-update"
	// EventPeriodChange is emitted once per work/pray transition.
	EventPeriodChange EventType = "period-change"
)

// Event represents a scheduler update for observers. The payload
// fields carry JSON tags so split-process transports can forward the
// event body unchanged.
type Event struct {
	Type          EventType  `json:"-"`
	Mode          model.Mode `json:"mode"`
	Remaining     int        `json:"remaining"`
	FormattedTime string     `json:"formattedTime"`
	At            time.Time  `json:"-"`
}
