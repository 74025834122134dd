package schedule

import (
	"fmt"

	"praymate/internal/core/model"
)

// Segment is one fixed slice of the hourly cycle.
type Segment struct {
	StartMinute int
	EndMinute   int
	Mode        model.Mode
}

// Segments partitions every hour into the fixed work/pray cycle.
// The table is exhaustive: consecutive segments share a boundary and
// the last one ends at minute 60.
var Segments = []Segment{
	{StartMinute: 0, EndMinute: 25, Mode: model.ModeWork},
	{StartMinute: 25, EndMinute: 30, Mode: model.ModeRest},
	{StartMinute: 30, EndMinute: 55, Mode: model.ModeWork},
	{StartMinute: 55, EndMinute: 60, Mode: model.ModeRest},
}

// CurrentPeriod maps a clock reading to the active mode and the
// seconds remaining until the segment ends. A minute outside every
// segment cannot happen with the table above, but the lookup still
// falls back to the first segment: the ticker runs unattended and
// must never halt.
func CurrentPeriod(minute, second int) (model.Mode, int) {
	segment := Segments[0]
	for _, candidate := range Segments {
		if minute >= candidate.StartMinute && minute < candidate.EndMinute {
			segment = candidate
			break
		}
	}

	currentSecond := minute*60 + second
	endSecond := segment.EndMinute * 60
	return segment.Mode, endSecond - currentSecond
}

// FormatTime renders seconds as MM:SS. The minutes field is not
// clamped to 0-59, so 3661 renders as "61:01".
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Snapshot builds the published snapshot for a clock reading.
func Snapshot(minute, second int) model.Snapshot {
	mode, remaining := CurrentPeriod(minute, second)
	return model.Snapshot{
		Mode:          mode,
		Remaining:     remaining,
		FormattedTime: FormatTime(remaining),
	}
}
