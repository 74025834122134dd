package schedule

import (
	"testing"

	"praymate/internal/core/model"
)

func TestCurrentPeriodBoundaries(t *testing.T) {
	cases := []struct {
		minute    int
		second    int
		mode      model.Mode
		remaining int
	}{
		{0, 0, model.ModeWork, 1500},
		{24, 59, model.ModeWork, 1},
		{25, 0, model.ModeRest, 300},
		{29, 59, model.ModeRest, 1},
		{30, 0, model.ModeWork, 1500},
		{54, 59, model.ModeWork, 1},
		{55, 0, model.ModeRest, 300},
		{59, 59, model.ModeRest, 1},
	}

	for _, tc := range cases {
		mode, remaining := CurrentPeriod(tc.minute, tc.second)
		if mode != tc.mode || remaining != tc.remaining {
			t.Errorf("CurrentPeriod(%d, %d) = (%s, %d), want (%s, %d)",
				tc.minute, tc.second, mode, remaining, tc.mode, tc.remaining)
		}
	}
}

func TestCurrentPeriodCoversEveryClockReading(t *testing.T) {
	for minute := 0; minute < 60; minute++ {
		for second := 0; second < 60; second++ {
			mode, remaining := CurrentPeriod(minute, second)

			if remaining <= 0 || remaining > 1500 {
				t.Fatalf("CurrentPeriod(%d, %d): remaining %d out of (0, 1500]", minute, second, remaining)
			}

			matches := 0
			for _, segment := range Segments {
				if minute >= segment.StartMinute && minute < segment.EndMinute {
					matches++
					if mode != segment.Mode {
						t.Fatalf("CurrentPeriod(%d, %d): mode %s, segment says %s", minute, second, mode, segment.Mode)
					}
				}
			}
			if matches != 1 {
				t.Fatalf("minute %d matched %d segments", minute, matches)
			}
		}
	}
}

func TestCurrentPeriodIdempotent(t *testing.T) {
	for _, reading := range [][2]int{{0, 0}, {24, 59}, {25, 0}, {42, 17}, {59, 59}} {
		mode1, remaining1 := CurrentPeriod(reading[0], reading[1])
		mode2, remaining2 := CurrentPeriod(reading[0], reading[1])
		if mode1 != mode2 || remaining1 != remaining2 {
			t.Errorf("CurrentPeriod(%d, %d) not deterministic: (%s, %d) then (%s, %d)",
				reading[0], reading[1], mode1, remaining1, mode2, remaining2)
		}
	}
}

func TestCurrentPeriodFallsBackToFirstSegment(t *testing.T) {
	// Minutes outside [0, 60) cannot come from a real clock; the
	// lookup still answers with the first segment instead of failing.
	mode, _ := CurrentPeriod(75, 0)
	if mode != model.ModeWork {
		t.Errorf("CurrentPeriod(75, 0) mode = %s, want %s", mode, model.ModeWork)
	}
}

func TestFormatTime(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{90, "01:30"},
		{1500, "25:00"},
		{3661, "61:01"}, // minutes are deliberately unclamped
		{-5, "00:00"},
	}

	for _, tc := range cases {
		if got := FormatTime(tc.seconds); got != tc.want {
			t.Errorf("FormatTime(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestSnapshotMatchesCalculator(t *testing.T) {
	snapshot := Snapshot(24, 59)
	if snapshot.Mode != model.ModeWork || snapshot.Remaining != 1 || snapshot.FormattedTime != "00:01" {
		t.Errorf("Snapshot(24, 59) = %+v", snapshot)
	}
}
