package state

import (
	"strconv"
	"sync"
	"testing"

	"praymate/internal/core/model"
)

func testCatalog() model.Catalog {
	return model.Catalog{Characters: []model.Character{
		{ID: "augustine-of-hippo", Name: "Augustine of Hippo"},
		{ID: "thomas-aquinas", Name: "Thomas Aquinas"},
		{ID: "saint-patrick", Name: "Saint Patrick"},
	}}
}

func newTestState() *State {
	return New(model.DefaultSettings(), testCatalog())
}

func TestSetScaleClamps(t *testing.T) {
	shared := newTestState()

	if got := shared.SetScale(10.0); got != 3.0 {
		t.Errorf("SetScale(10.0) = %v, want 3.0", got)
	}
	if frame := shared.Frame(); frame.Scale != 3.0 {
		t.Errorf("stored scale = %v, want 3.0", frame.Scale)
	}

	if got := shared.SetScale(0.01); got != 0.5 {
		t.Errorf("SetScale(0.01) = %v, want 0.5", got)
	}
	if got := shared.SetScale(1.25); got != 1.25 {
		t.Errorf("SetScale(1.25) = %v, want 1.25", got)
	}
}

func TestSetCharacterRejectsUnknownID(t *testing.T) {
	shared := newTestState()

	if shared.SetCharacter("unknown-saint") {
		t.Error("SetCharacter accepted an id outside the catalog")
	}
	if frame := shared.Frame(); frame.Character != "augustine-of-hippo" {
		t.Errorf("character changed to %q after rejected intent", frame.Character)
	}

	if !shared.SetCharacter("saint-patrick") {
		t.Error("SetCharacter rejected a catalog id")
	}
	if frame := shared.Frame(); frame.Character != "saint-patrick" {
		t.Errorf("character = %q, want saint-patrick", frame.Character)
	}
}

func TestNextCharacterWrapsAround(t *testing.T) {
	shared := newTestState()

	want := []string{"thomas-aquinas", "saint-patrick", "augustine-of-hippo"}
	for _, id := range want {
		if got := shared.NextCharacter(); got != id {
			t.Fatalf("NextCharacter() = %q, want %q", got, id)
		}
	}
}

func TestNewRecoversFromCorruptCharacter(t *testing.T) {
	settings := model.DefaultSettings()
	settings.Character = "not-a-saint"

	shared := New(settings, testCatalog())
	if frame := shared.Frame(); frame.Character != "augustine-of-hippo" {
		t.Errorf("character = %q, want catalog default", frame.Character)
	}
	// Advancing from the recovered position lands on the second entry.
	if got := shared.NextCharacter(); got != "thomas-aquinas" {
		t.Errorf("NextCharacter() = %q, want thomas-aquinas", got)
	}
}

func TestToggleVisibility(t *testing.T) {
	shared := newTestState()

	if !shared.Frame().Visible {
		t.Fatal("companion should start visible")
	}
	if shared.ToggleVisibility() {
		t.Error("first toggle should hide")
	}
	if !shared.ToggleVisibility() {
		t.Error("second toggle should show again")
	}
}

func TestRequestQuitIsObservedByFrame(t *testing.T) {
	shared := newTestState()

	if shared.Frame().ShouldQuit {
		t.Fatal("quit flag set before RequestQuit")
	}
	shared.RequestQuit()
	if !shared.Frame().ShouldQuit {
		t.Error("quit flag not visible through Frame")
	}
	if !shared.ShouldQuit() {
		t.Error("ShouldQuit() = false after RequestQuit")
	}
}

func TestMutatingIntentsTriggerSave(t *testing.T) {
	shared := newTestState()

	var mu sync.Mutex
	var saved []model.Settings
	shared.SetSaver(func(settings model.Settings) {
		mu.Lock()
		saved = append(saved, settings)
		mu.Unlock()
	})

	shared.SetScale(2.0)
	shared.SetCharacter("thomas-aquinas")
	shared.NextCharacter()
	shared.SetWindowPosition(12, 34)
	shared.SetAutostart(true)

	mu.Lock()
	defer mu.Unlock()
	if len(saved) != 5 {
		t.Fatalf("saves = %d, want 5", len(saved))
	}
	last := saved[len(saved)-1]
	if last.Window.Scale != 2.0 || last.Character != "saint-patrick" ||
		last.Window.X != 12 || last.Window.Y != 34 || !last.Autostart {
		t.Errorf("final saved settings = %+v", last)
	}
}

func TestRejectedIntentDoesNotSave(t *testing.T) {
	shared := newTestState()

	saves := 0
	shared.SetSaver(func(model.Settings) { saves++ })

	shared.SetCharacter("unknown-saint")
	if saves != 0 {
		t.Errorf("rejected intent triggered %d saves", saves)
	}
}

// TestConcurrentReadersSeePublishedSnapshots runs one writer against
// many readers and checks every observed snapshot is internally
// consistent (no torn reads). Run with -race.
func TestConcurrentReadersSeePublishedSnapshots(t *testing.T) {
	shared := newTestState()

	const (
		readers    = 8
		iterations = 2000
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < iterations; i++ {
			shared.PublishSnapshot(model.Snapshot{
				Mode:          model.ModeWork,
				Remaining:     i,
				FormattedTime: strconv.Itoa(i),
			})
		}
	}()

	var wg sync.WaitGroup
	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				frame := shared.Frame()
				if frame.Snapshot.FormattedTime == "25:00" {
					continue // initial snapshot
				}
				if strconv.Itoa(frame.Snapshot.Remaining) != frame.Snapshot.FormattedTime {
					t.Errorf("torn snapshot: remaining=%d formatted=%q",
						frame.Snapshot.Remaining, frame.Snapshot.FormattedTime)
					return
				}
			}
		}()
	}

	wg.Wait()
	<-done
}
