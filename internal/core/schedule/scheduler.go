package schedule

import (
	"sync"
	"time"

	"praymate/internal/core/model"
)

// SnapshotSink receives the snapshot published on every tick.
type SnapshotSink interface {
	PublishSnapshot(snapshot model.Snapshot)
}

// Config contains runtime options for the Scheduler.
type Config struct {
	TickInterval time.Duration
	Clock        func() time.Time
}

// Scheduler recomputes the wall-clock schedule once per tick and
// publishes it to the sink and to subscribers. The schedule is a pure
// function of the clock, so a missed tick, sleep or restart never
// desyncs it.
type Scheduler struct {
	mu       sync.Mutex
	options  Config
	sink     SnapshotSink
	lastMode model.Mode
	events   []chan Event
	stopCh   chan struct{}
	running  bool
}

// New creates a Scheduler publishing into the given sink.
func New(sink SnapshotSink, options Config) *Scheduler {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = time.Now
	}
	return &Scheduler{
		options: options,
		sink:    sink,
		stopCh:  make(chan struct{}),
	}
}

// Subscribe registers a new observer channel. Emission never blocks:
// a subscriber that falls behind drops events.
func (scheduler *Scheduler) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	scheduler.mu.Lock()
	scheduler.events = append(scheduler.events, ch)
	scheduler.mu.Unlock()
	return ch
}

// Start publishes one immediate snapshot and launches the tick loop.
// The first publication counts as the baseline mode, not a period
// change.
func (scheduler *Scheduler) Start() {
	scheduler.mu.Lock()
	if scheduler.running {
		scheduler.mu.Unlock()
		return
	}
	scheduler.running = true
	scheduler.mu.Unlock()

	scheduler.tick(scheduler.options.Clock())
	go scheduler.run()
}

// Stop terminates the tick loop and closes observer channels.
// Production wiring never calls Stop (the loop lives for the whole
// process); tests use it to run the loop for bounded durations.
func (scheduler *Scheduler) Stop() {
	scheduler.mu.Lock()
	if !scheduler.running {
		scheduler.mu.Unlock()
		return
	}
	close(scheduler.stopCh)
	scheduler.running = false
	events := scheduler.events
	scheduler.events = nil
	scheduler.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (scheduler *Scheduler) run() {
	ticker := time.NewTicker(scheduler.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-scheduler.stopCh:
			return
		case <-ticker.C:
			scheduler.tick(scheduler.options.Clock())
		}
	}
}

func (scheduler *Scheduler) tick(now time.Time) {
	snapshot := Snapshot(now.Minute(), now.Second())

	if scheduler.sink != nil {
		scheduler.sink.PublishSnapshot(snapshot)
	}

	scheduler.mu.Lock()
	if !scheduler.running {
		scheduler.mu.Unlock()
		return
	}
	changed := scheduler.lastMode != "" && scheduler.lastMode != snapshot.Mode
	scheduler.lastMode = snapshot.Mode

	scheduler.emitLocked(Event{
		Type:          EventTimeUpdate,
		Mode:          snapshot.Mode,
		Remaining:     snapshot.Remaining,
		FormattedTime: snapshot.FormattedTime,
		At:            now,
	})
	if changed {
		scheduler.emitLocked(Event{
			Type:          EventPeriodChange,
			Mode:          snapshot.Mode,
			Remaining:     snapshot.Remaining,
			FormattedTime: snapshot.FormattedTime,
			At:            now,
		})
	}
	scheduler.mu.Unlock()
}

func (scheduler *Scheduler) emitLocked(event Event) {
	for _, ch := range scheduler.events {
		select {
		case ch <- event:
		default:
		}
	}
}
