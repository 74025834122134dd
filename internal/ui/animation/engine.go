// Package animation runs the companion's sprite loop. The engine is
// owned by the render loop; sprite updates go out through a single
// callback marshalled onto the UI thread by the caller.
package animation

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// PoseSpec defines the sprites for one (character, mode) pair.
type PoseSpec struct {
	Base  fyne.Resource
	Blink fyne.Resource
}

// Config contains animation timing values.
type Config struct {
	BlinkInterval       Range
	BlinkClosedDuration Range
	BlinkOpenDuration   Range
	DoubleBlinkChance   float64
	DoubleBlinkGap      Range
}

// Engine animates the companion sprite.
type Engine struct {
	mu           sync.Mutex
	config       Config
	updateSprite func(fyne.Resource)
	cancel       context.CancelFunc
	rng          *rand.Rand
}

// New creates a new animation engine.
func New(config Config, updateSprite func(fyne.Resource)) *Engine {
	return &Engine{
		config:       config,
		updateSprite: updateSprite,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// StartPose begins the blink loop for a pose, replacing any active
// loop. The character holds its base pose and blinks at random
// intervals, occasionally twice.
func (engine *Engine) StartPose(ctx context.Context, spec PoseSpec) {
	engine.start(ctx, func(runCtx context.Context) {
		engine.updateSprite(spec.Base)
		for {
			if !sleepWithContext(runCtx, engine.config.BlinkInterval.Random(engine.rng)) {
				return
			}
			if !engine.blinkOnce(runCtx, spec) {
				return
			}
			if engine.rng.Float64() <= engine.config.DoubleBlinkChance {
				if !sleepWithContext(runCtx, engine.config.DoubleBlinkGap.Random(engine.rng)) {
					return
				}
				if !engine.blinkOnce(runCtx, spec) {
					return
				}
			}
		}
	})
}

// Stop terminates any active animation.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *Engine) blinkOnce(ctx context.Context, spec PoseSpec) bool {
	engine.updateSprite(spec.Blink)
	if !sleepWithContext(ctx, engine.config.BlinkClosedDuration.Random(engine.rng)) {
		return false
	}
	engine.updateSprite(spec.Base)
	return sleepWithContext(ctx, engine.config.BlinkOpenDuration.Random(engine.rng))
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	engine.mu.Unlock()

	go run(runCtx)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
