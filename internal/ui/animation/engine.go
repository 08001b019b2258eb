// Package animation runs short cancellable UI animations.
package animation

import (
	"context"
	"math/rand"
	"sync"
	"time"
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

// Config contains flash timing values.
type Config struct {
	Flashes int
	On      Range
	Off     Range
}

// Engine toggles a highlight on and off. Only one animation runs at a time.
type Engine struct {
	mu      sync.Mutex
	config  Config
	update  func(on bool)
	cancel  context.CancelFunc
	rng     *rand.Rand
	running sync.WaitGroup
}

// New creates a flash engine that reports state through update.
func New(config Config, update func(on bool)) *Engine {
	return &Engine{
		config: config,
		update: update,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// StartFlash flashes the highlight, cancelling any running flash. The
// highlight is always left off.
func (engine *Engine) StartFlash(ctx context.Context) {
	engine.start(ctx, func(runCtx context.Context) {
		defer engine.update(false)
		for i := 0; i < engine.config.Flashes; i++ {
			engine.update(true)
			if !sleepWithContext(runCtx, engine.config.On.Random(engine.rng)) {
				return
			}
			engine.update(false)
			if !sleepWithContext(runCtx, engine.config.Off.Random(engine.rng)) {
				return
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

// Wait blocks until every started animation has returned.
func (engine *Engine) Wait() {
	engine.running.Wait()
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	engine.running.Add(1)
	engine.mu.Unlock()

	go func() {
		defer engine.running.Done()
		run(runCtx)
	}()
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
