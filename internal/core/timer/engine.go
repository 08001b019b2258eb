package timer

import (
	"sync"
	"sync/atomic"
	"time"

	"focustimer/internal/core/model"

	"go.uber.org/zap"
)

// SoundSignal produces the phase-completion cue. Errors are ignored.
type SoundSignal interface {
	Play() error
}

// MessagePicker chooses the motivational message for a focus phase.
type MessagePicker interface {
	Pick(goal string) string
}

// Config contains runtime options for Engine.
type Config struct {
	TickInterval time.Duration
	Logger       *zap.SugaredLogger
}

// Engine is the focus/break countdown state machine.
type Engine struct {
	mu         sync.Mutex
	options    Config
	log        *zap.SugaredLogger
	mode       model.Mode
	status     model.Status
	timeLeft   int
	sessions   int
	goal       string
	motivation string
	signal     SoundSignal
	picker     MessagePicker
	events     []chan Event
	stopCh     chan struct{}
	sources    sync.WaitGroup
	live       atomic.Int32
	closed     bool
}

// New creates an idle engine at the start of a focus phase.
func New(options Config) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = model.DefaultTickInterval
	}
	log := options.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Engine{
		options:  options,
		log:      log,
		mode:     model.ModeFocus,
		status:   model.StatusIdle,
		timeLeft: model.FocusSeconds,
	}
}

// SetSignal injects the completion cue. Nil disables it.
func (engine *Engine) SetSignal(signal SoundSignal) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.signal = signal
}

// SetMotivator injects the message picker. Nil disables messages.
func (engine *Engine) SetMotivator(picker MessagePicker) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.picker = picker
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		close(ch)
		return ch
	}
	engine.events = append(engine.events, ch)
	return ch
}

// Snapshot returns the current state.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.snapshotLocked()
}

// Display returns the remaining time as MM:SS.
func (engine *Engine) Display() string {
	return engine.Snapshot().Display()
}

// Progress returns the elapsed fraction of the current phase.
func (engine *Engine) Progress() float64 {
	return engine.Snapshot().Progress()
}

// SetGoal stores the label used by the next motivational message.
func (engine *Engine) SetGoal(goal string) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed || engine.goal == goal {
		return
	}
	engine.goal = goal
	engine.emitLocked(EventStateChange, "")
}

// Start begins or resumes the countdown. It is a no-op while running.
func (engine *Engine) Start() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed || engine.status == model.StatusRunning {
		return
	}

	if engine.status == model.StatusIdle && engine.mode == model.ModeFocus && engine.picker != nil {
		engine.motivation = engine.picker.Pick(engine.goal)
	}
	engine.status = model.StatusRunning
	engine.startTickerLocked()

	engine.log.Debugw("timer started", "mode", engine.mode, "time_left", engine.timeLeft)
	engine.emitLocked(EventStateChange, "")
}

// Pause freezes the countdown. Remaining time is kept.
func (engine *Engine) Pause() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return
	}
	engine.stopTickerLocked()
	if engine.status == model.StatusPaused {
		return
	}
	engine.status = model.StatusPaused

	engine.log.Debugw("timer paused", "mode", engine.mode, "time_left", engine.timeLeft)
	engine.emitLocked(EventStateChange, "")
}

// Reset returns to an idle focus phase. The session count is kept.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return
	}
	engine.stopTickerLocked()
	engine.status = model.StatusIdle
	engine.mode = model.ModeFocus
	engine.timeLeft = model.FocusSeconds
	engine.goal = ""
	engine.motivation = ""

	engine.log.Debugw("timer reset", "sessions", engine.sessions)
	engine.emitLocked(EventStateChange, "")
}

// Close stops the tick source and closes observers.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.closed = true
	engine.stopTickerLocked()
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	engine.sources.Wait()
	for _, ch := range events {
		close(ch)
	}
}

func (engine *Engine) startTickerLocked() {
	engine.stopTickerLocked()
	stop := make(chan struct{})
	engine.stopCh = stop
	engine.sources.Add(1)
	engine.live.Add(1)
	go engine.run(stop)
}

func (engine *Engine) stopTickerLocked() {
	if engine.stopCh == nil {
		return
	}
	close(engine.stopCh)
	engine.stopCh = nil
}

func (engine *Engine) run(stop chan struct{}) {
	ticker := time.NewTicker(engine.options.TickInterval)
	defer func() {
		ticker.Stop()
		engine.live.Add(-1)
		engine.sources.Done()
	}()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			engine.tick(stop)
		}
	}
}

func (engine *Engine) tick(source chan struct{}) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if source == nil || engine.stopCh != source || engine.status != model.StatusRunning {
		return
	}
	engine.advanceLocked()
}

func (engine *Engine) advanceLocked() {
	if engine.timeLeft > 1 {
		engine.timeLeft--
		engine.emitLocked(EventTick, "")
		return
	}
	engine.completeLocked()
}

func (engine *Engine) completeLocked() {
	engine.stopTickerLocked()
	engine.timeLeft = 0
	engine.playSignalLocked()

	completed := engine.mode
	if completed == model.ModeFocus {
		engine.sessions++
		engine.mode = model.ModeBreak
		engine.timeLeft = model.BreakSeconds
		engine.status = model.StatusRunning
		engine.startTickerLocked()
	} else {
		engine.mode = model.ModeFocus
		engine.timeLeft = model.FocusSeconds
		engine.status = model.StatusIdle
	}

	engine.log.Infow("phase complete", "completed", completed, "next", engine.mode, "sessions", engine.sessions)
	engine.emitLocked(EventPhaseComplete, completed)
}

func (engine *Engine) playSignalLocked() {
	signal := engine.signal
	if signal == nil {
		return
	}
	log := engine.log
	go func() {
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Debugw("sound signal panicked", "panic", recovered)
			}
		}()
		if err := signal.Play(); err != nil {
			log.Debugw("sound signal failed", "err", err)
		}
	}()
}

func (engine *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Mode:       engine.mode,
		Status:     engine.status,
		TimeLeft:   engine.timeLeft,
		Sessions:   engine.sessions,
		Goal:       engine.goal,
		Motivation: engine.motivation,
	}
}

func (engine *Engine) emitLocked(eventType EventType, completed model.Mode) {
	event := Event{
		Type:      eventType,
		Snapshot:  engine.snapshotLocked(),
		Completed: completed,
		At:        time.Now(),
	}
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
