package timerview

import (
	"testing"
	"time"

	"focustimer/internal/core/model"
	"focustimer/internal/core/timer"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWindow(t *testing.T) (*Window, *timer.Engine) {
	t.Helper()
	app := test.NewTempApp(t)
	engine := timer.New(timer.Config{TickInterval: time.Hour})
	t.Cleanup(engine.Close)
	view := New(app, engine)
	t.Cleanup(view.Close)
	return view, engine
}

func TestInitialWindowState(t *testing.T) {
	view, _ := newTestWindow(t)

	assert.Equal(t, "Focus", view.title.Text)
	assert.Equal(t, "0 sessions completed", view.sessions.Text)
	assert.Equal(t, "Start", view.startButton.Text)
	assert.False(t, view.startButton.Disabled())
	assert.True(t, view.pauseButton.Disabled())
}

func TestButtonsDriveEngine(t *testing.T) {
	view, engine := newTestWindow(t)

	test.Tap(view.startButton)
	require.Equal(t, model.StatusRunning, engine.Snapshot().Status)
	view.apply(engine.Snapshot())
	assert.True(t, view.startButton.Disabled())
	assert.False(t, view.pauseButton.Disabled())

	test.Tap(view.pauseButton)
	require.Equal(t, model.StatusPaused, engine.Snapshot().Status)
	view.apply(engine.Snapshot())
	assert.Equal(t, "Resume", view.startButton.Text)

	test.Type(view.goal, "budget")
	assert.Equal(t, "budget", engine.Snapshot().Goal)

	test.Tap(view.resetButton)
	assert.Equal(t, model.StatusIdle, engine.Snapshot().Status)
	assert.Empty(t, engine.Snapshot().Goal)
	assert.Empty(t, view.goal.Text)
}

func TestApplyBreakSnapshot(t *testing.T) {
	view, _ := newTestWindow(t)

	view.apply(timer.Snapshot{
		Mode:       model.ModeBreak,
		Status:     model.StatusRunning,
		TimeLeft:   300,
		Sessions:   1,
		Motivation: "Keep going",
	})

	assert.Equal(t, "Break", view.title.Text)
	assert.Equal(t, BreakColor, view.title.Color)
	assert.Equal(t, "1 session completed", view.sessions.Text)
	assert.Equal(t, "Keep going", view.motivation.Text)
}

func TestHandleEventShowsLatestState(t *testing.T) {
	view, engine := newTestWindow(t)
	engine.Start()

	view.HandleEvent(timer.Event{
		Type: timer.EventTick,
		Snapshot: timer.Snapshot{
			Mode:     model.ModeBreak,
			Status:   model.StatusRunning,
			TimeLeft: 1,
			Sessions: 1,
		},
	})

	require.Eventually(t, view.startButton.Disabled, time.Second, time.Millisecond)
	assert.Equal(t, "Focus", view.title.Text)
	assert.Equal(t, "0 sessions completed", view.sessions.Text)
}
