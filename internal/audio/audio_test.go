package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultChimeShape(t *testing.T) {
	tone := DefaultChime()

	assert.Equal(t, 660.0, tone.FrequencyAt(0))
	assert.Equal(t, 660.0, tone.FrequencyAt(149*time.Millisecond))
	assert.Equal(t, 880.0, tone.FrequencyAt(150*time.Millisecond))
	assert.Equal(t, 660.0, tone.FrequencyAt(500*time.Millisecond))

	assert.InDelta(t, 0.0, tone.GainAt(0), 1e-9)
	assert.InDelta(t, 0.15, tone.GainAt(25*time.Millisecond), 1e-9)
	assert.InDelta(t, 0.3, tone.GainAt(50*time.Millisecond), 1e-9)
	assert.InDelta(t, 0.15, tone.GainAt(300*time.Millisecond), 1e-9)
	assert.InDelta(t, 0.0, tone.GainAt(800*time.Millisecond), 1e-9)
	assert.InDelta(t, 0.0, tone.GainAt(time.Second), 1e-9)
}

func TestSynthesizeLengthAndPeak(t *testing.T) {
	samples := Synthesize(DefaultChime(), 8000, 1)
	require.Len(t, samples, 6400)
	assert.Equal(t, int16(0), samples[0])

	peak := 0
	for _, sample := range samples {
		if v := int(math.Abs(float64(sample))); v > peak {
			peak = v
		}
	}
	limit := int(math.Ceil(0.3 * math.MaxInt16))
	assert.LessOrEqual(t, peak, limit)
	assert.Greater(t, peak, limit/2)
}

func TestSynthesizeVolume(t *testing.T) {
	silent := Synthesize(DefaultChime(), 8000, 0)
	for _, sample := range silent {
		require.Equal(t, int16(0), sample)
	}

	loud := Synthesize(DefaultChime(), 8000, 5)
	full := Synthesize(DefaultChime(), 8000, 1)
	assert.Equal(t, full, loud)
}

func TestEncodeWAVHeader(t *testing.T) {
	samples := []int16{0, 100, -100, 32767}
	data := EncodeWAV(samples, 22050)
	require.Len(t, data, 44+len(samples)*2)

	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, uint32(36+8), binary.LittleEndian.Uint32(data[4:8]))
	assert.Equal(t, "WAVE", string(data[8:12]))
	assert.Equal(t, "fmt ", string(data[12:16]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[20:22]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[22:24]))
	assert.Equal(t, uint32(22050), binary.LittleEndian.Uint32(data[24:28]))
	assert.Equal(t, uint32(44100), binary.LittleEndian.Uint32(data[28:32]))
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(data[34:36]))
	assert.Equal(t, "data", string(data[36:40]))
	assert.Equal(t, uint32(8), binary.LittleEndian.Uint32(data[40:44]))
	assert.Equal(t, int16(-100), int16(binary.LittleEndian.Uint16(data[48:50])))
}

type recordingPlayer struct {
	paths []string
	err   error
}

func (player *recordingPlayer) Play(path string) error {
	player.paths = append(player.paths, path)
	return player.err
}

func TestChimeWritesFileOnce(t *testing.T) {
	player := &recordingPlayer{}
	chime := NewChime(player, 1)
	chime.dir = t.TempDir()

	require.NoError(t, chime.Play())
	require.NoError(t, chime.Play())
	require.Len(t, player.paths, 2)
	assert.Equal(t, player.paths[0], player.paths[1])

	written, err := os.ReadFile(player.paths[0])
	require.NoError(t, err)
	assert.Equal(t, chime.WAV(), written)

	require.NoError(t, chime.Close())
	_, err = os.Stat(player.paths[0])
	assert.True(t, os.IsNotExist(err))
}

func TestChimeReportsPlayerFailure(t *testing.T) {
	chime := NewChime(&recordingPlayer{err: ErrNoPlayer}, 1)
	chime.dir = t.TempDir()
	assert.ErrorIs(t, chime.Play(), ErrNoPlayer)

	assert.ErrorIs(t, NewChime(nil, 1).Play(), ErrNoPlayer)
}

type blockingPlayer struct {
	started chan string
	release chan struct{}
}

func (player *blockingPlayer) Play(path string) error {
	player.started <- path
	<-player.release
	return nil
}

func TestChimeCloseWaitsForPlayback(t *testing.T) {
	dir := t.TempDir()
	player := &blockingPlayer{started: make(chan string, 1), release: make(chan struct{})}
	chime := NewChime(player, 1)
	chime.dir = dir

	done := make(chan error, 1)
	go func() { done <- chime.Play() }()
	path := <-player.started

	require.NoError(t, chime.Close())
	_, err := os.Stat(path)
	require.NoError(t, err, "file must survive while the player reads it")
	assert.ErrorIs(t, chime.Play(), ErrChimeClosed)

	close(player.release)
	require.NoError(t, <-done)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestChimeConcurrentPlayAndCloseLeavesNoFile(t *testing.T) {
	for i := 0; i < 20; i++ {
		dir := t.TempDir()
		chime := NewChime(&recordingPlayer{}, 1)
		chime.dir = dir

		done := make(chan error, 1)
		go func() { done <- chime.Play() }()
		closeErr := chime.Close()
		playErr := <-done

		require.NoError(t, closeErr)
		if playErr != nil {
			assert.ErrorIs(t, playErr, ErrChimeClosed)
		}
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries, "iteration %d", i)
	}
}

func TestCommandPlayerReportsExitStatus(t *testing.T) {
	succeed, errTrue := exec.LookPath("true")
	fail, errFalse := exec.LookPath("false")
	if errTrue != nil || errFalse != nil {
		t.Skip("true/false binaries not available")
	}
	noArgs := func(string) []string { return nil }

	assert.NoError(t, (&commandPlayer{binary: succeed, args: noArgs}).Play("x.wav"))
	assert.Error(t, (&commandPlayer{binary: fail, args: noArgs}).Play("x.wav"))

	chime := NewChime(&commandPlayer{binary: fail, args: noArgs}, 1)
	chime.dir = t.TempDir()
	t.Cleanup(func() { _ = chime.Close() })
	var out bytes.Buffer
	require.NoError(t, Fallback(chime, Bell{Out: &out}).Play())
	assert.Equal(t, "\a", out.String())
}

func TestUnsupportedPlayer(t *testing.T) {
	assert.ErrorIs(t, unsupportedPlayer{}.Play("x.wav"), ErrNoPlayer)
	assert.ErrorIs(t, lookupPlayer(commandPlayer{binary: "definitely-not-a-player-binary"}).Play("x.wav"), ErrNoPlayer)
}

type failingSignal struct{ calls int }

func (signal *failingSignal) Play() error {
	signal.calls++
	return errors.New("device busy")
}

func TestFallbackStopsAtFirstSuccess(t *testing.T) {
	first := &failingSignal{}
	var out bytes.Buffer
	after := &failingSignal{}

	require.NoError(t, Fallback(first, nil, Bell{Out: &out}, after).Play())
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, "\a", out.String())
	assert.Equal(t, 0, after.calls)
}

func TestFallbackJoinsErrors(t *testing.T) {
	err := Fallback(&failingSignal{}, Bell{}).Play()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device busy")
	assert.Contains(t, err.Error(), "bell")

	assert.NoError(t, Nop{}.Play())
}
