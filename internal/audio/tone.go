// Package audio produces the phase-completion chime.
package audio

import (
	"math"
	"time"
)

// DefaultSampleRate is used when rendering the chime.
const DefaultSampleRate = 44100

// FrequencyStep switches the oscillator to Hz at offset At.
type FrequencyStep struct {
	At time.Duration
	Hz float64
}

// GainPoint is one vertex of a linear gain envelope.
type GainPoint struct {
	At   time.Duration
	Gain float64
}

// Tone describes a single sine voice.
type Tone struct {
	Duration time.Duration
	Steps    []FrequencyStep
	Envelope []GainPoint
}

// DefaultChime is the three-tone completion cue.
func DefaultChime() Tone {
	return Tone{
		Duration: 800 * time.Millisecond,
		Steps: []FrequencyStep{
			{At: 0, Hz: 660},
			{At: 150 * time.Millisecond, Hz: 880},
			{At: 300 * time.Millisecond, Hz: 660},
		},
		Envelope: []GainPoint{
			{At: 0, Gain: 0},
			{At: 50 * time.Millisecond, Gain: 0.3},
			{At: 300 * time.Millisecond, Gain: 0.15},
			{At: 800 * time.Millisecond, Gain: 0},
		},
	}
}

// FrequencyAt returns the oscillator frequency at offset.
func (tone Tone) FrequencyAt(offset time.Duration) float64 {
	hz := 0.0
	for _, step := range tone.Steps {
		if step.At > offset {
			break
		}
		hz = step.Hz
	}
	return hz
}

// GainAt linearly interpolates the envelope at offset.
func (tone Tone) GainAt(offset time.Duration) float64 {
	points := tone.Envelope
	if len(points) == 0 {
		return 0
	}
	if offset <= points[0].At {
		return points[0].Gain
	}
	for i := 1; i < len(points); i++ {
		prev, next := points[i-1], points[i]
		if offset > next.At {
			continue
		}
		span := next.At - prev.At
		if span <= 0 {
			return next.Gain
		}
		ratio := float64(offset-prev.At) / float64(span)
		return prev.Gain + (next.Gain-prev.Gain)*ratio
	}
	return points[len(points)-1].Gain
}

// Synthesize renders tone as 16-bit mono PCM. Volume scales the envelope
// and is clamped to [0,1].
func Synthesize(tone Tone, sampleRate int, volume float64) []int16 {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	volume = math.Max(0, math.Min(1, volume))

	count := int(math.Round(tone.Duration.Seconds() * float64(sampleRate)))
	samples := make([]int16, count)
	phase := 0.0
	for i := range samples {
		offset := time.Duration(float64(i) / float64(sampleRate) * float64(time.Second))
		value := math.Sin(phase) * tone.GainAt(offset) * volume
		samples[i] = int16(math.Round(value * math.MaxInt16))
		phase += 2 * math.Pi * tone.FrequencyAt(offset) / float64(sampleRate)
		if phase > 2*math.Pi {
			phase -= 2 * math.Pi
		}
	}
	return samples
}
