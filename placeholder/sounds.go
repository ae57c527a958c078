package placeholder

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"overwhelming/game"
)

// note is one tone of a synthesized sound
type note struct {
	freq float64
	dur  time.Duration
}

var soundScores = map[string][]note{
	game.SoundPlayerShot: {{1320, 40 * time.Millisecond}},
	game.SoundNextWave:   {{440, 120 * time.Millisecond}, {554.37, 120 * time.Millisecond}, {659.25, 240 * time.Millisecond}},
	game.MusicBackground: {
		{110, 250 * time.Millisecond}, {164.81, 250 * time.Millisecond},
		{130.81, 250 * time.Millisecond}, {164.81, 250 * time.Millisecond},
		{98, 250 * time.Millisecond}, {146.83, 250 * time.Millisecond},
		{123.47, 250 * time.Millisecond}, {146.83, 250 * time.Millisecond},
	},
}

var soundVolumes = map[string]float64{
	game.SoundPlayerShot: 0.15,
	game.SoundNextWave:   0.4,
	game.MusicBackground: 0.3,
}

// Sound returns a finite streamer synthesizing the named sound. Music is one
// pass of the loop; callers repeat it.
func Sound(name string, sr beep.SampleRate) (beep.Streamer, error) {
	score, ok := soundScores[name]
	if !ok {
		return nil, fmt.Errorf("no placeholder for sound %q", name)
	}

	parts := make([]beep.Streamer, 0, len(score))
	for _, n := range score {
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("failed to create tone: %w", err)
		}
		samples := sr.N(n.dur)
		parts = append(parts, newDecay(beep.Take(samples, tone), samples))
	}
	return volume(beep.Seq(parts...), soundVolumes[name]), nil
}

// Buffer renders the named sound into memory so it can be replayed or looped
func Buffer(name string, sr beep.SampleRate) (*beep.Buffer, error) {
	s, err := Sound(name, sr)
	if err != nil {
		return nil, err
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf, nil
}

// PCM renders the named sound as 16-bit little endian stereo samples
func PCM(name string, sampleRate int) ([]byte, error) {
	s, err := Sound(name, beep.SampleRate(sampleRate))
	if err != nil {
		return nil, err
	}

	var out []byte
	chunk := make([][2]float64, 512)
	for {
		n, ok := s.Stream(chunk)
		for _, frame := range chunk[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok {
			break
		}
	}
	return out, s.Err()
}

// decay fades a streamer linearly to silence over total samples
type decay struct {
	streamer beep.Streamer
	pos      int
	total    int
}

func newDecay(s beep.Streamer, total int) beep.Streamer {
	return &decay{streamer: s, total: max(total, 1)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(d.pos)/float64(d.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// volume scales s linearly; zero is silent
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}
