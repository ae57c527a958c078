package terminal

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"overwhelming/config"
	"overwhelming/game"
	"overwhelming/placeholder"
)

const sampleRate = beep.SampleRate(44100)

// Audio plays through the system speaker with beep. Every sound is mixed
// into one stream; music sits behind a Ctrl so it can be stopped.
type Audio struct {
	root     string
	settings *config.Store

	mixer   *beep.Mixer
	buffers map[string]*beep.Buffer

	music   *track
	retired []*track
}

// track is one music stream in the mixer
type track struct {
	ctrl  *beep.Ctrl
	fader *fader
}

func (t *track) stop() {
	t.ctrl.Paused = true
	t.ctrl.Streamer = nil
}

// NewAudio opens the speaker. It fails when no audio device is available.
func NewAudio(root string, settings *config.Store) (*Audio, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to open speaker: %w", err)
	}
	a := &Audio{
		root:     root,
		settings: settings,
		mixer:    &beep.Mixer{},
		buffers:  make(map[string]*beep.Buffer),
	}
	speaker.Play(a.mixer)
	return a, nil
}

func (a *Audio) PlaySound(name string) {
	s := a.settings.Settings()
	if !s.SoundEnabled {
		return
	}
	buf, err := a.buffer(name)
	if err != nil {
		log.Printf("[Audio] %v", err)
		return
	}

	speaker.Lock()
	a.mixer.Add(linearVolume(buf.Streamer(0, buf.Len()), s.SoundVolume))
	speaker.Unlock()
}

func (a *Audio) PlayMusic(name string, loops int) {
	a.FadeOutMusic(game.MusicReplaceFadeMs)

	s := a.settings.Settings()
	if !s.MusicEnabled {
		return
	}
	buf, err := a.buffer(name)
	if err != nil {
		log.Printf("[Audio] %v", err)
		return
	}

	count := loops + 1
	if loops == game.LoopForever {
		count = -1
	}
	f := &fader{streamer: linearVolume(beep.Loop(count, buf.Streamer(0, buf.Len())), s.MusicVolume)}
	ctrl := &beep.Ctrl{Streamer: f}

	speaker.Lock()
	a.music = &track{ctrl: ctrl, fader: f}
	a.mixer.Add(ctrl)
	speaker.Unlock()
}

// FadeOutMusic ramps the current track to silence. The track stays in the
// mixer until its fade ends, and is no longer current.
func (a *Audio) FadeOutMusic(ms int) {
	speaker.Lock()
	defer speaker.Unlock()

	live := a.retired[:0]
	for _, t := range a.retired {
		if !t.fader.done() {
			live = append(live, t)
		}
	}
	clear(a.retired[len(live):])
	a.retired = live

	if a.music == nil {
		return
	}
	a.music.fader.start(sampleRate.N(time.Duration(ms) * time.Millisecond))
	a.retired = append(a.retired, a.music)
	a.music = nil
}

// ApplySettings stops all music, fading or not, when it has been muted
func (a *Audio) ApplySettings() {
	if !a.settings.Settings().MusicEnabled {
		a.stopMusic()
	}
}

// Close silences everything and releases the speaker
func (a *Audio) Close() {
	speaker.Lock()
	a.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

func (a *Audio) stopMusic() {
	speaker.Lock()
	defer speaker.Unlock()
	if a.music != nil {
		a.music.stop()
		a.music = nil
	}
	for _, t := range a.retired {
		t.stop()
	}
	a.retired = nil
}

func (a *Audio) buffer(name string) (*beep.Buffer, error) {
	if buf, ok := a.buffers[name]; ok {
		return buf, nil
	}
	buf, err := loadBuffer(filepath.Join(a.root, "audio", name+".wav"))
	if os.IsNotExist(err) {
		buf, err = placeholder.Buffer(name, sampleRate)
	}
	if err != nil {
		return nil, err
	}
	a.buffers[name] = buf
	return buf, nil
}

// loadBuffer decodes a wav file into memory at the speaker's sample rate
func loadBuffer(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode audio %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	if format.SampleRate == sampleRate {
		buf.Append(streamer)
	} else {
		buf.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
	}
	return buf, nil
}

// linearVolume scales s by v in [0, 1]
func linearVolume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// fader passes a stream through until started, then ramps it to silence
// over a fixed number of samples and ends it.
type fader struct {
	streamer beep.Streamer
	total    int
	left     int
	fading   bool
}

func (f *fader) start(samples int) {
	f.fading = true
	f.total = max(samples, 1)
	f.left = f.total
}

// done reports whether a started fade has reached silence
func (f *fader) done() bool {
	return f.fading && f.left <= 0
}

func (f *fader) Stream(samples [][2]float64) (int, bool) {
	if f.done() {
		return 0, false
	}
	n, ok := f.streamer.Stream(samples)
	if !f.fading {
		return n, ok
	}
	for i := 0; i < n; i++ {
		vol := float64(f.left) / float64(f.total)
		samples[i][0] *= vol
		samples[i][1] *= vol
		if f.left > 0 {
			f.left--
		}
	}
	return n, ok
}

func (f *fader) Err() error { return f.streamer.Err() }
