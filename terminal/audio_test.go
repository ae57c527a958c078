package terminal

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"

	"overwhelming/config"
	"overwhelming/game"
)

// ones streams full scale samples forever
var ones = beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{1, 1}
	}
	return len(samples), true
})

func writeTone(t *testing.T, path string, sr beep.SampleRate, samples int) {
	t.Helper()
	tone, err := generators.SineTone(sr, 440)
	if err != nil {
		t.Fatalf("SineTone: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()
	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Take(samples, tone), format); err != nil {
		t.Fatalf("Encode: %v", err)
	}
}

func TestLoadBufferAtSpeakerRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	writeTone(t, path, sampleRate, 4410)

	buf, err := loadBuffer(path)
	if err != nil {
		t.Fatalf("loadBuffer: %v", err)
	}
	if buf.Len() != 4410 {
		t.Errorf("Len = %d, want 4410", buf.Len())
	}
	if buf.Format().SampleRate != sampleRate {
		t.Errorf("SampleRate = %d, want %d", buf.Format().SampleRate, sampleRate)
	}
}

func TestLoadBufferResamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	writeTone(t, path, sampleRate/2, 2205)

	buf, err := loadBuffer(path)
	if err != nil {
		t.Fatalf("loadBuffer: %v", err)
	}
	if got := buf.Len(); math.Abs(float64(got-4410)) > 20 {
		t.Errorf("Len = %d, want about 4410", got)
	}
}

func TestLoadBufferErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := loadBuffer(filepath.Join(dir, "missing.wav")); !os.IsNotExist(err) {
		t.Errorf("missing file error = %v, want not-exist", err)
	}

	bad := filepath.Join(dir, "bad.wav")
	if err := os.WriteFile(bad, []byte("not a wav file"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadBuffer(bad); err == nil {
		t.Error("expected a decode error")
	}
}

func TestBufferFallsBackToPlaceholder(t *testing.T) {
	a := &Audio{root: t.TempDir(), buffers: make(map[string]*beep.Buffer)}

	for _, name := range game.SoundNames() {
		buf, err := a.buffer(name)
		if err != nil {
			t.Fatalf("buffer(%q): %v", name, err)
		}
		if buf.Len() == 0 {
			t.Errorf("placeholder %q is empty", name)
		}
		again, _ := a.buffer(name)
		if again != buf {
			t.Errorf("buffer(%q) not cached", name)
		}
	}
}

func TestBufferPrefersFile(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "audio"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeTone(t, filepath.Join(root, "audio", game.SoundPlayerShot+".wav"), sampleRate, 100)

	a := &Audio{root: root, buffers: make(map[string]*beep.Buffer)}
	buf, err := a.buffer(game.SoundPlayerShot)
	if err != nil {
		t.Fatalf("buffer: %v", err)
	}
	if buf.Len() != 100 {
		t.Errorf("Len = %d, want 100 from the file", buf.Len())
	}
}

func TestFaderRampsToSilence(t *testing.T) {
	f := &fader{streamer: ones}

	samples := make([][2]float64, 20)
	if n, ok := f.Stream(samples); n != 20 || !ok || samples[19][0] != 1 {
		t.Fatalf("idle fader altered the stream: n=%d ok=%v last=%v", n, ok, samples[19])
	}

	f.start(10)
	n, ok := f.Stream(samples)
	if n != 20 || !ok {
		t.Fatalf("Stream = (%d, %v), want (20, true)", n, ok)
	}
	tests := []struct {
		i    int
		want float64
	}{
		{0, 1},
		{5, 0.5},
		{9, 0.1},
		{10, 0},
		{19, 0},
	}
	for _, tt := range tests {
		if got := samples[tt.i][0]; math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("sample %d = %v, want %v", tt.i, got, tt.want)
		}
	}

	if n, ok := f.Stream(samples); n != 0 || ok {
		t.Errorf("faded stream = (%d, %v), want drained", n, ok)
	}
}

func TestLinearVolume(t *testing.T) {
	tests := []struct {
		v    float64
		want float64
	}{
		{1, 1},
		{0.5, 0.5},
		{0, 0},
	}
	for _, tt := range tests {
		samples := make([][2]float64, 4)
		linearVolume(ones, tt.v).Stream(samples)
		if got := samples[3][1]; math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("volume %v gives %v, want %v", tt.v, got, tt.want)
		}
	}
}

func newMixerAudio(t *testing.T) *Audio {
	t.Helper()
	return &Audio{
		root:     t.TempDir(),
		settings: config.NewStore(nil),
		mixer:    &beep.Mixer{},
		buffers:  make(map[string]*beep.Buffer),
	}
}

// drain streams n samples out of the mixer
func drain(m *beep.Mixer, n int) {
	chunk := make([][2]float64, 512)
	for n > 0 {
		k := min(n, len(chunk))
		m.Stream(chunk[:k])
		n -= k
	}
}

func TestPlayMusicFadesPreviousTrack(t *testing.T) {
	a := newMixerAudio(t)

	a.PlayMusic(game.MusicBackground, game.LoopForever)
	first := a.music
	a.PlayMusic(game.MusicBackground, game.LoopForever)

	if a.music == first {
		t.Fatal("previous track is still current")
	}
	if !first.fader.fading || first.ctrl.Streamer == nil {
		t.Fatal("previous track should fade, not stop")
	}
	if want := sampleRate.N(game.MusicReplaceFadeMs * time.Millisecond); first.fader.total != want {
		t.Errorf("fade length: got %d samples, want %d", first.fader.total, want)
	}
	if a.mixer.Len() != 2 {
		t.Fatalf("mixer: got %d streams, want both tracks during the fade", a.mixer.Len())
	}

	drain(a.mixer, first.fader.total+2048)
	if !first.fader.done() {
		t.Error("fade did not finish")
	}
	if a.mixer.Len() != 1 {
		t.Errorf("mixer: got %d streams after the fade, want 1", a.mixer.Len())
	}
}

func TestMutingStopsFadingMusic(t *testing.T) {
	a := newMixerAudio(t)

	a.PlayMusic(game.MusicBackground, game.LoopForever)
	a.PlayMusic(game.MusicBackground, game.LoopForever)

	a.settings.Settings().MusicEnabled = false
	a.ApplySettings()

	if a.music != nil || len(a.retired) != 0 {
		t.Fatal("music state left after muting")
	}
	drain(a.mixer, 512)
	if a.mixer.Len() != 0 {
		t.Errorf("mixer: got %d streams after muting, want 0", a.mixer.Len())
	}
}

func TestFadeOutMusicForgetsFinishedTracks(t *testing.T) {
	a := newMixerAudio(t)

	a.PlayMusic(game.MusicBackground, game.LoopForever)
	a.FadeOutMusic(10)
	drain(a.mixer, sampleRate.N(10*time.Millisecond)+1024)

	a.PlayMusic(game.MusicBackground, game.LoopForever)
	a.FadeOutMusic(10)
	if len(a.retired) != 1 {
		t.Errorf("retired tracks: got %d, want only the one still fading", len(a.retired))
	}
}
