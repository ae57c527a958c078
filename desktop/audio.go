package desktop

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"overwhelming/config"
	"overwhelming/game"
	"overwhelming/placeholder"
)

// SampleRate is the rate of the shared audio context
const SampleRate = 44100

var audioExtensions = []string{".wav", ".ogg", ".mp3"}

// Audio plays sounds and music through an ebiten audio context. Sounds are
// decoded once into PCM and replayed from memory so shots can overlap.
type Audio struct {
	ctx      *audio.Context
	root     string
	settings *config.Store
	tps      int

	pcm map[string][]byte

	music  musicPlayer
	fading []*fadingTrack
}

// musicPlayer is the part of an audio.Player that music fades drive
type musicPlayer interface {
	Volume() float64
	SetVolume(volume float64)
	Pause()
	Close() error
}

// fadingTrack is a replaced or faded track on its way to silence
type fadingTrack struct {
	player musicPlayer
	fade   musicFade
}

// musicFade ramps the music volume to zero over a number of ticks
type musicFade struct {
	remaining int
	total     int
	from      float64
}

// step advances the fade and returns the volume to apply, and whether the
// fade has finished.
func (f *musicFade) step() (float64, bool) {
	if f.remaining <= 0 {
		return 0, true
	}
	f.remaining--
	return f.from * float64(f.remaining) / float64(f.total), f.remaining == 0
}

// NewAudio creates the audio player. Only one audio context may exist per
// process.
func NewAudio(root string, settings *config.Store, tps int) *Audio {
	return &Audio{
		ctx:      audio.NewContext(SampleRate),
		root:     root,
		settings: settings,
		tps:      tps,
		pcm:      make(map[string][]byte),
	}
}

func (a *Audio) PlaySound(name string) {
	s := a.settings.Settings()
	if !s.SoundEnabled {
		return
	}
	data, err := a.load(name)
	if err != nil {
		log.Printf("[Audio] %v", err)
		return
	}
	p := a.ctx.NewPlayerFromBytes(data)
	p.SetVolume(s.SoundVolume)
	p.Play()
}

func (a *Audio) PlayMusic(name string, loops int) {
	a.retireMusic(game.MusicReplaceFadeMs)

	s := a.settings.Settings()
	if !s.MusicEnabled {
		return
	}
	data, err := a.load(name)
	if err != nil {
		log.Printf("[Audio] %v", err)
		return
	}

	var stream io.ReadSeeker
	if loops == game.LoopForever {
		stream = audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	} else {
		stream = bytes.NewReader(bytes.Repeat(data, loops+1))
	}
	p, err := a.ctx.NewPlayer(stream)
	if err != nil {
		log.Printf("[Audio] failed to create music player: %v", err)
		return
	}
	p.SetVolume(s.MusicVolume)
	p.Play()
	a.music = p
}

func (a *Audio) FadeOutMusic(ms int) {
	a.retireMusic(ms)
}

// retireMusic hands the current track to the fades, leaving no current track
func (a *Audio) retireMusic(ms int) {
	if a.music == nil {
		return
	}
	ticks := max(ms*a.tps/1000, 1)
	a.fading = append(a.fading, &fadingTrack{
		player: a.music,
		fade:   musicFade{remaining: ticks, total: ticks, from: a.music.Volume()},
	})
	a.music = nil
}

// Update advances every running fade by one tick
func (a *Audio) Update() {
	kept := a.fading[:0]
	for _, t := range a.fading {
		v, done := t.fade.step()
		t.player.SetVolume(v)
		if done {
			closeMusic(t.player)
			continue
		}
		kept = append(kept, t)
	}
	clear(a.fading[len(kept):])
	a.fading = kept
}

// ApplySettings picks up changed volume or mute settings
func (a *Audio) ApplySettings() {
	s := a.settings.Settings()
	if !s.MusicEnabled {
		a.stopMusic()
		return
	}
	if a.music != nil {
		a.music.SetVolume(s.MusicVolume)
	}
}

// stopMusic silences the current track and any still fading
func (a *Audio) stopMusic() {
	if a.music != nil {
		closeMusic(a.music)
		a.music = nil
	}
	for _, t := range a.fading {
		closeMusic(t.player)
	}
	a.fading = nil
}

func closeMusic(p musicPlayer) {
	p.Pause()
	if err := p.Close(); err != nil {
		log.Printf("[Audio] failed to close music player: %v", err)
	}
}

// load returns decoded PCM for name from a file under audio/, or a
// synthesized stand-in when no file exists.
func (a *Audio) load(name string) ([]byte, error) {
	if data, ok := a.pcm[name]; ok {
		return data, nil
	}

	var data []byte
	for _, ext := range audioExtensions {
		path := filepath.Join(a.root, "audio", name+ext)
		d, err := decodeFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		data = d
		break
	}

	if data == nil {
		d, err := placeholder.PCM(name, SampleRate)
		if err != nil {
			return nil, err
		}
		data = d
	}

	a.pcm[name] = data
	return data, nil
}

func decodeFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	reader := bytes.NewReader(raw)

	var stream io.Reader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(SampleRate, reader)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(SampleRate, reader)
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(SampleRate, reader)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio %s: %w", path, err)
	}

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio %s: %w", path, err)
	}
	return data, nil
}
