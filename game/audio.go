package game

// Sound and music names. Frontends map them to files under audio/.
const (
	SoundPlayerShot = "player-shot"
	SoundNextWave   = "next-wave"
	MusicBackground = "background-music"
)

// LoopForever plays a music track until it is replaced or faded out
const LoopForever = -1

// MusicReplaceFadeMs is how long a replaced track takes to fade out
const MusicReplaceFadeMs = 1000

// AudioPlayer plays sounds and music on behalf of the simulation
type AudioPlayer interface {
	// PlaySound plays a one-shot sound effect
	PlaySound(name string)

	// PlayMusic replaces the current track, fading the previous one out.
	// loops is the number of repeats, or LoopForever.
	PlayMusic(name string, loops int)

	// FadeOutMusic fades the current track to silence over ms milliseconds
	FadeOutMusic(ms int)
}

// NopAudio discards every request
type NopAudio struct{}

func (NopAudio) PlaySound(string)      {}
func (NopAudio) PlayMusic(string, int) {}
func (NopAudio) FadeOutMusic(int)      {}

// SoundNames lists every sound and music track the game plays
func SoundNames() []string {
	return []string{SoundPlayerShot, SoundNextWave, MusicBackground}
}
