// Package config stores user preferences between runs.
package config

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the storage namespace used by gdata
const AppName = "overwhelming"

// Settings are the user's audio and display preferences
type Settings struct {
	MusicVolume  float64 `yaml:"musicVolume"`  // 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"`  // 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"`
	SoundEnabled bool    `yaml:"soundEnabled"`
	Fullscreen   bool    `yaml:"fullscreen"`
}

// DefaultSettings returns the settings used before anything is saved
func DefaultSettings() *Settings {
	return &Settings{
		MusicVolume:  0.7,
		SoundVolume:  0.8,
		MusicEnabled: true,
		SoundEnabled: true,
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Store loads and saves Settings through gdata. A Store without a gdata
// manager keeps settings in memory only.
type Store struct {
	manager  *gdata.Manager
	settings *Settings
}

// Open opens the platform storage for AppName. If storage is unavailable the
// returned Store runs in memory and the error explains why.
func Open() (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return NewStore(nil), fmt.Errorf("failed to open settings storage: %w", err)
	}
	return NewStore(m), nil
}

// NewStore creates a store over manager, which may be nil. Saved settings
// are loaded immediately; a failed load falls back to defaults.
func NewStore(manager *gdata.Manager) *Store {
	s := &Store{
		manager:  manager,
		settings: DefaultSettings(),
	}
	if err := s.Load(); err != nil {
		log.Printf("[Settings] Warning: failed to load settings: %v (using defaults)", err)
	}
	return s
}

// Load reads the saved settings, keeping defaults when nothing was saved
func (s *Store) Load() error {
	if s.manager == nil {
		s.settings = DefaultSettings()
		return nil
	}
	if !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		s.settings = DefaultSettings()
		return nil
	}

	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		s.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		s.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.MusicVolume = clampVolume(loaded.MusicVolume)
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)

	s.settings = loaded
	log.Printf("[Settings] loaded")
	return nil
}

// Save writes the settings. It is a no-op without a gdata manager.
func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[Settings] saved")
	return nil
}

// Persistent reports whether settings survive a restart
func (s *Store) Persistent() bool {
	return s.manager != nil
}

// Settings returns the current settings
func (s *Store) Settings() *Settings {
	return s.settings
}

// SetMusicVolume sets the music volume, clamped to 0.0 ~ 1.0
func (s *Store) SetMusicVolume(v float64) {
	s.settings.MusicVolume = clampVolume(v)
}

// SetSoundVolume sets the sound effect volume, clamped to 0.0 ~ 1.0
func (s *Store) SetSoundVolume(v float64) {
	s.settings.SoundVolume = clampVolume(v)
}

// SetMuted enables or disables both music and sound effects
func (s *Store) SetMuted(muted bool) {
	s.settings.MusicEnabled = !muted
	s.settings.SoundEnabled = !muted
}

// SetFullscreen records whether the game starts fullscreen
func (s *Store) SetFullscreen(on bool) {
	s.settings.Fullscreen = on
}

// ToggleAudio flips music and sound together and saves. It returns whether
// audio is now enabled.
func (s *Store) ToggleAudio() bool {
	enabled := !(s.settings.MusicEnabled || s.settings.SoundEnabled)
	s.SetMuted(!enabled)
	if err := s.Save(); err != nil {
		log.Printf("[Settings] Warning: %v", err)
	}
	return enabled
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
