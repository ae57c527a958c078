package game

import (
	"strings"
	"testing"
)

type fakeTexture struct {
	name string
	w, h int
}

func (t *fakeTexture) Size() (int, int) { return t.w, t.h }

// fakeAssets hands out a texture for every name except those in missing.
// Glyphs are 40x60 like the shipped font.
type fakeAssets struct {
	missing map[string]bool
}

func (a *fakeAssets) Texture(name string) Texture {
	if a.missing[name] {
		return nil
	}
	if strings.HasPrefix(name, "font/") {
		return &fakeTexture{name: name, w: 40, h: 60}
	}
	return &fakeTexture{name: name, w: 10, h: 10}
}

type drawCall struct {
	tex  Texture
	dst  Rect
	opts DrawOptions
}

type recordingRenderer struct {
	clears   int
	presents int
	draws    []drawCall
}

func (r *recordingRenderer) Clear() {
	r.clears++
	r.draws = r.draws[:0]
}

func (r *recordingRenderer) DrawTexture(tex Texture, dst Rect, opts DrawOptions) {
	r.draws = append(r.draws, drawCall{tex: tex, dst: dst, opts: opts})
}

func (r *recordingRenderer) Present() { r.presents++ }

func (r *recordingRenderer) countNamed(prefix string) int {
	n := 0
	for _, d := range r.draws {
		if ft, ok := d.tex.(*fakeTexture); ok && strings.HasPrefix(ft.name, prefix) {
			n++
		}
	}
	return n
}

type recordingAudio struct {
	sounds []string
	music  []string
	loops  []int
	fades  []int
}

func (a *recordingAudio) PlaySound(name string) { a.sounds = append(a.sounds, name) }

func (a *recordingAudio) PlayMusic(name string, loops int) {
	a.music = append(a.music, name)
	a.loops = append(a.loops, loops)
}

func (a *recordingAudio) FadeOutMusic(ms int) { a.fades = append(a.fades, ms) }

func (a *recordingAudio) count(name string) int {
	n := 0
	for _, s := range a.sounds {
		if s == name {
			n++
		}
	}
	return n
}

type testGame struct {
	*Game
	keys  *KeyState
	audio *recordingAudio
}

func newTestGame(t *testing.T) *testGame {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 1

	keys := &KeyState{}
	audio := &recordingAudio{}
	g, err := NewGame(cfg, Deps{
		Assets: &fakeAssets{},
		Audio:  audio,
		Input:  keys,
	})
	if err != nil {
		t.Fatalf("NewGame() error: %v", err)
	}
	return &testGame{Game: g, keys: keys, audio: audio}
}

// step presses keys for one tick and runs Update
func (tg *testGame) step(t *testing.T, keys ...Key) error {
	t.Helper()
	for _, k := range keys {
		tg.keys.Press(k)
	}
	err := tg.Update()
	for _, k := range keys {
		tg.keys.Release(k)
	}
	return err
}

func testEnemyType(health int) *EnemyType {
	return &EnemyType{
		Name:             "target",
		Category:         CategoryRegular,
		Speed:            1,
		Width:            100,
		Height:           100,
		FrameDelayTicks:  10,
		Frames:           1,
		Health:           health,
		ShotCooldown:     1000,
		ShotCount:        1,
		AttackDamage:     10,
		AttackWidth:      20,
		AttackHeight:     20,
		AttackXMult:      1,
		AttackYMult:      1,
		AttackFrameTicks: 1,
	}
}
