package game

import "testing"

func TestWaveSchedulerStart(t *testing.T) {
	s := NewWaveScheduler(DefaultEnemyCatalog(), NewRand(1))
	if s.Wave != 1 || s.MaxEnemies != 3 || s.Spawned != 0 {
		t.Errorf("initial state: wave %d, max %d, spawned %d", s.Wave, s.MaxEnemies, s.Spawned)
	}

	order, cleared := s.Update(0)
	if order == nil {
		t.Fatal("first update should spawn immediately")
	}
	if cleared {
		t.Error("wave cleared on its first spawn")
	}
	if order.Kind.IsBoss() {
		t.Errorf("wave 1 spawned a boss (%s)", order.Kind.Name)
	}
	if n := s.NextSpawnTicks(); n < spawnDelay.Min || n > spawnDelay.Max {
		t.Errorf("spawn delay %d outside [%d, %d]", n, spawnDelay.Min, spawnDelay.Max)
	}
}

func TestWaveSchedulerNeverOverspawns(t *testing.T) {
	s := NewWaveScheduler(DefaultEnemyCatalog(), NewRand(42))
	live := 0

	for tick := 0; tick < 20000; tick++ {
		order, cleared := s.Update(live)
		if order != nil {
			live++
			xs, ys := spawnArea(order.Kind.Width, order.Kind.Height)
			if order.X < float64(xs.Min) || order.X > float64(xs.Max) ||
				order.Y < float64(ys.Min) || order.Y > float64(ys.Max) {
				t.Fatalf("tick %d: spawn at (%v, %v) outside the spawn area", tick, order.X, order.Y)
			}
			if order.Kind.IsBoss() != s.IsBossWave() && !cleared {
				t.Fatalf("tick %d: %s spawned on wave %d", tick, order.Kind.Name, s.Wave)
			}
		}
		if s.Spawned > s.RealMax() {
			t.Fatalf("tick %d: spawned %d exceeds %d", tick, s.Spawned, s.RealMax())
		}
		if live > s.RealMax() && !cleared {
			t.Fatalf("tick %d: %d live enemies exceeds %d", tick, live, s.RealMax())
		}

		// enemies die quickly so waves keep turning over
		if tick%200 == 0 && live > 0 {
			live--
		}
	}

	if s.Wave < 5 {
		t.Errorf("expected several waves to clear, reached wave %d", s.Wave)
	}
}

func TestWaveClear(t *testing.T) {
	s := NewWaveScheduler(DefaultEnemyCatalog(), NewRand(1))
	s.Spawned = s.RealMax()

	order, cleared := s.Update(0)
	if order != nil {
		t.Error("full wave should not spawn")
	}
	if !cleared {
		t.Fatal("wave with every enemy spawned and none alive should clear")
	}
	if s.Wave != 2 || s.MaxEnemies != 4 || s.Spawned != 0 {
		t.Errorf("after clear: wave %d, max %d, spawned %d; want 2, 4, 0", s.Wave, s.MaxEnemies, s.Spawned)
	}
	if s.NextWaveTicks() != wavePauseTicks {
		t.Errorf("pause: got %d, want %d", s.NextWaveTicks(), wavePauseTicks)
	}

	for tick := 1; ; tick++ {
		order, _ := s.Update(0)
		if order == nil {
			continue
		}
		if tick < wavePauseTicks {
			t.Errorf("spawned %d ticks after clearing, before the %d tick pause", tick, wavePauseTicks)
		}
		break
	}
}

func TestBossWave(t *testing.T) {
	s := NewWaveScheduler(DefaultEnemyCatalog(), NewRand(1))
	s.Wave = 5
	s.MaxEnemies = 7

	if !s.IsBossWave() || s.RealMax() != 1 {
		t.Fatalf("wave 5: boss %v, real max %d", s.IsBossWave(), s.RealMax())
	}

	order, _ := s.Update(0)
	if order == nil || !order.Kind.IsBoss() {
		t.Fatalf("boss wave should spawn a boss, got %+v", order)
	}

	s.nextSpawnTicks = 0
	if order, _ := s.Update(1); order != nil {
		t.Error("boss wave spawned a second enemy")
	}

	s.nextSpawnTicks = 0
	_, cleared := s.Update(0)
	if !cleared {
		t.Fatal("boss wave should clear once the boss is dead")
	}
	if s.Wave != 6 || s.MaxEnemies != 8 {
		t.Errorf("after boss wave: wave %d, max %d; want 6, 8", s.Wave, s.MaxEnemies)
	}
}

func TestWaveBanner(t *testing.T) {
	b := NewWaveBanner()
	if !b.Active || b.X != bannerStartX {
		t.Fatalf("new banner: active %v at %v", b.Active, b.X)
	}

	b.Update()
	if b.X != -270 {
		t.Errorf("first step: got %v, want -270", b.X)
	}

	prev := b.X
	for i := 0; b.Active; i++ {
		if i > 2000 {
			t.Fatal("banner never finished")
		}
		b.Update()
		if b.X <= prev {
			t.Fatalf("banner moved backwards from %v to %v", prev, b.X)
		}
		prev = b.X
	}
	if b.X < bannerEndX {
		t.Errorf("banner finished at %v, before %d", b.X, bannerEndX)
	}

	b.Update()
	if b.X != bannerStartX {
		t.Errorf("inactive banner should rest at %d, got %v", bannerStartX, b.X)
	}
}

func TestWaveBannerDim(t *testing.T) {
	tests := []struct {
		x    float64
		want int
	}{
		{300, 150},
		{-300, 0},
		{650, 0},
		{475, 75},
	}
	for _, tt := range tests {
		b := &WaveBanner{X: tt.x, Active: true}
		if got := b.DimAlpha(); got != tt.want {
			t.Errorf("DimAlpha at %v: got %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestBackgroundWraps(t *testing.T) {
	b := NewBackground(nil)
	for i := 0; i < 175; i++ {
		b.Scroll()
	}
	if y1, y2 := b.Offsets(); y1 != -700 || y2 != 0 {
		t.Errorf("after one tile: (%d, %d), want (-700, 0)", y1, y2)
	}
	for i := 0; i < 175; i++ {
		b.Scroll()
	}
	if y1, y2 := b.Offsets(); y1 != 0 || y2 != -700 {
		t.Errorf("after two tiles: (%d, %d), want (0, -700)", y1, y2)
	}
}
