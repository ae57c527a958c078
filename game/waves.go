package game

import "log"

const (
	initialWave       = 1
	initialMaxEnemies = 3
	bossWaveInterval  = 5
	wavePauseTicks    = 240
)

var spawnDelay = IntRange{Min: 120, Max: 180}

// SpawnOrder asks the caller to place one enemy
type SpawnOrder struct {
	Kind *EnemyType
	X, Y float64
}

// WaveScheduler decides when enemies spawn and when a wave is cleared
type WaveScheduler struct {
	Wave       int
	MaxEnemies int // regular wave cap
	Spawned    int // spawned so far this wave

	nextSpawnTicks int
	nextWaveTicks  int

	catalog *EnemyCatalog
	rng     *Rand
}

// NewWaveScheduler creates a scheduler at wave 1
func NewWaveScheduler(catalog *EnemyCatalog, rng *Rand) *WaveScheduler {
	s := &WaveScheduler{catalog: catalog, rng: rng}
	s.Reset()
	return s
}

// Reset returns to wave 1 with no pending timers
func (s *WaveScheduler) Reset() {
	s.Wave = initialWave
	s.MaxEnemies = initialMaxEnemies
	s.Spawned = 0
	s.nextSpawnTicks = 0
	s.nextWaveTicks = 0
}

// IsBossWave reports whether the current wave is a lone boss wave
func (s *WaveScheduler) IsBossWave() bool {
	return s.Wave%bossWaveInterval == 0
}

// RealMax returns how many enemies the current wave spawns in total
func (s *WaveScheduler) RealMax() int {
	if s.IsBossWave() {
		return 1
	}
	return s.MaxEnemies
}

// NextSpawnTicks returns the ticks left until the next spawn attempt
func (s *WaveScheduler) NextSpawnTicks() int { return s.nextSpawnTicks }

// NextWaveTicks returns the ticks left in the pause between waves
func (s *WaveScheduler) NextWaveTicks() int { return s.nextWaveTicks }

// Update advances the timers by one tick. live is the number of enemies
// currently alive. It returns an enemy to spawn, if any, and whether the
// wave was cleared this tick.
func (s *WaveScheduler) Update(live int) (order *SpawnOrder, cleared bool) {
	if s.nextWaveTicks > 0 {
		s.nextWaveTicks--
	}

	if s.nextSpawnTicks > 0 {
		s.nextSpawnTicks--
		return nil, false
	}
	s.nextSpawnTicks = s.rng.Pick(spawnDelay)

	realMax := s.RealMax()
	if live < realMax && s.nextWaveTicks == 0 && s.Spawned != realMax {
		order = s.spawn()
		s.Spawned++
		live++
	}

	if s.Spawned == realMax && live == 0 {
		s.nextWaveTicks = wavePauseTicks
		s.MaxEnemies++
		s.Spawned = 0
		s.Wave++
		cleared = true
		log.Printf("[Waves] wave cleared, starting wave %d (boss=%v)", s.Wave, s.IsBossWave())
	}

	return order, cleared
}

func (s *WaveScheduler) spawn() *SpawnOrder {
	cat := CategoryRegular
	if s.IsBossWave() {
		cat = CategoryBoss
	}
	kind := s.catalog.Random(s.rng, cat)
	xs, ys := spawnArea(kind.Width, kind.Height)
	return &SpawnOrder{
		Kind: kind,
		X:    float64(s.rng.Pick(xs)),
		Y:    float64(s.rng.Pick(ys)),
	}
}

const (
	bannerStartX  = -300
	bannerCentreX = 300
	bannerEndX    = 700
	bannerY       = 350
	bannerSize    = 90
)

// WaveBanner slides "wave N" across the screen, easing towards the centre
type WaveBanner struct {
	X      float64
	Active bool
}

// NewWaveBanner creates a banner that plays immediately
func NewWaveBanner() *WaveBanner {
	return &WaveBanner{X: bannerStartX, Active: true}
}

// Start replays the banner from the left edge
func (b *WaveBanner) Start() {
	b.X = bannerStartX
	b.Active = true
}

// Update moves the banner one tick
func (b *WaveBanner) Update() {
	if !b.Active {
		b.X = bannerStartX
		return
	}
	b.X += float64(max(absInt(int((bannerCentreX-b.X)/20)), 1))
	if b.X >= bannerEndX {
		b.Active = false
	}
}

// DimAlpha returns the opacity of the overlay behind the banner. It peaks
// while the text is centred.
func (b *WaveBanner) DimAlpha() int {
	return max(150-150*absInt(int(bannerCentreX-b.X))/350, 0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
