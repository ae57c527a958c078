package game

import "fmt"

// AssetStore resolves logical texture names such as "player/player".
// It returns nil when a texture cannot be provided.
type AssetStore interface {
	Texture(name string) Texture
}

// Texture names
const (
	TexPlayer     = "player/player"
	TexHeart      = "heart/heart"
	TexMissile    = "missile/missile"
	TexGlow       = "glow/glow"
	TexBackground = "background/background"
	TexHealthBar  = "healthbar/healthbar"
	TexArrow      = "arrow/arrow"
	TexDim        = "dim/dim"
	TexFade       = "death/transition_background"
	TexIcon       = "icon/icon"
)

// Particle textures, in the order the thruster distribution indexes them
var particleTextureNames = []string{
	"particle/red_circle",
	"particle/orange_circle",
	"particle/white_circle",
	"particle/green_circle",
}

const greenParticle = 3

// ExplosionFrameName returns the texture name of explosion frame i (1-based)
func ExplosionFrameName(i int) string {
	return fmt.Sprintf("hit/hit%d", i)
}

// EnemyFrameName returns the texture name of an enemy animation frame (1-based)
func EnemyFrameName(kind string, i int) string {
	return fmt.Sprintf("%s/frames/frame%d", kind, i)
}

// EnemyAttackFrameName returns the texture name of an enemy projectile frame (1-based)
func EnemyAttackFrameName(kind string, i int) string {
	return fmt.Sprintf("%s/attacks/frame%d", kind, i)
}

// GlyphName returns the texture name of a font glyph
func GlyphName(c rune) string {
	return "font/" + string(c)
}

// enemySprites holds the frames of one enemy type
type enemySprites struct {
	body   []Texture
	attack []Texture
}

// sprites is the resolved texture set a Game draws with
type sprites struct {
	player, heart, missile Texture
	glow, background       Texture
	healthBar, arrow       Texture
	dim, fade              Texture

	particles []Texture
	explosion []Texture
	enemies   map[string]enemySprites
}

func loadSprites(store AssetStore, catalog *EnemyCatalog) *sprites {
	s := &sprites{
		player:     store.Texture(TexPlayer),
		heart:      store.Texture(TexHeart),
		missile:    store.Texture(TexMissile),
		glow:       store.Texture(TexGlow),
		background: store.Texture(TexBackground),
		healthBar:  store.Texture(TexHealthBar),
		arrow:      store.Texture(TexArrow),
		dim:        store.Texture(TexDim),
		fade:       store.Texture(TexFade),
		enemies:    make(map[string]enemySprites),
	}

	for _, name := range particleTextureNames {
		s.particles = append(s.particles, store.Texture(name))
	}
	for i := 1; i <= explosionFrames; i++ {
		s.explosion = append(s.explosion, store.Texture(ExplosionFrameName(i)))
	}

	for _, kind := range catalog.Types {
		var es enemySprites
		for i := 1; i <= kind.Frames; i++ {
			es.body = append(es.body, store.Texture(EnemyFrameName(kind.Name, i)))
		}
		es.attack = append(es.attack, store.Texture(EnemyAttackFrameName(kind.Name, 1)))
		s.enemies[kind.Name] = es
	}

	return s
}

// TextureNames lists every texture a Game resolves for catalog, glyphs
// included, in load order.
func TextureNames(catalog *EnemyCatalog) []string {
	names := []string{
		TexPlayer, TexHeart, TexMissile, TexGlow, TexBackground,
		TexHealthBar, TexArrow, TexDim, TexFade, TexIcon,
	}
	names = append(names, particleTextureNames...)
	for i := 1; i <= explosionFrames; i++ {
		names = append(names, ExplosionFrameName(i))
	}
	for _, kind := range catalog.Types {
		for i := 1; i <= kind.Frames; i++ {
			names = append(names, EnemyFrameName(kind.Name, i))
		}
		names = append(names, EnemyAttackFrameName(kind.Name, 1))
	}
	for _, c := range DefaultGlyphs {
		names = append(names, GlyphName(c))
	}
	return names
}
