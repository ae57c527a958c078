package game

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Category separates enemies spawned on regular waves from bosses
type Category string

const (
	CategoryRegular Category = "regular"
	CategoryBoss    Category = "boss"
)

// EnemyType holds configuration for each enemy type
type EnemyType struct {
	Name     string   `yaml:"name"`
	Category Category `yaml:"category"`

	Speed           float64 `yaml:"speed"`
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	FrameDelayTicks int     `yaml:"frameDelayTicks"`
	Frames          int     `yaml:"frames"` // body animation frames
	Health          int     `yaml:"health"`

	ShotCooldown      int     `yaml:"shotCooldown"`
	ShotCount         int     `yaml:"shotCount"`
	AttackDamage      int     `yaml:"attackDamage"`
	AttackWidth       int     `yaml:"attackWidth"`
	AttackHeight      int     `yaml:"attackHeight"`
	AttackXMult       float64 `yaml:"attackXMult"`
	AttackYMult       float64 `yaml:"attackYMult"`
	AttackRotationVel float64 `yaml:"attackRotationVel"` // degrees per shot
	AttackFrameTicks  int     `yaml:"attackFrameTicks"`

	Particles bool `yaml:"particles"` // leaves a green trail
}

// IsBoss reports whether the type only spawns on boss waves
func (t *EnemyType) IsBoss() bool {
	return t.Category == CategoryBoss
}

// EnemyCatalog is the validated enemy parameter table
type EnemyCatalog struct {
	Types []EnemyType `yaml:"enemies"`

	byName  map[string]*EnemyType
	regular []*EnemyType
	bosses  []*EnemyType
}

//go:embed data/enemies.yaml
var defaultEnemyTable []byte

// DefaultEnemyCatalog returns the built-in enemy table
func DefaultEnemyCatalog() *EnemyCatalog {
	c, err := ParseEnemyCatalog(defaultEnemyTable)
	if err != nil {
		panic(fmt.Sprintf("built-in enemy table: %v", err))
	}
	return c
}

// LoadEnemyCatalog reads an enemy table from a YAML file
func LoadEnemyCatalog(path string) (*EnemyCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy table: %w", err)
	}
	c, err := ParseEnemyCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ParseEnemyCatalog decodes and validates an enemy table
func ParseEnemyCatalog(data []byte) (*EnemyCatalog, error) {
	var c EnemyCatalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse enemy table YAML: %w", err)
	}
	if err := validateEnemyCatalog(&c); err != nil {
		return nil, fmt.Errorf("invalid enemy table: %w", err)
	}
	c.index()
	return &c, nil
}

// NewEnemyCatalog validates a hand-built table and indexes a copy of it
func NewEnemyCatalog(types []EnemyType) (*EnemyCatalog, error) {
	c := &EnemyCatalog{Types: append([]EnemyType(nil), types...)}
	if err := validateEnemyCatalog(c); err != nil {
		return nil, fmt.Errorf("invalid enemy table: %w", err)
	}
	c.index()
	return c, nil
}

func (c *EnemyCatalog) index() {
	c.byName = make(map[string]*EnemyType, len(c.Types))
	c.regular = c.regular[:0]
	c.bosses = c.bosses[:0]
	for i := range c.Types {
		t := &c.Types[i]
		c.byName[t.Name] = t
		if t.IsBoss() {
			c.bosses = append(c.bosses, t)
		} else {
			c.regular = append(c.regular, t)
		}
	}
}

func validateEnemyCatalog(c *EnemyCatalog) error {
	if len(c.Types) == 0 {
		return fmt.Errorf("enemies cannot be empty")
	}

	seen := make(map[string]bool, len(c.Types))
	var regular, bosses int
	for i := range c.Types {
		t := &c.Types[i]
		if err := validateEnemyType(t); err != nil {
			return err
		}
		if seen[t.Name] {
			return fmt.Errorf("duplicate enemy type %q", t.Name)
		}
		seen[t.Name] = true
		if t.IsBoss() {
			bosses++
		} else {
			regular++
		}
	}

	if regular == 0 {
		return fmt.Errorf("at least one %s enemy is required", CategoryRegular)
	}
	if bosses == 0 {
		return fmt.Errorf("at least one %s enemy is required", CategoryBoss)
	}
	return nil
}

func validateEnemyType(t *EnemyType) error {
	if t.Name == "" {
		return fmt.Errorf("enemy type name cannot be empty")
	}
	if t.Category != CategoryRegular && t.Category != CategoryBoss {
		return fmt.Errorf("%s: category must be %q or %q, got %q", t.Name, CategoryRegular, CategoryBoss, t.Category)
	}

	positive := []struct {
		field string
		value int
	}{
		{"width", t.Width},
		{"height", t.Height},
		{"frameDelayTicks", t.FrameDelayTicks},
		{"frames", t.Frames},
		{"health", t.Health},
		{"shotCooldown", t.ShotCooldown},
		{"shotCount", t.ShotCount},
		{"attackWidth", t.AttackWidth},
		{"attackHeight", t.AttackHeight},
		{"attackFrameTicks", t.AttackFrameTicks},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s: %s must be > 0, got %d", t.Name, p.field, p.value)
		}
	}

	if t.Speed < 0 {
		return fmt.Errorf("%s: speed must be >= 0, got %g", t.Name, t.Speed)
	}
	if t.AttackDamage < 0 {
		return fmt.Errorf("%s: attackDamage must be >= 0, got %d", t.Name, t.AttackDamage)
	}
	if t.Width > PlayfieldWidth || t.Height > spawnFloor {
		return fmt.Errorf("%s: %dx%d does not fit the spawn area", t.Name, t.Width, t.Height)
	}
	return nil
}

// Lookup returns the type with the given name
func (c *EnemyCatalog) Lookup(name string) (*EnemyType, bool) {
	t, ok := c.byName[name]
	return t, ok
}

// Regular returns the types spawned on regular waves, in table order
func (c *EnemyCatalog) Regular() []*EnemyType { return c.regular }

// Bosses returns the types spawned on boss waves, in table order
func (c *EnemyCatalog) Bosses() []*EnemyType { return c.bosses }

// Random picks a type of the given category uniformly
func (c *EnemyCatalog) Random(rng *Rand, cat Category) *EnemyType {
	pool := c.regular
	if cat == CategoryBoss {
		pool = c.bosses
	}
	return pool[rng.Index(len(pool))]
}
