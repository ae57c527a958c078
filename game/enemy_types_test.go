package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultEnemyCatalog(t *testing.T) {
	c := DefaultEnemyCatalog()

	if got := len(c.Types); got != 4 {
		t.Fatalf("types: got %d, want 4", got)
	}
	if got := len(c.Regular()); got != 3 {
		t.Errorf("regular types: got %d, want 3", got)
	}
	if got := len(c.Bosses()); got != 1 || c.Bosses()[0].Name != "sprayer" {
		t.Errorf("bosses: got %d, want only sprayer", got)
	}

	tests := []struct {
		name      string
		health    int
		shots     int
		cooldown  int
		damage    int
		particles bool
	}{
		{"soldier", 500, 1, 40, 20, true},
		{"compass", 1000, 8, 90, 40, true},
		{"shotgun", 1500, 5, 70, 30, true},
		{"sprayer", 4000, 1, 2, 30, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ok := c.Lookup(tt.name)
			if !ok {
				t.Fatalf("%s missing from the table", tt.name)
			}
			if k.Health != tt.health || k.ShotCount != tt.shots || k.ShotCooldown != tt.cooldown ||
				k.AttackDamage != tt.damage || k.Particles != tt.particles {
				t.Errorf("%s: got %+v", tt.name, *k)
			}
		})
	}

	if _, ok := c.Lookup("nobody"); ok {
		t.Error("Lookup found an unknown type")
	}
}

var validFields = []string{
	"speed: 1",
	"width: 80",
	"height: 94",
	"frameDelayTicks: 10",
	"frames: 2",
	"health: 500",
	"shotCooldown: 40",
	"shotCount: 1",
	"attackDamage: 20",
	"attackWidth: 20",
	"attackHeight: 20",
	"attackXMult: 1",
	"attackYMult: 3",
	"attackFrameTicks: 1",
}

// entry renders one table row, replacing fields named in overrides
func entry(name, category string, overrides ...string) string {
	s := "\n  - name: " + name + "\n    category: " + category
	for _, f := range validFields {
		key := f[:strings.Index(f, ":")]
		for _, o := range overrides {
			if strings.HasPrefix(o, key+":") {
				f = o
			}
		}
		s += "\n    " + f
	}
	return s
}

func TestParseEnemyCatalogErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "empty",
			yaml:    "enemies: []",
			wantErr: "enemies cannot be empty",
		},
		{
			name:    "no boss",
			yaml:    "enemies:" + entry("a", "regular"),
			wantErr: "at least one boss enemy is required",
		},
		{
			name:    "no regular",
			yaml:    "enemies:" + entry("a", "boss"),
			wantErr: "at least one regular enemy is required",
		},
		{
			name:    "duplicate",
			yaml:    "enemies:" + entry("a", "regular") + entry("a", "boss"),
			wantErr: `duplicate enemy type "a"`,
		},
		{
			name:    "bad category",
			yaml:    "enemies:" + entry("a", "elite") + entry("b", "boss"),
			wantErr: "category must be",
		},
		{
			name:    "zero width",
			yaml:    "enemies:" + entry("a", "regular", "width: 0") + entry("b", "boss"),
			wantErr: "a: width must be > 0, got 0",
		},
		{
			name:    "negative speed",
			yaml:    "enemies:" + entry("a", "regular", "speed: -1") + entry("b", "boss"),
			wantErr: "speed must be >= 0",
		},
		{
			name:    "too wide",
			yaml:    "enemies:" + entry("a", "regular", "width: 700") + entry("b", "boss"),
			wantErr: "does not fit the spawn area",
		},
		{
			name:    "malformed",
			yaml:    "enemies: [",
			wantErr: "failed to parse enemy table YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEnemyCatalog([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadEnemyCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "enemies.yaml")
	data := "enemies:" + entry("grunt", "regular") + entry("king", "boss", "health: 9000")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write table: %v", err)
	}

	c, err := LoadEnemyCatalog(path)
	if err != nil {
		t.Fatalf("LoadEnemyCatalog() error: %v", err)
	}
	king, ok := c.Lookup("king")
	if !ok || !king.IsBoss() || king.Health != 9000 {
		t.Errorf("king: %+v", king)
	}
	if got := c.Random(NewRand(1), CategoryRegular); got.Name != "grunt" {
		t.Errorf("Random regular: got %s, want grunt", got.Name)
	}

	if _, err := LoadEnemyCatalog(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
