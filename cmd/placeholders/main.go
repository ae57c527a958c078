// Command placeholders writes generated stand-in textures and sounds into an
// asset directory so the game can run without the real art.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"overwhelming/game"
	"overwhelming/placeholder"
)

const sampleRate = beep.SampleRate(44100)

func main() {
	out := flag.String("out", "assets", "Asset directory to write into")
	enemies := flag.String("enemies", "", "Enemy table YAML (default: built-in table)")
	force := flag.Bool("force", false, "Overwrite files that already exist")
	flag.Parse()

	catalog := game.DefaultEnemyCatalog()
	if *enemies != "" {
		c, err := game.LoadEnemyCatalog(*enemies)
		if err != nil {
			log.Fatalf("Failed to load enemy table: %v", err)
		}
		catalog = c
	}

	written, skipped := 0, 0
	for _, name := range game.TextureNames(catalog) {
		path := filepath.Join(*out, filepath.FromSlash(name)+".png")
		ok, err := writeFile(path, *force, func(f *os.File) error {
			return png.Encode(f, placeholder.Image(name))
		})
		if err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		if ok {
			written++
		} else {
			skipped++
		}
	}

	for _, name := range game.SoundNames() {
		path := filepath.Join(*out, "audio", name+".wav")
		ok, err := writeFile(path, *force, func(f *os.File) error {
			s, err := placeholder.Sound(name, sampleRate)
			if err != nil {
				return err
			}
			return wav.Encode(f, s, beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
		})
		if err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		if ok {
			written++
		} else {
			skipped++
		}
	}

	log.Printf("[Placeholders] wrote %d files into %s (%d already present)", written, *out, skipped)
}

// writeFile creates path and fills it with encode. Existing files are left
// alone unless force is set.
func writeFile(path string, force bool, encode func(*os.File) error) (bool, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return false, err
	}
	if err := encode(f); err != nil {
		f.Close()
		return false, err
	}
	return true, f.Close()
}
