package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the keys accepted in a -config TOML file.
type fileConfig struct {
	Display struct {
		Scale      float64 `toml:"scale"`
		Fullscreen bool    `toml:"fullscreen"`
		TPS        int     `toml:"tps"`
	} `toml:"display"`
	Debug struct {
		Hitboxes bool `toml:"hitboxes"`
		SkipMenu bool `toml:"skip_menu"`
	} `toml:"debug"`
}

// LoadFile applies display and debug overrides from a TOML file. Keys that
// are absent keep their defaults; unknown keys are an error.
func LoadFile(path string) error {
	var f fileConfig
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if md.IsDefined("display", "scale") {
		if f.Display.Scale <= 0 {
			return fmt.Errorf("config %s: display.scale must be positive, got %v", path, f.Display.Scale)
		}
		C.Scale = f.Display.Scale
	}
	if md.IsDefined("display", "fullscreen") {
		C.Fullscreen = f.Display.Fullscreen
	}
	if md.IsDefined("display", "tps") {
		if f.Display.TPS <= 0 {
			return fmt.Errorf("config %s: display.tps must be positive, got %d", path, f.Display.TPS)
		}
		C.TPS = f.Display.TPS
	}
	if md.IsDefined("debug", "hitboxes") {
		Debug.Hitboxes = f.Debug.Hitboxes
	}
	if md.IsDefined("debug", "skip_menu") {
		Debug.SkipMenu = f.Debug.SkipMenu
	}
	return nil
}
