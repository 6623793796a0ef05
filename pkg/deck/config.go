package deck

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/enginedeck/deck/pkg/deck/navigation"
	"github.com/enginedeck/deck/pkg/deck/views"
)

// FileConfig is the TOML configuration file of a shell:
//
//	[navigation]
//	home = "home"
//	root_fallback_sets_previous = false
//
//	[log]
//	level = "info"
//	path = "logs/deck.log"
//
//	[[views]]
//	id = "home"
//	title = "Home"
//
// Without any [[views]] the built-in catalog is used.
type FileConfig struct {
	Navigation NavigationConfig   `toml:"navigation"`
	Log        LogConfig          `toml:"log"`
	Views      []views.Definition `toml:"views"`
}

type NavigationConfig struct {
	Home                     navigation.View `toml:"home"`
	RootFallbackSetsPrevious bool            `toml:"root_fallback_sets_previous"`
}

type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// ParseConfig decodes a TOML configuration. Unknown keys are rejected.
func ParseConfig(data []byte) (FileConfig, error) {
	var fc FileConfig
	meta, err := toml.Decode(string(data), &fc)
	if err != nil {
		return FileConfig{}, NewConfigError("decode_config", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, NewConfigError("decode_config", fmt.Errorf("unknown keys: %v", undecoded))
	}
	return fc, nil
}

// LoadConfigFile reads and decodes a TOML configuration file.
func LoadConfigFile(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, NewConfigError("read_config", err)
	}
	return ParseConfig(data)
}

// Catalog builds the view catalog the file describes.
func (fc FileConfig) Catalog() (*views.Catalog, error) {
	defs := fc.Views
	if len(defs) == 0 {
		defs = views.Default().Definitions()
	}

	catalog, err := views.NewCatalog(fc.Navigation.Home, defs...)
	if err != nil {
		return nil, NewConfigError("build_catalog", err)
	}
	return catalog, nil
}
