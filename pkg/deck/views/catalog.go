// Package views defines the host's closed set of screens.
//
// The navigation controller treats views as opaque tokens. A Catalog is where
// the host declares which tokens exist, how they are titled and which engine
// they belong to, so it can refuse to open screens it cannot render.
package views

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/enginedeck/deck/pkg/deck/navigation"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Definition describes one screen.
type Definition struct {
	ID     navigation.View `toml:"id"`     // Token passed to the navigation controller
	Title  string          `toml:"title"`  // Display title; derived from ID when empty
	Engine Engine          `toml:"engine"` // Engine the screen drives, empty for shared screens
}

// Catalog is an ordered, immutable set of view definitions.
type Catalog struct {
	home  navigation.View
	order []navigation.View
	defs  map[navigation.View]Definition
}

// NewCatalog builds a catalog. An empty home means navigation.Home.
// The home view must be among defs.
func NewCatalog(home navigation.View, defs ...Definition) (*Catalog, error) {
	if home == "" {
		home = navigation.Home
	}

	c := &Catalog{
		home:  home,
		order: make([]navigation.View, 0, len(defs)),
		defs:  make(map[navigation.View]Definition, len(defs)),
	}

	for i, def := range defs {
		def.ID = navigation.View(strings.TrimSpace(string(def.ID)))
		if def.ID == "" {
			return nil, fmt.Errorf("definition %d: %w", i, ErrEmptyViewID)
		}
		if _, exists := c.defs[def.ID]; exists {
			return nil, fmt.Errorf("%q: %w", def.ID, ErrDuplicateView)
		}
		if !def.Engine.Valid() {
			return nil, fmt.Errorf("%q: %w %q", def.ID, ErrUnknownEngine, def.Engine)
		}
		c.defs[def.ID] = def
		c.order = append(c.order, def.ID)
	}

	if _, ok := c.defs[home]; !ok {
		return nil, fmt.Errorf("%q: %w", home, ErrNoHomeView)
	}

	return c, nil
}

type catalogFile struct {
	Home  navigation.View `toml:"home"`
	Views []Definition    `toml:"views"`
}

// ParseCatalog decodes a TOML catalog:
//
//	home = "home"
//
//	[[views]]
//	id = "home"
//	title = "Home"
//
//	[[views]]
//	id = "codex-session"
//	engine = "codex"
//
// Unknown keys are rejected.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	meta, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, fmt.Errorf("views: decode catalog: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("views: unknown catalog keys: %v", undecoded)
	}
	return NewCatalog(file.Home, file.Views...)
}

// LoadCatalog reads and parses a TOML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("views: read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// Home returns the catalog's home view.
func (c *Catalog) Home() navigation.View {
	return c.home
}

// Lookup returns the definition for view.
func (c *Catalog) Lookup(view navigation.View) (Definition, bool) {
	def, ok := c.defs[view]
	return def, ok
}

// Contains reports whether view is defined.
func (c *Catalog) Contains(view navigation.View) bool {
	_, ok := c.defs[view]
	return ok
}

// IDs returns the view ids in declaration order.
func (c *Catalog) IDs() []navigation.View {
	out := make([]navigation.View, len(c.order))
	copy(out, c.order)
	return out
}

// Definitions returns all definitions in declaration order.
func (c *Catalog) Definitions() []Definition {
	out := make([]Definition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.defs[id])
	}
	return out
}

// ForEngine returns the views bound to engine, in declaration order.
func (c *Catalog) ForEngine(engine Engine) []navigation.View {
	var out []navigation.View
	for _, id := range c.order {
		if c.defs[id].Engine == engine {
			out = append(out, id)
		}
	}
	return out
}

// Title returns the display title of view. Views without an explicit title,
// including ones missing from the catalog, get their id title-cased with
// dashes and underscores read as spaces.
func (c *Catalog) Title(view navigation.View) string {
	if def, ok := c.defs[view]; ok && def.Title != "" {
		return def.Title
	}
	return DeriveTitle(view)
}

var titleSeparators = strings.NewReplacer("-", " ", "_", " ")

// DeriveTitle turns a view id such as "usage-dashboard" into "Usage Dashboard".
func DeriveTitle(view navigation.View) string {
	words := strings.Fields(titleSeparators.Replace(string(view)))
	// A Caser keeps state between calls, so each title gets its own.
	return cases.Title(language.English).String(strings.Join(words, " "))
}
