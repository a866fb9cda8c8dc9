package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/litescript/ls-galaxy/internal/orbit"
)

// Catalog is the static set of bodies defined at startup.
type Catalog struct {
	Bodies []Body `json:"bodies"`
}

// DefaultCatalog returns the built-in galaxy.
func DefaultCatalog() *Catalog {
	return &Catalog{Bodies: []Body{
		{
			ID: "soon1", Label: "Number Plates", Color: "#555555", Kind: KindGeneric,
			Orbit:   orbit.Params{Radius: 10, Speed: 0.18, Inclination: 0.05, Phase: 0},
			VideoID: "75NjeNWWQ38",
		},
		{
			ID: "resume", Label: "Resume", Color: "#2a4a6a", Kind: KindDocument,
			Orbit: orbit.Params{Radius: 12, Speed: 0.14, Inclination: 0.03, Phase: 1.25},
		},
		{
			ID: "ipod", Label: "iPod", Color: "#e0e0e0", Kind: KindPlayer,
			Orbit: orbit.Params{Radius: 14.5, Speed: 0.11, Inclination: -0.04, Phase: 2.5},
		},
		{
			ID: "tv", Label: "TV", Color: "#8b5e3c", Kind: KindMediaPanel,
			Orbit: orbit.Params{Radius: 17, Speed: 0.08, Inclination: 0.02, Phase: 3.75},
		},
		{
			ID: "snowboard", Label: "Snowboard", Color: "#1a8cff", Kind: KindShowcaseVideo,
			Orbit:       orbit.Params{Radius: 22, Speed: 0.04, Inclination: 0.65, Phase: 5.0},
			NoOrbitRing: true,
			VideoID:     "mmnwUgfNTsU",
		},
		{
			ID: "belt", Label: "Asteroid Belt", Color: "#8a8a9a", Kind: KindDecorative,
			Orbit: orbit.Params{Radius: 9, Speed: 0.05},
		},
		{
			ID: "drifter", Label: "Drifter", Color: "#c0c8ff", Kind: KindDecorative,
			Orbit: orbit.Params{Radius: 30, Speed: 0.025, Inclination: -0.1, Phase: 4.0},
		},
	}}
}

// LoadCatalog decodes a JSON catalog and validates it.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadCatalogFile reads a JSON catalog from disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	c, err := LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// WriteJSON writes the catalog as indented JSON.
func (c *Catalog) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// Validate checks identifiers are present and unique and radii are positive.
func (c *Catalog) Validate() error {
	if len(c.Bodies) == 0 {
		return fmt.Errorf("catalog has no bodies")
	}
	seen := make(map[string]bool, len(c.Bodies))
	for i, b := range c.Bodies {
		if b.ID == "" {
			return fmt.Errorf("body %d: missing id", i)
		}
		if seen[b.ID] {
			return fmt.Errorf("body %q: duplicate id", b.ID)
		}
		seen[b.ID] = true
		if b.Orbit.Radius <= 0 {
			return fmt.Errorf("body %q: radius must be positive", b.ID)
		}
	}
	return nil
}

// Get returns a body by identifier.
func (c *Catalog) Get(id string) (Body, bool) {
	for _, b := range c.Bodies {
		if b.ID == id {
			return b, true
		}
	}
	return Body{}, false
}

// Orbiters returns every body in the form the orbit model consumes.
func (c *Catalog) Orbiters() []orbit.Orbiter {
	out := make([]orbit.Orbiter, len(c.Bodies))
	for i, b := range c.Bodies {
		out[i] = b.Orbiter()
	}
	return out
}

// Visible returns the non-decorative bodies in catalog order.
func (c *Catalog) Visible() []Body {
	var out []Body
	for _, b := range c.Bodies {
		if !b.Decorative() {
			out = append(out, b)
		}
	}
	return out
}
