package colour

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// RGB represents a colour in sRGB with 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Canonical foreground colours. Generated backgrounds are always paired with
// one of these two.
var (
	White = RGB{R: 255, G: 255, B: 255}
	Black = RGB{R: 0, G: 0, B: 0}
)

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
// Callers that want the presentation form uppercase it themselves.
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ErrInvalidFormat is returned when a hex colour string cannot be parsed.
var ErrInvalidFormat = errors.New("invalid colour format")

// ParseHex parses a hex colour string into RGB. The string must be exactly
// six hex digits, with or without a leading "#". Case is ignored.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Entry is a finalised background/foreground pairing. The foreground is
// always pure white or pure black. Lab preserves the background's CIELAB
// coordinates as sampled, before channel quantisation.
type Entry struct {
	Background RGB
	Foreground RGB
	Lab        Lab
}

// Pair is the hex representation of an entry, handed to the presentation and
// persistence layers.
type Pair struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

// Pair returns the entry's hex representation.
func (e Entry) Pair() Pair {
	return Pair{
		Background: e.Background.Hex(),
		Foreground: e.Foreground.Hex(),
	}
}

// Palette is an ordered collection of background/foreground entries.
// Order is acceptance order; a palette is never mutated after generation.
type Palette struct {
	Entries []Entry
}

// NewPalette creates a new Palette with the given entries.
func NewPalette(entries []Entry) *Palette {
	return &Palette{
		Entries: entries,
	}
}

// Len returns the number of entries in the palette.
func (p *Palette) Len() int {
	return len(p.Entries)
}

// Get returns the entry at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (Entry, error) {
	if index < 0 || index >= len(p.Entries) {
		return Entry{}, fmt.Errorf("index out of bounds: %d (palette has %d entries)", index, len(p.Entries))
	}
	return p.Entries[index], nil
}

// Pairs converts the palette to hex colour pairs in acceptance order.
func (p *Palette) Pairs() []Pair {
	pairs := make([]Pair, len(p.Entries))
	for i, e := range p.Entries {
		pairs[i] = e.Pair()
	}
	return pairs
}

// All returns an iterator over all entries in the palette using Go 1.25 range over functions.
func (p *Palette) All() func(func(int, Entry) bool) {
	return func(yield func(int, Entry) bool) {
		for i, e := range p.Entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count   int    `json:"count"`
	Colours []Pair `json:"colours"`
}

// ToJSON converts the palette to JSON format.
func (p *Palette) ToJSON() ([]byte, error) {
	paletteJSON := PaletteJSON{
		Count:   len(p.Entries),
		Colours: p.Pairs(),
	}

	return json.MarshalIndent(paletteJSON, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Entries) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p.Entries))
	for i, e := range p.Entries {
		result += fmt.Sprintf("  %2d: %s on %s (contrast %.2f:1)\n",
			i+1, e.Foreground.Hex(), e.Background.Hex(), ContrastRatio(e.Background, e.Foreground))
	}
	return result
}
