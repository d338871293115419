// Package colors normalizes the colour values found in extracted slide runs.
//
// Extraction emits colours in several shapes: hex strings ("FF8800", "#ff8800", "#f80"),
// tuple-like strings ("(255, 136, 0)", "rgb(255,136,0)"), JSON arrays ([255,136,0]),
// CSS/SVG colour names ("navy") and packed integers (0xFF8800). Every shape is decoded
// into a Value once, and Value.RGB is the single normalization point. Anything that
// cannot be understood decodes to an invalid Value that reports no colour.
package colors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Kind identifies which representation a Value was decoded from.
type Kind int

const (
	KindNone Kind = iota
	KindHex
	KindRGB
	KindNamed
	KindPacked
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindHex:
		return "hex"
	case KindRGB:
		return "rgb"
	case KindNamed:
		return "named"
	case KindPacked:
		return "packed"
	case KindInvalid:
		return "invalid"
	default:
		return "none"
	}
}

// RGB is a canonical 8-bit colour triple.
type RGB struct {
	R, G, B uint8
}

// Hex formats the colour as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Value is a tagged colour. The zero Value carries no colour.
type Value struct {
	Kind Kind
	Hex  string
	Name string
	RGB3 RGB
	Raw  string
}

// Hex builds a hex-string colour.
func Hex(s string) Value { return Value{Kind: KindHex, Hex: s} }

// Named builds a named colour.
func Named(name string) Value { return Value{Kind: KindNamed, Name: name} }

// FromRGB builds a colour from its components.
func FromRGB(r, g, b uint8) Value { return Value{Kind: KindRGB, RGB3: RGB{r, g, b}} }

// Packed builds a colour from a 0xRRGGBB integer.
func Packed(v int64) Value {
	if v < 0 || v > 0xFFFFFF {
		return Value{Kind: KindInvalid, Raw: strconv.FormatInt(v, 10)}
	}
	return Value{Kind: KindPacked, RGB3: unpack(v)}
}

// IsSet reports whether the value resolves to a colour.
func (v Value) IsSet() bool {
	_, ok := v.RGB()
	return ok
}

// RGB resolves the value to a canonical triple. ok is false for missing or malformed colours.
func (v Value) RGB() (RGB, bool) {
	switch v.Kind {
	case KindRGB, KindPacked:
		return v.RGB3, true
	case KindHex:
		return parseHex(v.Hex)
	case KindNamed:
		c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(v.Name))]
		if !ok {
			return RGB{}, false
		}
		return RGB{c.R, c.G, c.B}, true
	default:
		return RGB{}, false
	}
}

// Parse decodes a string in any of the supported textual forms.
func Parse(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}
	}
	if rgb, ok := parseTuple(s); ok {
		return Value{Kind: KindRGB, RGB3: rgb}
	}
	if _, ok := parseHex(s); ok {
		return Hex(s)
	}
	if _, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Named(s)
	}
	return Value{Kind: KindInvalid, Raw: s}
}

// UnmarshalJSON accepts null, strings, integers and [r,g,b] arrays. Unknown shapes
// decode to an invalid Value rather than failing the whole document.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*v = Value{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*v = Value{Kind: KindInvalid, Raw: string(data)}
			return nil
		}
		*v = Parse(s)
	case '[':
		var parts []float64
		if err := json.Unmarshal(data, &parts); err != nil || len(parts) != 3 {
			*v = Value{Kind: KindInvalid, Raw: string(data)}
			return nil
		}
		rgb, ok := componentsToRGB(parts)
		if !ok {
			*v = Value{Kind: KindInvalid, Raw: string(data)}
			return nil
		}
		*v = Value{Kind: KindRGB, RGB3: rgb}
	default:
		n, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			*v = Value{Kind: KindInvalid, Raw: string(data)}
			return nil
		}
		*v = Packed(n)
	}
	return nil
}

// MarshalJSON writes the canonical "#RRGGBB" form, or null when no colour resolves.
func (v Value) MarshalJSON() ([]byte, error) {
	rgb, ok := v.RGB()
	if !ok {
		return []byte("null"), nil
	}
	return json.Marshal(rgb.Hex())
}

func parseHex(s string) (RGB, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return RGB{}, false
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return unpack(int64(n)), true
}

func parseTuple(s string) (RGB, bool) {
	lower := strings.ToLower(s)
	lower = strings.TrimPrefix(lower, "rgb")
	if !strings.HasPrefix(lower, "(") || !strings.HasSuffix(lower, ")") {
		return RGB{}, false
	}
	fields := strings.Split(lower[1:len(lower)-1], ",")
	if len(fields) != 3 {
		return RGB{}, false
	}
	parts := make([]float64, 0, 3)
	for _, f := range fields {
		n, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return RGB{}, false
		}
		parts = append(parts, n)
	}
	return componentsToRGB(parts)
}

func componentsToRGB(parts []float64) (RGB, bool) {
	var out [3]uint8
	for i, p := range parts {
		if p < 0 || p > 255 || p != float64(int(p)) {
			return RGB{}, false
		}
		out[i] = uint8(p)
	}
	return RGB{out[0], out[1], out[2]}, true
}

func unpack(n int64) RGB {
	return RGB{R: uint8(n >> 16 & 0xFF), G: uint8(n >> 8 & 0xFF), B: uint8(n & 0xFF)}
}
