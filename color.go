package sketch

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color represents an RGBA color with 8 bits per channel, the canonical
// representation every primitive draws with. The zero value is fully
// transparent and doubles as the "unset" style sentinel.
type Color struct {
	R, G, B, A uint8
}

// Color mode scales accepted by ColorMode. Numeric color components are
// interpreted in the range 0..mode.
const (
	Scale1   = 1.0
	Scale255 = 255.0
)

// Common colors.
var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Transparent = Color{}
)

// RGB creates an opaque color from 0-255 components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Gray creates an opaque grayscale color.
func Gray(v uint8) Color {
	return Color{R: v, G: v, B: v, A: 255}
}

// NRGBA converts the color to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex returns the color as a #rrggbb or #rrggbbaa string.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// ParseColor resolves a CSS-style color string: a named color ("red",
// "rebeccapurple"), a hex string (#rgb, #rgba, #rrggbb, #rrggbbaa), or
// functional notation (rgb(r, g, b), rgba(r, g, b, a) with a in 0..1).
// Unknown names and malformed strings return ErrInvalidColor.
func ParseColor(s string) (Color, error) {
	raw := strings.TrimSpace(strings.ToLower(s))
	switch {
	case raw == "":
		return Transparent, nil
	case strings.HasPrefix(raw, "#"):
		return parseHexColor(raw[1:])
	case strings.HasPrefix(raw, "rgb(") || strings.HasPrefix(raw, "rgba("):
		return parseFuncColor(raw)
	}
	if n, ok := colornames.Map[raw]; ok {
		return Color{R: n.R, G: n.G, B: n.B, A: n.A}, nil
	}
	return Transparent, fmt.Errorf("%w: bad color string %q", ErrInvalidColor, s)
}

func parseHexColor(hex string) (Color, error) {
	digit := func(b byte) (uint8, bool) {
		switch {
		case '0' <= b && b <= '9':
			return b - '0', true
		case 'a' <= b && b <= 'f':
			return b - 'a' + 10, true
		}
		return 0, false
	}
	pair := func(i int) (uint8, bool) {
		hi, ok1 := digit(hex[i])
		lo, ok2 := digit(hex[i+1])
		return hi<<4 | lo, ok1 && ok2
	}

	c := Color{A: 255}
	ok := false
	switch len(hex) {
	case 3, 4: // rgb / rgba, each digit doubled
		var vals [4]uint8
		ok = true
		for i := 0; i < len(hex); i++ {
			v, vok := digit(hex[i])
			vals[i] = v * 17
			ok = ok && vok
		}
		c.R, c.G, c.B = vals[0], vals[1], vals[2]
		if len(hex) == 4 {
			c.A = vals[3]
		}
	case 6, 8: // rrggbb / rrggbbaa
		var r, g, b, a uint8
		var ok1, ok2, ok3, ok4 bool
		r, ok1 = pair(0)
		g, ok2 = pair(2)
		b, ok3 = pair(4)
		a, ok4 = 255, true
		if len(hex) == 8 {
			a, ok4 = pair(6)
		}
		c.R, c.G, c.B, c.A = r, g, b, a
		ok = ok1 && ok2 && ok3 && ok4
	}
	if !ok {
		return Transparent, fmt.Errorf("%w: bad hex color %q", ErrInvalidColor, "#"+hex)
	}
	return c, nil
}

func parseFuncColor(s string) (Color, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return Transparent, fmt.Errorf("%w: bad color string %q", ErrInvalidColor, s)
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	wantAlpha := strings.HasPrefix(s, "rgba")
	if (wantAlpha && len(parts) != 4) || (!wantAlpha && len(parts) != 3) {
		return Transparent, fmt.Errorf("%w: bad color string %q", ErrInvalidColor, s)
	}

	var vals [4]float64
	vals[3] = 1
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Transparent, fmt.Errorf("%w: bad color string %q", ErrInvalidColor, s)
		}
		vals[i] = v
	}
	c, err := channel(vals[0], vals[1], vals[2])
	if err != nil {
		return Transparent, fmt.Errorf("%w: bad color string %q", ErrInvalidColor, s)
	}
	a := vals[3]
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c.A = uint8(math.Round(a * 255))
	return c, nil
}

// channel validates 0..255 components and builds an opaque color.
func channel(r, g, b float64) (Color, error) {
	for _, v := range [3]float64{r, g, b} {
		if v < 0 || v > 255 || math.IsNaN(v) {
			return Transparent, fmt.Errorf("%w: bad color sequence (%v, %v, %v)", ErrInvalidColor, r, g, b)
		}
	}
	return Color{
		R: uint8(math.Round(r)),
		G: uint8(math.Round(g)),
		B: uint8(math.Round(b)),
		A: 255,
	}, nil
}

// ResolveColor normalizes heterogeneous color arguments into a Color.
//
// Accepted forms:
//
//	ResolveColor(mode, v)          grayscale
//	ResolveColor(mode, "tomato")   CSS color string
//	ResolveColor(mode, c)          a Color, passed through
//	ResolveColor(mode, v, a)       grayscale + alpha
//	ResolveColor(mode, r, g, b)    RGB
//	ResolveColor(mode, r, g, b, a) RGBA
//
// A single slice argument ([]float64, []int, or []any) is unpacked as if
// its elements were passed positionally. Numeric components are
// interpreted in the range 0..mode: under Scale1 triples are scaled by
// 255 and rounded, under Scale255 they are used as-is. Alpha is always
// 0..255. Anything else returns ErrInvalidColor.
func ResolveColor(mode float64, args ...any) (Color, error) {
	if len(args) == 1 {
		switch v := args[0].(type) {
		case string:
			return ParseColor(v)
		case Color:
			return v, nil
		case []float64:
			return ResolveColor(mode, floatsToAny(v)...)
		case []int:
			f := make([]float64, len(v))
			for i, n := range v {
				f[i] = float64(n)
			}
			return ResolveColor(mode, floatsToAny(f)...)
		case []any:
			return ResolveColor(mode, v...)
		}
	}

	nums := make([]float64, 0, 4)
	for _, a := range args {
		v, ok := toFloat(a)
		if !ok {
			return Transparent, fmt.Errorf("%w: bad color arguments %v", ErrInvalidColor, args)
		}
		nums = append(nums, v)
	}

	scale := func(v float64) float64 {
		if mode == Scale1 {
			return math.Round(255 * v)
		}
		return v
	}

	switch len(nums) {
	case 1:
		v := scale(nums[0])
		return channel(v, v, v)
	case 2:
		v := scale(nums[0])
		c, err := channel(v, v, v)
		if err != nil {
			return Transparent, err
		}
		a := nums[1]
		if mode == Scale1 {
			a = math.Round(255 * a)
		}
		if a < 0 || a > 255 {
			return Transparent, fmt.Errorf("%w: bad alpha %v", ErrInvalidColor, nums[1])
		}
		c.A = uint8(math.Round(a))
		return c, nil
	case 3:
		return channel(scale(nums[0]), scale(nums[1]), scale(nums[2]))
	case 4:
		c, err := channel(scale(nums[0]), scale(nums[1]), scale(nums[2]))
		if err != nil {
			return Transparent, err
		}
		a := nums[3]
		if mode == Scale1 {
			a = math.Round(255 * a)
		}
		if a < 0 || a > 255 {
			return Transparent, fmt.Errorf("%w: bad alpha %v", ErrInvalidColor, nums[3])
		}
		c.A = uint8(math.Round(a))
		return c, nil
	}
	return Transparent, fmt.Errorf("%w: bad color arguments %v", ErrInvalidColor, args)
}

func floatsToAny(v []float64) []any {
	out := make([]any, len(v))
	for i, f := range v {
		out[i] = f
	}
	return out
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint8:
		return float64(n), true
	}
	return 0, false
}
