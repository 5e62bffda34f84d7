package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ValueKind discriminates the variants of Value.
type ValueKind uint8

// Kinds of resolved values. The zero Value is of kind NoValue and renders as
// the empty string.
const (
	NoValue ValueKind = iota
	KeywordValue
	ColorValue
	LengthValue
)

func (k ValueKind) String() string {
	switch k {
	case KeywordValue:
		return "keyword"
	case ColorValue:
		return "color"
	case LengthValue:
		return "length"
	}
	return "none"
}

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// String renders a color as #RRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA is part of interface color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 0xff}.RGBA()
}

var _ color.Color = Color{}

// Length is a numeric length. The unit is kept for debugging only: lengths
// always render as pixels.
type Length struct {
	Magnitude float64
	Unit      string
}

// String renders a length as its magnitude in shortest form, followed by "px".
func (l Length) String() string {
	return strconv.FormatFloat(l.Magnitude, 'f', -1, 64) + "px"
}

// Value is a resolved style value. It is a closed union of a keyword, an RGB
// color and a length; use Match to decompose it.
type Value struct {
	kind    ValueKind
	keyword string
	color   Color
	length  Length
}

// Keyword creates a keyword value.
func Keyword(s string) Value {
	return Value{kind: KeywordValue, keyword: s}
}

// RGB creates a color value.
func RGB(r, g, b uint8) Value {
	return Value{kind: ColorValue, color: Color{r, g, b}}
}

// ColorOf creates a color value from any color.Color. Alpha is dropped.
func ColorOf(c color.Color) Value {
	if c == nil {
		return Value{}
	}
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB(nrgba.R, nrgba.G, nrgba.B)
}

// Px creates a length value in pixels.
func Px(x float64) Value {
	return LengthOf(x, "px")
}

// LengthOf creates a length value with a given unit.
func LengthOf(x float64, unit string) Value {
	return Value{kind: LengthValue, length: Length{x, unit}}
}

// Kind returns the variant of a value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// String is the one canonical text form of a value: keywords verbatim, colors
// as #RRGGBB, lengths as e.g. 12px.
func (v Value) String() string {
	switch v.kind {
	case KeywordValue:
		return v.keyword
	case ColorValue:
		return v.color.String()
	case LengthValue:
		return v.length.String()
	}
	return ""
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher to decompose a value in a switch statement:
//
//    var c style.Color
//    switch m := v.Match(); m {
//    case m.Color(&c):
//        …
//    }
//
func (v Value) Match() *Matcher {
	return &Matcher{value: v}
}

// Matcher decomposes values. Every method returns nil if it does not match.
type Matcher struct {
	value Value
}

// Keyword matches keyword values.
func (m *Matcher) Keyword(s *string) *Matcher {
	if m.value.kind != KeywordValue {
		return nil
	}
	if s != nil {
		*s = m.value.keyword
	}
	return m
}

// Color matches color values.
func (m *Matcher) Color(c *Color) *Matcher {
	if m.value.kind != ColorValue {
		return nil
	}
	if c != nil {
		*c = m.value.color
	}
	return m
}

// Length matches length values.
func (m *Matcher) Length(l *Length) *Matcher {
	if m.value.kind != LengthValue {
		return nil
	}
	if l != nil {
		*l = m.value.length
	}
	return m
}

// --- Conversion from raw properties ----------------------------------------

// Value converts a raw property into a resolved value:
//
//    "#ff0010", "#f01", "rgb(255, 0, 16)"   =>  color
//    "12px", "12", "1.5px"                 =>  length
//    anything else                        =>  keyword
//
// Conversion never fails. Malformed colors and numbers, signed numbers
// (e.g. "+5", "-2st") and numbers with units other than px (e.g. "80%")
// are kept as keywords, as speech properties use them for relative values.
func (p Property) Value() Value {
	s := strings.TrimSpace(string(p))
	if s == "" {
		return Keyword("")
	}
	switch {
	case s[0] == '#':
		if c, ok := parseHexColor(s[1:]); ok {
			return Value{kind: ColorValue, color: c}
		}
	case strings.HasPrefix(strings.ToLower(s), "rgb(") && s[len(s)-1] == ')':
		if c, ok := parseRGBFunction(s[4 : len(s)-1]); ok {
			return Value{kind: ColorValue, color: c}
		}
	case isDigit(s[0]) || (s[0] == '.' && len(s) > 1 && isDigit(s[1])):
		if l, ok := parseLength(s); ok {
			return Value{kind: LengthValue, length: l}
		}
	}
	return Keyword(s)
}

func parseHexColor(h string) (Color, bool) {
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	default:
		return Color{}, false
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{uint8(n >> 16), uint8(n >> 8), uint8(n)}, true
}

func parseRGBFunction(args string) (Color, bool) {
	fields := strings.FieldsFunc(args, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return Color{}, false
	}
	var ch [3]uint8
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Color{}, false
		}
		if n < 0 {
			n = 0
		} else if n > 255 {
			n = 255
		}
		ch[i] = uint8(n)
	}
	return Color{ch[0], ch[1], ch[2]}, true
}

func parseLength(s string) (Length, bool) {
	i := 0
	for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
		i++
	}
	unit := strings.ToLower(s[i:])
	if unit != "" && unit != "px" {
		return Length{}, false
	}
	x, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return Length{}, false
	}
	return Length{x, "px"}, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
