package aerolabel

import (
	"errors"
	"fmt"
	"image/color"
)

// MetersPerNM is the number of meters in one nautical mile.
const MetersPerNM = 1852.0

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorSubLabel is the fixed style of the secondary label line. It does not
// follow the label's own text color.
var ColorSubLabel = Color{1, 1, 1, 0.6}

// NRGBA converts c to a non-premultiplied 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: clampByte(c.R),
		G: clampByte(c.G),
		B: clampByte(c.B),
		A: clampByte(c.A),
	}
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Box is an axis-aligned pixel rectangle in screen coordinates. Screen
// coordinates have their origin at the bottom-left with Y increasing upward,
// so Top >= Bottom for a non-empty box.
type Box struct {
	Left, Bottom, Right, Top int
}

// Width returns the horizontal extent of the box.
func (b Box) Width() int { return b.Right - b.Left }

// Height returns the vertical extent of the box.
func (b Box) Height() int { return b.Top - b.Bottom }

// Category is the size class of an aircraft. It only selects how far above
// the aircraft's reference point the label is placed.
type Category uint8

const (
	CategoryUnknown Category = iota // no model or no wake category known
	CategoryLight                   // ICAO wake category L
	CategoryMedium                  // ICAO wake category M
	CategoryHeavy                   // ICAO wake category H
	CategorySuper                   // ICAO wake category J
)

// CategoryFromWTC maps an ICAO wake turbulence category designator to a
// Category. Only the first letter is significant; anything unrecognized,
// including the empty string, yields CategoryUnknown.
func CategoryFromWTC(wtc string) Category {
	if wtc == "" {
		return CategoryUnknown
	}
	switch wtc[0] {
	case 'L':
		return CategoryLight
	case 'M':
		return CategoryMedium
	case 'H':
		return CategoryHeavy
	case 'J':
		return CategorySuper
	default:
		return CategoryUnknown
	}
}

// String returns the wake category letter, or "?" for CategoryUnknown.
func (c Category) String() string {
	switch c {
	case CategoryLight:
		return "L"
	case CategoryMedium:
		return "M"
	case CategoryHeavy:
		return "H"
	case CategorySuper:
		return "J"
	default:
		return "?"
	}
}

// Switch is a configuration override with an automatic default.
type Switch uint8

const (
	SwitchAuto Switch = iota // follow the runtime setting
	SwitchOn                 // force on
	SwitchOff                // force off
)

// ErrUnknownSwitch is returned when a configuration value is not one of
// "auto", "on" or "off".
var ErrUnknownSwitch = errors.New("aerolabel: unknown switch value")

// ParseSwitch parses "auto", "on" or "off" (also accepting the empty string
// as auto).
func ParseSwitch(s string) (Switch, error) {
	switch s {
	case "", "auto":
		return SwitchAuto, nil
	case "on":
		return SwitchOn, nil
	case "off":
		return SwitchOff, nil
	}
	return SwitchAuto, fmt.Errorf("%w: %q", ErrUnknownSwitch, s)
}

func (s Switch) String() string {
	switch s {
	case SwitchOn:
		return "on"
	case SwitchOff:
		return "off"
	default:
		return "auto"
	}
}
