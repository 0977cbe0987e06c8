package aerolabel

import "github.com/go-gl/mathgl/mgl32"

// Label describes the overlay for one aircraft. It is owned by whoever
// enumerates the aircraft; the Controller only reads it while drawing.
type Label struct {
	// Text is the primary line, SubText the optional secondary line.
	Text    string
	SubText string

	// Background fills the label box, alpha included. Color is used for
	// the primary line only.
	Background Color
	Color      Color

	// Position is the aircraft's reference point in world coordinates.
	Position mgl32.Vec3
	// CameraDist is the aircraft's distance from the camera in meters.
	CameraDist float64

	// Rendered is false while the aircraft itself is not drawn.
	Rendered bool
	// ShowLabel is the per-aircraft label switch.
	ShowLabel bool

	Category Category
}

// Layout constants, in pixels unless noted.
const (
	labelPadX       = 5
	labelBoxBelow   = 10
	labelBoxAbove   = 15
	subLabelSpacing = 25

	// defaultLabelOffset is the label height above the aircraft's
	// reference point, in world units, when the category has no entry.
	defaultLabelOffset float32 = 10
)

// labelOffsets approximates the visual height of each aircraft class
// without inspecting its model.
var labelOffsets = map[Category]float32{
	CategoryLight: 6,
	CategoryHeavy: 11,
}

// LabelOffset returns how far above the reference point, in world units,
// the label of an aircraft of category c is anchored.
func LabelOffset(c Category) float32 {
	if ofs, ok := labelOffsets[c]; ok {
		return ofs
	}
	return defaultLabelOffset
}

// TextMeasurer measures strings in the host's label font.
type TextMeasurer interface {
	// MeasureString returns the width of s in pixels.
	MeasureString(s string) int
}

// Surface is the host's 2-D drawing target. Coordinates follow the Box
// convention (origin bottom-left, Y up). Draw calls are fire-and-forget.
type Surface interface {
	// DrawBox fills b with the translucent color c.
	DrawBox(b Box, c Color)
	// DrawString draws s with its left end on the baseline at (x, y).
	DrawString(s string, x, y int, c Color)
}

// TextPlacement is the position of one drawn line of a label.
type TextPlacement struct {
	Text  string
	X, Y  int
	Width int
}

// LabelLayout is the computed geometry of a label box around an anchor.
type LabelLayout struct {
	// Anchor is the projected point the box is centered on.
	Anchor Projection
	// Box is the background rectangle, padding included.
	Box Box
	// BoxStart and BoxWidth describe the text column inside the padding.
	BoxStart int
	BoxWidth int

	Primary    TextPlacement
	Secondary  TextPlacement
	HasSubText bool
}

// LayoutLabel centers the box for l above the projected anchor at.
// The secondary line is measured only when it is non-empty.
func LayoutLabel(l *Label, at Projection, m TextMeasurer) LabelLayout {
	primaryW := m.MeasureString(l.Text)
	var secondaryW int
	hasSub := l.SubText != ""
	if hasSub {
		secondaryW = m.MeasureString(l.SubText)
	}
	boxW := max(primaryW, secondaryW)
	boxStart := at.X - boxW/2

	lay := LabelLayout{
		Anchor:   at,
		BoxStart: boxStart,
		BoxWidth: boxW,
		Box: Box{
			Left:   boxStart - labelPadX,
			Bottom: at.Y - labelBoxBelow,
			Right:  boxStart + boxW + labelPadX,
			Top:    at.Y + labelBoxAbove,
		},
		Primary: TextPlacement{
			Text:  l.Text,
			X:     boxStart + (boxW-primaryW)/2,
			Y:     at.Y,
			Width: primaryW,
		},
		HasSubText: hasSub,
	}
	if hasSub {
		lay.Secondary = TextPlacement{
			Text:  l.SubText,
			X:     boxStart + (boxW-secondaryW)/2,
			Y:     at.Y - subLabelSpacing,
			Width: secondaryW,
		}
	}
	return lay
}

// Draw issues the background and text draw calls for lay.
func (lay *LabelLayout) Draw(s Surface, l *Label) {
	s.DrawBox(lay.Box, l.Background)
	s.DrawString(lay.Primary.Text, lay.Primary.X, lay.Primary.Y, l.Color)
	if lay.HasSubText {
		s.DrawString(lay.Secondary.Text, lay.Secondary.X, lay.Secondary.Y, ColorSubLabel)
	}
}
