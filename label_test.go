package aerolabel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// widthMeasurer returns fixed widths per string and 7px per byte otherwise.
type widthMeasurer struct {
	widths map[string]int
	calls  []string
}

func (m *widthMeasurer) MeasureString(s string) int {
	m.calls = append(m.calls, s)
	if w, ok := m.widths[s]; ok {
		return w
	}
	return 7 * len(s)
}

type drawCall struct {
	kind  string // "box" or "text"
	box   Box
	text  string
	x, y  int
	color Color
}

type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) DrawBox(b Box, c Color) {
	s.calls = append(s.calls, drawCall{kind: "box", box: b, color: c})
}

func (s *recordingSurface) DrawString(text string, x, y int, c Color) {
	s.calls = append(s.calls, drawCall{kind: "text", text: text, x: x, y: y, color: c})
}

func TestLabelOffset(t *testing.T) {
	tests := []struct {
		wtc  string
		want float32
	}{
		{"L", 6},
		{"H", 11},
		{"M", 10},
		{"J", 10},
		{"L/M", 6},
		{"", 10},
		{"x", 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LabelOffset(CategoryFromWTC(tt.wtc)), "wtc %q", tt.wtc)
	}
	assert.Equal(t, float32(10), LabelOffset(CategoryUnknown))
	assert.Equal(t, float32(10), LabelOffset(Category(200)))
}

func TestLayoutLabelWiderSubText(t *testing.T) {
	m := &widthMeasurer{widths: map[string]int{"DLH4AB": 100, "A320 FL350": 140}}
	l := &Label{Text: "DLH4AB", SubText: "A320 FL350"}
	at := Projection{X: 500, Y: 300, Visible: true}

	lay := LayoutLabel(l, at, m)

	assert.Equal(t, 140, lay.BoxWidth)
	assert.Equal(t, 430, lay.BoxStart)
	assert.Equal(t, Box{Left: 425, Bottom: 290, Right: 575, Top: 315}, lay.Box)
	assert.Equal(t, at.X-75, lay.Box.Left)
	assert.Equal(t, at.X+75, lay.Box.Right)

	assert.Equal(t, TextPlacement{Text: "DLH4AB", X: 450, Y: 300, Width: 100}, lay.Primary)
	require.True(t, lay.HasSubText)
	assert.Equal(t, TextPlacement{Text: "A320 FL350", X: 430, Y: 275, Width: 140}, lay.Secondary)
}

func TestLayoutLabelNoSubText(t *testing.T) {
	m := &widthMeasurer{widths: map[string]int{"N123": 40}}
	l := &Label{Text: "N123"}

	lay := LayoutLabel(l, Projection{X: 100, Y: 100, Visible: true}, m)

	assert.Equal(t, []string{"N123"}, m.calls, "empty secondary line must not be measured")
	assert.False(t, lay.HasSubText)
	assert.Equal(t, 40, lay.BoxWidth)
	assert.Equal(t, 80, lay.Primary.X)
	assert.Equal(t, Box{Left: 75, Bottom: 90, Right: 125, Top: 115}, lay.Box)
}

func TestLayoutLabelCentering(t *testing.T) {
	for w := 0; w <= 301; w++ {
		m := &widthMeasurer{widths: map[string]int{"A": w}}
		for _, x := range []int{0, 1, 640, 641} {
			lay := LayoutLabel(&Label{Text: "A"}, Projection{X: x, Y: 10}, m)
			center := lay.BoxStart + lay.BoxWidth/2
			assert.LessOrEqual(t, abs(center-x), 1, "width %d at x %d", w, x)
			assert.Equal(t, lay.Box.Left+lay.Box.Right, 2*lay.BoxStart+lay.BoxWidth)
		}
	}
}

func TestLabelLayoutDraw(t *testing.T) {
	bg := Color{0, 0, 0, 0.5}
	fg := Color{1, 1, 0, 1}
	m := &widthMeasurer{widths: map[string]int{"BAW1": 60, "B744": 50}}
	s := &recordingSurface{}

	l := &Label{Text: "BAW1", SubText: "B744", Background: bg, Color: fg}
	lay := LayoutLabel(l, Projection{X: 200, Y: 100, Visible: true}, m)
	lay.Draw(s, l)

	require.Len(t, s.calls, 3)
	assert.Equal(t, drawCall{kind: "box", box: lay.Box, color: bg}, s.calls[0])
	assert.Equal(t, drawCall{kind: "text", text: "BAW1", x: 170, y: 100, color: fg}, s.calls[1])
	assert.Equal(t, drawCall{kind: "text", text: "B744", x: 175, y: 75, color: ColorSubLabel}, s.calls[2])

	s.calls = nil
	l.SubText = ""
	lay = LayoutLabel(l, Projection{X: 200, Y: 100, Visible: true}, m)
	lay.Draw(s, l)
	assert.Len(t, s.calls, 2)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
