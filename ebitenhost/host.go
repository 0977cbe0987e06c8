package ebitenhost

import (
	"log/slog"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/aerolabel"
)

// Host implements aerolabel.Host, aerolabel.Surface and
// aerolabel.TextMeasurer on top of Ebitengine.
type Host struct {
	Camera *aerolabel.Camera
	Font   *Font

	// VisibilityM is the current atmospheric visibility in meters. Zero or
	// negative means no reading.
	VisibilityM float64

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	Logger *slog.Logger

	overlays        []aerolabel.Overlay
	target          *ebiten.Image
	depth           func() aerolabel.DepthRange
	screenshotQueue []string
}

// New creates a Host drawing labels in font as seen from cam.
func New(cam *aerolabel.Camera, font *Font) *Host {
	return &Host{
		Camera:        cam,
		Font:          font,
		ScreenshotDir: "screenshots",
		Logger:        slog.Default(),
		depth:         graphicsDepthRange,
	}
}

// graphicsDepthRange reports the NDC depth convention of the graphics
// library Ebitengine picked. OpenGL is [-1, 1]; the others are [0, 1].
func graphicsDepthRange() aerolabel.DepthRange {
	var info ebiten.DebugInfo
	ebiten.ReadDebugInfo(&info)
	switch info.GraphicsLibrary {
	case ebiten.GraphicsLibraryDirectX, ebiten.GraphicsLibraryMetal:
		return aerolabel.DepthZeroToOne
	default:
		return aerolabel.DepthNegOneToOne
	}
}

// Draw runs the registered overlays against screen. Call it once per
// frame from Game.Draw, after the world is drawn.
func (h *Host) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if w, ht := b.Dx(), b.Dy(); w != h.Camera.Width || ht != h.Camera.Height {
		h.Camera.SetViewport(w, ht)
	}
	if d := h.DepthRange(); d != h.Camera.Depth {
		h.Camera.Depth = d
		h.Camera.MarkDirty()
	}

	h.target = screen
	for _, o := range h.overlays {
		o.DrawOverlay()
	}
	h.target = nil

	h.flushScreenshots(screen)
}

// --- aerolabel.Host ---

// WorldMatrix returns the camera's view matrix.
func (h *Host) WorldMatrix() mgl32.Mat4 { return h.Camera.WorldMatrix() }

// ProjectionMatrix returns the camera's projection matrix.
func (h *Host) ProjectionMatrix() mgl32.Mat4 { return h.Camera.ProjectionMatrix() }

// ScreenSize returns the camera viewport size.
func (h *Host) ScreenSize() (int, int) { return h.Camera.ScreenSize() }

// FieldOfView returns the camera's effective field of view.
func (h *Host) FieldOfView() float32 { return h.Camera.FieldOfView() }

// Zoom returns the camera zoom factor.
func (h *Host) Zoom() float64 { return h.Camera.ZoomFactor() }

// DepthRange returns the depth convention of the active graphics library.
func (h *Host) DepthRange() aerolabel.DepthRange { return h.depth() }

// Visibility returns a source reading VisibilityM.
func (h *Host) Visibility() aerolabel.VisibilitySource {
	return aerolabel.VisibilityFunc(func() (float64, bool) {
		return h.VisibilityM, h.VisibilityM > 0
	})
}

// RegisterOverlay adds o to the overlays run by Draw.
func (h *Host) RegisterOverlay(o aerolabel.Overlay) {
	h.overlays = append(h.overlays, o)
}

// UnregisterOverlay removes o.
func (h *Host) UnregisterOverlay(o aerolabel.Overlay) {
	if i := slices.Index(h.overlays, o); i >= 0 {
		h.overlays = slices.Delete(h.overlays, i, i+1)
	}
}

// Overlays returns the registered overlays. The returned slice MUST NOT be
// mutated.
func (h *Host) Overlays() []aerolabel.Overlay {
	return h.overlays
}

// --- aerolabel.TextMeasurer ---

// MeasureString measures s in the host font.
func (h *Host) MeasureString(s string) int {
	return h.Font.MeasureString(s)
}

// --- aerolabel.Surface ---

// flipY converts a bottom-left origin Y to Ebitengine's top-left origin.
func (h *Host) flipY(y int) float32 {
	return float32(h.target.Bounds().Dy() - y)
}

// DrawBox fills b. No-op outside Draw.
func (h *Host) DrawBox(b aerolabel.Box, c aerolabel.Color) {
	if h.target == nil {
		return
	}
	vector.DrawFilledRect(h.target,
		float32(b.Left), h.flipY(b.Top),
		float32(b.Width()), float32(b.Height()),
		c.NRGBA(), false)
}

// DrawString draws s with its baseline at (x, y). No-op outside Draw.
func (h *Host) DrawString(s string, x, y int, c aerolabel.Color) {
	if h.target == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(h.flipY(y))-h.Font.Ascent())
	op.ColorScale.ScaleWithColor(c.NRGBA())
	text.Draw(h.target, s, h.Font.Face(), op)
}
