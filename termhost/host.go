package termhost

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/phanxgames/aerolabel"
)

// Host implements aerolabel.Host for a terminal. The camera always
// produces OpenGL-style matrices, so the depth range is [-1, 1].
type Host struct {
	*Canvas
	Camera *aerolabel.Camera

	// VisibilityM is the current atmospheric visibility in meters. Zero or
	// negative means no reading.
	VisibilityM float64

	overlays []aerolabel.Overlay
}

// New creates a Host drawing on canvas as seen from cam.
func New(cam *aerolabel.Camera, canvas *Canvas) *Host {
	return &Host{Canvas: canvas, Camera: cam}
}

// Draw sizes the camera to the terminal, runs the overlays and shows the
// screen. Call it once per frame after drawing the world.
func (h *Host) Draw() {
	if w, ht := h.PixelSize(); w != h.Camera.Width || ht != h.Camera.Height {
		h.Camera.SetViewport(w, ht)
	}
	for _, o := range h.overlays {
		o.DrawOverlay()
	}
	h.Screen.Show()
}

// WorldMatrix returns the camera's view matrix.
func (h *Host) WorldMatrix() mgl32.Mat4 { return h.Camera.WorldMatrix() }

// ProjectionMatrix returns the camera's projection matrix.
func (h *Host) ProjectionMatrix() mgl32.Mat4 { return h.Camera.ProjectionMatrix() }

// ScreenSize returns the camera viewport size in pixels.
func (h *Host) ScreenSize() (int, int) { return h.Camera.ScreenSize() }

// FieldOfView returns the camera's effective field of view.
func (h *Host) FieldOfView() float32 { return h.Camera.FieldOfView() }

// Zoom returns the camera zoom factor.
func (h *Host) Zoom() float64 { return h.Camera.ZoomFactor() }

// DepthRange returns aerolabel.DepthNegOneToOne.
func (h *Host) DepthRange() aerolabel.DepthRange { return aerolabel.DepthNegOneToOne }

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
