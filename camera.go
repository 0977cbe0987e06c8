package aerolabel

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Camera is a reference perspective camera for hosts that do not own one.
// It implements FrameSource and supplies the zoom factor.
type Camera struct {
	// Eye is the camera position, Target the point it looks at.
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	// FOV is the horizontal field of view in degrees at zoom 1.
	FOV float32
	// Near and Far are the clip plane distances.
	Near, Far float32
	// Zoom is the magnification (1.0 = no zoom, >1 = zoom in).
	Zoom float64

	// Width and Height are the viewport size in pixels.
	Width, Height int

	// Depth selects the clip-space depth convention of ProjectionMatrix.
	Depth DepthRange

	world mgl32.Mat4
	proj  mgl32.Mat4
	dirty bool

	zoomTween *gween.Tween
}

// NewCamera creates a camera at the origin looking down -Z with a 60°
// field of view.
func NewCamera(width, height int) *Camera {
	return &Camera{
		Target: mgl32.Vec3{0, 0, -1},
		Up:     mgl32.Vec3{0, 1, 0},
		FOV:    60,
		Near:   1,
		Far:    100000,
		Zoom:   1,
		Width:  width,
		Height: height,
		dirty:  true,
	}
}

// ZoomTo animates Zoom to zoom over duration seconds.
func (c *Camera) ZoomTo(zoom float64, duration float32, easeFn ease.TweenFunc) {
	c.zoomTween = gween.New(float32(c.Zoom), float32(zoom), duration, easeFn)
}

// Zooming reports whether a zoom animation is running.
func (c *Camera) Zooming() bool {
	return c.zoomTween != nil
}

// Update advances the zoom animation by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.zoomTween == nil {
		return
	}
	val, done := c.zoomTween.Update(dt)
	c.Zoom = float64(val)
	if done {
		c.zoomTween = nil
	}
	c.dirty = true
}

// LookAt moves the camera and marks it dirty.
func (c *Camera) LookAt(eye, target mgl32.Vec3) {
	c.Eye = eye
	c.Target = target
	c.dirty = true
}

// SetViewport resizes the viewport and marks the camera dirty.
func (c *Camera) SetViewport(width, height int) {
	c.Width = width
	c.Height = height
	c.dirty = true
}

// MarkDirty forces a recomputation of the matrices.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// computeMatrices recomputes the cached matrices if dirty.
func (c *Camera) computeMatrices() {
	if !c.dirty {
		return
	}
	c.dirty = false

	c.world = mgl32.LookAtV(c.Eye, c.Target, c.Up)

	aspect := float32(1)
	if c.Height > 0 {
		aspect = float32(c.Width) / float32(c.Height)
	}
	// mgl32.Perspective takes the vertical angle.
	fovY := 2 * math.Atan(math.Tan(float64(mgl32.DegToRad(c.effectiveFOV()))/2)/float64(aspect))
	c.proj = mgl32.Perspective(float32(fovY), aspect, c.Near, c.Far)
	if c.Depth == DepthZeroToOne {
		c.proj = zeroToOneDepth.Mul4(c.proj)
	}
}

// zeroToOneDepth remaps clip z from [-w, w] to [0, w].
var zeroToOneDepth = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// effectiveFOV narrows the field of view by the zoom factor.
func (c *Camera) effectiveFOV() float32 {
	if c.Zoom <= 0 {
		return c.FOV
	}
	half := math.Tan(float64(mgl32.DegToRad(c.FOV)) / 2)
	return mgl32.RadToDeg(float32(2 * math.Atan(half/c.Zoom)))
}

// WorldMatrix returns the view matrix.
func (c *Camera) WorldMatrix() mgl32.Mat4 {
	c.computeMatrices()
	return c.world
}

// ProjectionMatrix returns the perspective matrix in the Depth convention.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	c.computeMatrices()
	return c.proj
}

// ScreenSize returns the viewport size.
func (c *Camera) ScreenSize() (int, int) {
	return c.Width, c.Height
}

// FieldOfView returns the effective horizontal field of view in degrees.
func (c *Camera) FieldOfView() float32 {
	return c.effectiveFOV()
}

// ZoomFactor returns Zoom.
func (c *Camera) ZoomFactor() float64 {
	return c.Zoom
}

// Distance returns the distance from the camera to p in world units.
func (c *Camera) Distance(p mgl32.Vec3) float64 {
	return float64(p.Sub(c.Eye).Len())
}
