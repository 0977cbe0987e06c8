package aerolabel

import "github.com/go-gl/mathgl/mgl32"

// FrameSource supplies the host's current view state. Each call may be an
// expensive query into the host, so the Controller reads it once per frame
// through Frame.Refresh.
type FrameSource interface {
	// WorldMatrix returns the camera (modelview) matrix.
	WorldMatrix() mgl32.Mat4
	// ProjectionMatrix returns the 3-D projection matrix.
	ProjectionMatrix() mgl32.Mat4
	// ScreenSize returns the drawable size in pixels.
	ScreenSize() (width, height int)
	// FieldOfView returns the horizontal field of view in degrees.
	FieldOfView() float32
}

// Frame holds the transform state captured at the start of a render frame.
// All projections within a frame must use the same Frame.
//
// Both matrices use the flat layout where element m[j*4+i] contributes
// v[j] to output component i. This is the column-major layout of
// mgl32.Mat4, so the host's 16 floats convert without reordering.
type Frame struct {
	World      mgl32.Mat4
	Projection mgl32.Mat4
	ScreenW    float32
	ScreenH    float32
	FOV        float32
}

// Refresh reads the view state from src and replaces f in a single
// assignment. Call once at the top of the per-frame hook, before any
// projection; calling it mid-frame mixes stale and fresh matrices.
func (f *Frame) Refresh(src FrameSource) {
	w, h := src.ScreenSize()
	*f = Frame{
		World:      src.WorldMatrix(),
		Projection: src.ProjectionMatrix(),
		ScreenW:    float32(w),
		ScreenH:    float32(h),
		FOV:        src.FieldOfView(),
	}
}

// CaptureFrame returns a freshly refreshed Frame.
func CaptureFrame(src FrameSource) Frame {
	var f Frame
	f.Refresh(src)
	return f
}

// MatrixFromSlice copies 16 floats in the host's flat layout into a Mat4.
// Shorter input leaves the remaining elements zero.
func MatrixFromSlice(v []float32) mgl32.Mat4 {
	var m mgl32.Mat4
	copy(m[:], v)
	return m
}
