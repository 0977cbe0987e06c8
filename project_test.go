package aerolabel

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatDepthFrame maps every point to NDC z = 0 with w = 1, keeping x and y.
func flatDepthFrame(w, h float32) Frame {
	proj := mgl32.Ident4()
	proj[10] = 0
	return Frame{World: mgl32.Ident4(), Projection: proj, ScreenW: w, ScreenH: h}
}

func TestProjectCenter(t *testing.T) {
	f := flatDepthFrame(1920, 1080)
	for _, d := range []DepthRange{DepthNegOneToOne, DepthZeroToOne} {
		t.Run(d.String(), func(t *testing.T) {
			p := f.Project(mgl32.Vec3{0, 0, -100}, d)
			assert.Equal(t, Projection{X: 960, Y: 540, Visible: true}, p)
		})
	}
}

func TestProjectScreenMapping(t *testing.T) {
	f := flatDepthFrame(1920, 1080)

	p := f.Project(mgl32.Vec3{-1, -1, 0}, DepthNegOneToOne)
	assert.Equal(t, 0, p.X)
	assert.Equal(t, 0, p.Y)

	p = f.Project(mgl32.Vec3{1, 1, 0}, DepthNegOneToOne)
	assert.Equal(t, 1920, p.X)
	assert.Equal(t, 1080, p.Y)

	p = f.Project(mgl32.Vec3{0.5, -0.5, 0}, DepthNegOneToOne)
	assert.Equal(t, 1440, p.X)
	assert.Equal(t, 270, p.Y)
}

func TestProjectDepthRange(t *testing.T) {
	// Identity matrices pass z straight through as NDC depth.
	f := Frame{World: mgl32.Ident4(), Projection: mgl32.Ident4(), ScreenW: 800, ScreenH: 600}

	tests := []struct {
		z           float32
		negOneToOne bool
		zeroToOne   bool
	}{
		{z: -1.5, negOneToOne: false, zeroToOne: false},
		{z: -1, negOneToOne: true, zeroToOne: false},
		{z: -0.5, negOneToOne: true, zeroToOne: false},
		{z: 0, negOneToOne: true, zeroToOne: true},
		{z: 0.5, negOneToOne: true, zeroToOne: true},
		{z: 1, negOneToOne: true, zeroToOne: true},
		{z: 1.5, negOneToOne: false, zeroToOne: false},
	}
	for _, tt := range tests {
		p := mgl32.Vec3{0.25, -0.25, tt.z}
		assert.Equal(t, tt.negOneToOne, f.Project(p, DepthNegOneToOne).Visible, "z=%v [-1,1]", tt.z)
		assert.Equal(t, tt.zeroToOne, f.Project(p, DepthZeroToOne).Visible, "z=%v [0,1]", tt.z)
	}
}

func TestProjectBehindCamera(t *testing.T) {
	cam := NewCamera(1920, 1080)
	for _, d := range []DepthRange{DepthNegOneToOne, DepthZeroToOne} {
		t.Run(d.String(), func(t *testing.T) {
			cam.Depth = d
			cam.MarkDirty()
			f := CaptureFrame(cam)

			front := f.Project(mgl32.Vec3{0, 0, -100}, d)
			assert.True(t, front.Visible)
			assert.Equal(t, 960, front.X)
			assert.Equal(t, 540, front.Y)

			behind := f.Project(mgl32.Vec3{0, 0, 100}, d)
			assert.False(t, behind.Visible)

			beyondFar := f.Project(mgl32.Vec3{0, 0, -200000}, d)
			assert.False(t, beyondFar.Visible)
		})
	}
}

func TestProjectZeroW(t *testing.T) {
	f := Frame{World: mgl32.Ident4(), ScreenW: 800, ScreenH: 600} // zero projection
	p := f.Project(mgl32.Vec3{1, 2, 3}, DepthNegOneToOne)
	assert.Equal(t, Projection{X: -1, Y: -1, Visible: false}, p)

	// A point in the camera plane of a perspective projection.
	cam := NewCamera(800, 600)
	f = CaptureFrame(cam)
	p = f.Project(mgl32.Vec3{0, 0, 0}, DepthNegOneToOne)
	assert.False(t, p.Visible)
}

func TestProjectDeterministic(t *testing.T) {
	cam := NewCamera(1280, 720)
	cam.LookAt(mgl32.Vec3{10, 50, 30}, mgl32.Vec3{-200, 0, -900})
	f := CaptureFrame(cam)

	pt := mgl32.Vec3{-120, 14, -600}
	first := f.Project(pt, DepthNegOneToOne)
	for range 10 {
		assert.Equal(t, first, f.Project(pt, DepthNegOneToOne))
	}
}

// mulFlat is the reference index mapping for host matrices.
func mulFlat(m [16]float32, v [4]float32) [4]float32 {
	var dst [4]float32
	for i := range 4 {
		for j := range 4 {
			dst[i] += v[j] * m[j*4+i]
		}
	}
	return dst
}

func TestMatrixLayoutMatchesHost(t *testing.T) {
	var raw [16]float32
	for i := range raw {
		raw[i] = float32(i+1) * 0.37
	}
	m := MatrixFromSlice(raw[:])
	v := [4]float32{1.5, -2, 3.25, 1}

	got := m.Mul4x1(mgl32.Vec4(v))
	want := mulFlat(raw, v)
	for i := range 4 {
		assert.InDelta(t, want[i], got[i], 1e-4, "component %d", i)
	}
}

func TestFrameRefresh(t *testing.T) {
	src := &countingSource{
		world: mgl32.Translate3D(1, 2, 3),
		proj:  mgl32.Perspective(1, 1.5, 1, 100),
		w:     1024,
		h:     768,
		fov:   75,
	}
	var f Frame
	f.Refresh(src)

	require.Equal(t, 1, src.calls)
	assert.Equal(t, src.world, f.World)
	assert.Equal(t, src.proj, f.Projection)
	assert.Equal(t, float32(1024), f.ScreenW)
	assert.Equal(t, float32(768), f.ScreenH)
	assert.Equal(t, float32(75), f.FOV)
}

func TestFiniteGuard(t *testing.T) {
	assert.True(t, finite(1))
	assert.False(t, finite(float32(math.Inf(1))))
	assert.False(t, finite(float32(math.NaN())))
}

type countingSource struct {
	world, proj mgl32.Mat4
	w, h        int
	fov         float32
	calls       int
}

func (s *countingSource) WorldMatrix() mgl32.Mat4 {
	s.calls++
	return s.world
}
func (s *countingSource) ProjectionMatrix() mgl32.Mat4 { return s.proj }
func (s *countingSource) ScreenSize() (int, int) { return s.w, s.h }
func (s *countingSource) FieldOfView() float32 { return s.fov }
