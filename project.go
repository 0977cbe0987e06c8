package aerolabel

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DepthRange is the clip-space depth convention of the active graphics
// backend. It can differ by host configuration, so it is passed to every
// projection rather than captured with the Frame.
type DepthRange uint8

const (
	DepthNegOneToOne DepthRange = iota // OpenGL: NDC z in [-1, 1]
	DepthZeroToOne                     // Vulkan, Metal, DirectX: NDC z in [0, 1]
)

// Contains reports whether an NDC depth lies inside the range.
func (d DepthRange) Contains(z float32) bool {
	if d == DepthZeroToOne {
		return 0 <= z && z <= 1
	}
	return -1 <= z && z <= 1
}

func (d DepthRange) String() string {
	if d == DepthZeroToOne {
		return "[0,1]"
	}
	return "[-1,1]"
}

// Projection is the screen position of a projected world point. X and Y are
// meaningless when Visible is false.
type Projection struct {
	X, Y    int
	Visible bool
}

// offscreen is returned for points that cannot be projected at all.
var offscreen = Projection{X: -1, Y: -1}

// Project maps a world-space point to screen pixels using the frame's
// matrices. The point is visible when its NDC depth lies inside depth;
// points behind the camera or outside the near/far planes are not.
//
// A clip-space w of zero (the point sits in the camera plane) or a
// non-finite NDC coordinate is reported as not visible at (-1, -1).
func (f *Frame) Project(p mgl32.Vec3, depth DepthRange) Projection {
	eye := f.World.Mul4x1(p.Vec4(1))
	clip := f.Projection.Mul4x1(eye)

	cw := clip.W()
	if cw == 0 {
		return offscreen
	}
	invW := 1 / cw
	ndcX := clip.X() * invW
	ndcY := clip.Y() * invW
	ndcZ := clip.Z() * invW
	if !finite(ndcX) || !finite(ndcY) || !finite(ndcZ) {
		return offscreen
	}

	return Projection{
		X:       int(math.Round(float64(f.ScreenW * (ndcX*0.5 + 0.5)))),
		Y:       int(math.Round(float64(f.ScreenH * (ndcY*0.5 + 0.5)))),
		Visible: depth.Contains(ndcZ),
	}
}

func finite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}
