// Package aerolabel draws identifying labels above moving aircraft in a 3-D
// view.
//
// Once per render frame the [Controller] captures the host's camera and
// projection matrices into a [Frame], works out how far away labels may
// still be drawn, projects each aircraft's label anchor to screen pixels
// and lays out a two-line label box centered above it.
//
// The package does not render anything itself. The host supplies the view
// state, the text measurement and the 2-D drawing primitives through small
// interfaces; see [Host], [TextMeasurer] and [Surface]. Ready-made hosts
// live in the ebitenhost and termhost packages.
//
// # Quick start
//
//	ctl := aerolabel.New(aerolabel.Config{
//		Host:     host,
//		Labels:   registry,
//		Measurer: host,
//		Surface:  host,
//		Settings: aerolabel.DefaultSettings(),
//	})
//	ctl.Init()
//	defer ctl.Cleanup()
//
// [Controller.Init] registers [Controller.DrawOverlay] with the host, which
// calls it every frame. Labels are toggled at runtime with
// [Controller.EnableLabels], and the cut-off distance is set with
// [Controller.SetLabelDistance].
//
// # Projection
//
// Matrices use the flat 16-float layout OpenGL hands out, which is also the
// memory layout of mgl32.Mat4. Whether a projected point is in front of the
// camera depends on the graphics backend's depth convention, given per
// projection as a [DepthRange].
//
// # Culling
//
// The cut-off distance is the configured maximum, tightened to the current
// visibility when [Settings.CutOffAtVisibility] is set, and scaled by the
// camera zoom. Aircraft beyond it are skipped before projection.
//
// # Label box
//
// The label is raised above the aircraft by an amount chosen from its
// wake [Category]: 6 units for light, 11 for heavy, 10 otherwise. The box
// is as wide as the wider of the two text lines plus 5 pixels of padding
// on each side. The second line is always drawn in translucent light gray.
package aerolabel
