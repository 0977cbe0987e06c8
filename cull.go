package aerolabel

// VisibilitySource reports the current atmospheric visibility.
type VisibilitySource interface {
	// Visibility returns the effective visibility in meters, or ok=false
	// when no reading is available.
	Visibility() (meters float64, ok bool)
}

// VisibilityFunc adapts a function to a VisibilitySource.
type VisibilityFunc func() (float64, bool)

// Visibility calls fn.
func (fn VisibilityFunc) Visibility() (float64, bool) { return fn() }

// VisibilitySources tries each source in order and reports the first
// available reading. Nil entries are skipped.
type VisibilitySources []VisibilitySource

// Visibility returns the first available reading.
func (s VisibilitySources) Visibility() (float64, bool) {
	for _, src := range s {
		if src == nil {
			continue
		}
		if v, ok := src.Visibility(); ok {
			return v, true
		}
	}
	return 0, false
}

// MaxLabelDistance returns the distance in meters beyond which labels are
// not drawn this frame. The configured cap maxDist is tightened to the
// current visibility when cutOff is set and vis has a reading, then scaled
// by the camera zoom: zooming in makes distant labels legible again.
func MaxLabelDistance(maxDist float64, cutOff bool, vis VisibilitySource, zoom float64) float64 {
	limit := maxDist
	if cutOff && vis != nil {
		if v, ok := vis.Visibility(); ok {
			limit = min(maxDist, v)
		}
	}
	return limit * zoom
}
