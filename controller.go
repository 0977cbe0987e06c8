package aerolabel

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"time"
)

// Overlay is a per-frame draw callback.
type Overlay interface {
	DrawOverlay()
}

// DrawHooks registers overlays with the host's render loop. The host calls
// each registered overlay once per frame, after the 3-D scene is drawn.
type DrawHooks interface {
	RegisterOverlay(o Overlay)
	UnregisterOverlay(o Overlay)
}

// Host is everything the Controller needs from the renderer it runs in.
type Host interface {
	FrameSource
	DrawHooks

	// Zoom returns the current camera zoom factor (1 = no zoom).
	Zoom() float64
	// DepthRange returns the clip-space depth convention of the active
	// graphics backend.
	DepthRange() DepthRange
	// Visibility resolves the atmospheric visibility reading. It returns
	// nil when the host has none.
	Visibility() VisibilitySource
}

// LabelSource enumerates the labels to draw this frame. The sequence is
// consumed once per frame.
type LabelSource interface {
	Labels() iter.Seq[*Label]
}

// LabelSourceFunc adapts a function to a LabelSource.
type LabelSourceFunc func() iter.Seq[*Label]

// Labels calls fn.
func (fn LabelSourceFunc) Labels() iter.Seq[*Label] { return fn() }

// ErrLabelPanic wraps a fault recovered while drawing a single label.
var ErrLabelPanic = errors.New("aerolabel: label drawing panicked")

// Config wires a Controller to its collaborators.
type Config struct {
	Host     Host
	Labels   LabelSource
	Measurer TextMeasurer
	Surface  Surface

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	Settings Settings
}

// Controller owns the label overlay's lifecycle and runs the per-frame
// label pass. It is not safe for concurrent use; everything runs on the
// host's render thread.
type Controller struct {
	host     Host
	labels   LabelSource
	measurer TextMeasurer
	surface  Surface
	logger   *slog.Logger

	override Switch
	enabled  bool
	active   bool
	maxDist  float64 // meters
	cutOff   bool
	debug    bool

	visibility VisibilitySource
	stats      FrameStats
}

// New creates an inactive Controller. Call Init to resolve host handles
// and start drawing.
func New(cfg Config) *Controller {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := cfg.Settings
	enabled := s.Enabled
	switch s.Override {
	case SwitchOn:
		enabled = true
	case SwitchOff:
		enabled = false
	}
	return &Controller{
		host:     cfg.Host,
		labels:   cfg.Labels,
		measurer: cfg.Measurer,
		surface:  cfg.Surface,
		logger:   logger,
		override: s.Override,
		enabled:  enabled,
		maxDist:  s.MaxDistance(),
		cutOff:   s.CutOffAtVisibility,
		debug:    s.Debug,
	}
}

// Init resolves the host handles and activates drawing if labels are
// enabled. Calling it again re-resolves the handles.
func (c *Controller) Init() {
	c.visibility = c.host.Visibility()
	if c.visibility == nil {
		c.logger.Debug("visibility not available, labels cut off at configured distance only")
	}
	if c.enabled {
		c.Activate()
	}
}

// Cleanup stops drawing.
func (c *Controller) Cleanup() {
	c.Deactivate()
}

// Activate registers the per-frame hook. No-op when already active.
func (c *Controller) Activate() {
	if c.active {
		return
	}
	c.host.RegisterOverlay(c)
	c.active = true
}

// Deactivate unregisters the per-frame hook. No-op when inactive.
func (c *Controller) Deactivate() {
	if !c.active {
		return
	}
	c.host.UnregisterOverlay(c)
	c.active = false
}

// Active reports whether the per-frame hook is registered.
func (c *Controller) Active() bool {
	return c.active
}

// EnableLabels turns label drawing on or off, subject to the configured
// override. Only an actual change is logged and acted upon.
func (c *Controller) EnableLabels(enable bool) {
	switch c.override {
	case SwitchOn:
		c.logger.Debug("label drawing enforced on by configuration")
		enable = true
	case SwitchOff:
		c.logger.Debug("label drawing enforced off by configuration")
		enable = false
	}

	if c.enabled == enable {
		return
	}
	c.enabled = enable
	c.logger.Debug("aircraft labels", "state", enabledWord(enable))

	if enable {
		c.Activate()
	} else {
		c.Deactivate()
	}
}

// DisableLabels is EnableLabels(false).
func (c *Controller) DisableLabels() {
	c.EnableLabels(false)
}

// LabelsEnabled reports whether labels are currently drawn.
func (c *Controller) LabelsEnabled() bool {
	return c.enabled
}

// SetLabelDistance sets the label cut-off distance in nautical miles
// (at least 1) and whether labels are also cut off at the reported
// visibility.
func (c *Controller) SetLabelDistance(nm float64, cutOffAtVisibility bool) {
	c.cutOff = cutOffAtVisibility
	c.maxDist = nmToMeters(nm)
}

// LabelDistance returns the configured cut-off in meters and the
// visibility cut-off flag.
func (c *Controller) LabelDistance() (meters float64, cutOffAtVisibility bool) {
	return c.maxDist, c.cutOff
}

// LastFrameStats returns the counters of the most recent label pass.
func (c *Controller) LastFrameStats() FrameStats {
	return c.stats
}

// DrawOverlay runs one label pass. It is the hook registered with the
// host and must not be called from anywhere else.
func (c *Controller) DrawOverlay() {
	if !c.enabled || c.override == SwitchOff {
		return
	}
	start := time.Now()
	var stats FrameStats
	defer func() {
		// The label source itself failed; labels already drawn stay.
		if r := recover(); r != nil {
			stats.Failed++
			stats.Duration = time.Since(start)
			c.stats = stats
			c.logger.Error("label pass aborted", "err", fmt.Errorf("%w: %v", ErrLabelPanic, r))
			c.debugLog(stats)
		}
	}()

	frame := CaptureFrame(c.host)
	stats.MaxDistance = MaxLabelDistance(c.maxDist, c.cutOff, c.visibility, c.host.Zoom())

	for l := range c.labels.Labels() {
		stats.Candidates++
		outcome, err := c.drawLabel(&frame, l, stats.MaxDistance)
		if err != nil {
			stats.Failed++
			c.logger.Error("drawing label failed", "label", labelName(l), "err", err)
			continue
		}
		switch outcome {
		case labelSkipped:
			stats.Skipped++
		case labelOutOfRange:
			stats.OutOfRange++
		case labelHidden:
			stats.Hidden++
		case labelDrawn:
			stats.Drawn++
		}
	}

	stats.Duration = time.Since(start)
	c.stats = stats
	c.debugLog(stats)
}

type labelOutcome uint8

const (
	labelSkipped labelOutcome = iota
	labelOutOfRange
	labelHidden
	labelDrawn
)

// drawLabel lays out and draws a single label. A panic anywhere below it
// is returned as an error wrapping ErrLabelPanic.
func (c *Controller) drawLabel(f *Frame, l *Label, maxDist float64) (outcome labelOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrLabelPanic, r)
		}
	}()

	if !l.Rendered || !(l.ShowLabel || c.override == SwitchOn) {
		return labelSkipped, nil
	}
	if l.CameraDist > maxDist {
		return labelOutOfRange, nil
	}

	anchor := l.Position
	anchor[1] += LabelOffset(l.Category)
	at := f.Project(anchor, c.host.DepthRange())
	if !at.Visible {
		return labelHidden, nil
	}

	lay := LayoutLabel(l, at, c.measurer)
	lay.Draw(c.surface, l)
	return labelDrawn, nil
}

func labelName(l *Label) string {
	if l == nil {
		return "<nil>"
	}
	return l.Text
}

func enabledWord(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}
