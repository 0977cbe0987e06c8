package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/aerolabel"
)

// LabelSwitch requests label drawing to be turned on or off.
type LabelSwitch struct {
	Enable bool
}

// LabelSwitchEventType is the Donburi event type for label switch requests.
// Publish to it from input systems; the request takes effect when the
// events are processed.
var LabelSwitchEventType = events.NewEventType[LabelSwitch]()

// RequestLabels queues a LabelSwitch event in world.
func RequestLabels(world donburi.World, enable bool) {
	LabelSwitchEventType.Publish(world, LabelSwitch{Enable: enable})
}

// BindController applies every processed LabelSwitch event to ctl.
func BindController(world donburi.World, ctl *aerolabel.Controller) {
	LabelSwitchEventType.Subscribe(world, func(_ donburi.World, e LabelSwitch) {
		ctl.EnableLabels(e.Enable)
	})
}
