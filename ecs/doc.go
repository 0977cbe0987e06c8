// Package ecs provides ECS adapters for aerolabel.
//
// [NewDonburiSource] exposes every entity carrying a [LabelComponent] in a
// [Donburi] world as an [aerolabel.LabelSource]. Systems keep the label
// components current; the controller reads them once per frame.
//
// Usage:
//
//	world := donburi.NewWorld()
//	ecs.SpawnLabel(world, aerolabel.Label{Text: "DLH123", Rendered: true, ShowLabel: true})
//	ctl := aerolabel.New(aerolabel.Config{Labels: ecs.NewDonburiSource(world), ...})
//
// Input systems can toggle labels through the event bus instead of holding
// the controller:
//
//	ecs.BindController(world, ctl)
//	ecs.RequestLabels(world, false)
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
