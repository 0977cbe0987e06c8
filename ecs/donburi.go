package ecs

import (
	"iter"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/aerolabel"
)

// LabelComponent is the Donburi component holding an aircraft's label.
var LabelComponent = donburi.NewComponentType[aerolabel.Label]()

var labelQuery = donburi.NewQuery(filter.Contains(LabelComponent))

type donburiSource struct {
	world donburi.World
}

// NewDonburiSource creates a LabelSource over the LabelComponent entities
// of world.
func NewDonburiSource(world donburi.World) aerolabel.LabelSource {
	return &donburiSource{world: world}
}

func (s *donburiSource) Labels() iter.Seq[*aerolabel.Label] {
	return func(yield func(*aerolabel.Label) bool) {
		stopped := false
		labelQuery.Each(s.world, func(e *donburi.Entry) {
			if stopped {
				return
			}
			if !yield(LabelComponent.Get(e)) {
				stopped = true
			}
		})
	}
}

// SpawnLabel creates an entity carrying l and returns it.
func SpawnLabel(world donburi.World, l aerolabel.Label) donburi.Entity {
	e := world.Create(LabelComponent)
	LabelComponent.SetValue(world.Entry(e), l)
	return e
}
