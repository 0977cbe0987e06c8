package aerolabel

import (
	"iter"
	"slices"

	"github.com/kamstrup/intmap"
)

// AircraftID identifies an aircraft in a Registry, typically its 24-bit
// ICAO transponder address.
type AircraftID uint32

// Registry is a LabelSource for hosts without their own entity store.
// Labels are yielded in insertion order.
type Registry struct {
	labels *intmap.Map[AircraftID, *Label]
	order  []AircraftID
}

// NewRegistry creates an empty registry sized for capacity aircraft.
func NewRegistry(capacity int) *Registry {
	return &Registry{
		labels: intmap.New[AircraftID, *Label](capacity),
		order:  make([]AircraftID, 0, capacity),
	}
}

// Put adds or replaces the label of aircraft id.
func (r *Registry) Put(id AircraftID, l *Label) {
	if _, ok := r.labels.Get(id); !ok {
		r.order = append(r.order, id)
	}
	r.labels.Put(id, l)
}

// Get returns the label of aircraft id.
func (r *Registry) Get(id AircraftID) (*Label, bool) {
	return r.labels.Get(id)
}

// Remove deletes aircraft id. Returns false if it was not registered.
func (r *Registry) Remove(id AircraftID) bool {
	if _, ok := r.labels.Get(id); !ok {
		return false
	}
	r.labels.Del(id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return true
}

// Len returns the number of registered aircraft.
func (r *Registry) Len() int {
	return r.labels.Len()
}

// Labels yields every registered label once, in insertion order.
func (r *Registry) Labels() iter.Seq[*Label] {
	return func(yield func(*Label) bool) {
		for _, id := range r.order {
			l, ok := r.labels.Get(id)
			if !ok {
				continue
			}
			if !yield(l) {
				return
			}
		}
	}
}
