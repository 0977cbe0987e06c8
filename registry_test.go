package aerolabel

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectTexts(r *Registry) []string {
	var out []string
	for l := range r.Labels() {
		out = append(out, l.Text)
	}
	return out
}

func TestRegistryInsertionOrder(t *testing.T) {
	r := NewRegistry(4)
	r.Put(0x3C6444, &Label{Text: "DLH4AB"})
	r.Put(0x4CA7B2, &Label{Text: "RYR1"})
	r.Put(0x400F1A, &Label{Text: "BAW1"})

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"DLH4AB", "RYR1", "BAW1"}, collectTexts(r))

	// Replacing keeps the original position.
	r.Put(0x4CA7B2, &Label{Text: "RYR1X"})
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"DLH4AB", "RYR1X", "BAW1"}, collectTexts(r))
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry(0)
	r.Put(1, &Label{Text: "A"})
	r.Put(2, &Label{Text: "B"})
	r.Put(3, &Label{Text: "C"})

	assert.True(t, r.Remove(2))
	assert.False(t, r.Remove(2))
	assert.Equal(t, []string{"A", "C"}, collectTexts(r))

	_, ok := r.Get(2)
	assert.False(t, ok)
	l, ok := r.Get(3)
	require.True(t, ok)
	assert.Equal(t, "C", l.Text)
}

func TestRegistryEarlyStop(t *testing.T) {
	r := NewRegistry(8)
	for i := range 8 {
		r.Put(AircraftID(i), &Label{Text: string(rune('A' + i))})
	}
	var got []string
	for l := range r.Labels() {
		got = append(got, l.Text)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []string{"A", "B", "C"}, got)
	assert.True(t, slices.Equal(collectTexts(r)[:3], got))
}
