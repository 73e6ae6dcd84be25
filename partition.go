package wall_maze

import (
	"github.com/spakin/disjoint"
)

// Tracks which cells of a maze are already connected to one another. Cells
// are identified by their index, and every cell starts out in its own group.
type Partition struct {
	elements []*disjoint.Element
	// Maps each element back to the cell index it was created for, so that a
	// set's representative can be reported as a plain integer label.
	labels map[*disjoint.Element]int
	groups int
}

// Returns a new partition of n cells, each in a singleton group.
func NewPartition(n int) *Partition {
	toReturn := &Partition{
		elements: make([]*disjoint.Element, n),
		labels:   make(map[*disjoint.Element]int, n),
		groups:   n,
	}
	for i := range toReturn.elements {
		e := disjoint.NewElement()
		toReturn.elements[i] = e
		toReturn.labels[e] = i
	}
	return toReturn
}

// Returns the label of the group containing the given cell. The label is the
// index of the group's representative cell, so it only changes when the
// group is merged with another.
func (p *Partition) Find(cell int) int {
	return p.labels[p.elements[cell].Find()]
}

// Merges the groups containing cells a and b. Returns false, and does
// nothing, if the two cells were already in the same group.
func (p *Partition) Union(a, b int) bool {
	x := p.elements[a]
	y := p.elements[b]
	if x.Find() == y.Find() {
		return false
	}
	disjoint.Union(x, y)
	p.groups--
	return true
}

// Returns true if every cell belongs to a single group.
func (p *Partition) IsFullyConnected() bool {
	return p.groups <= 1
}

// Returns the number of distinct groups remaining.
func (p *Partition) Groups() int {
	return p.groups
}
