package devidx

import "sort"

// Past this many slots, point queries switch from a linear scan to a binary
// search. Typical orders keep nodes well below it.
const searchThreshold = 32

// nodeKind tags the two node shapes. Leaves hold records only; regular
// (internal) nodes also carry one child per slot plus the left child.
type nodeKind uint8

const (
	leafKind nodeKind = iota
	regularKind
)

// slot pairs a record with the child subtree holding keys greater than the
// record's ID and smaller than the next slot's. In leaves child is nil.
type slot struct {
	dev   Device
	child *node
}

// node is a single tree node with decoded slot data. slots stay sorted
// ascending by Device ID; leftChild precedes slots[0] and covers every key
// below it.
type node struct {
	kind      nodeKind
	slots     []slot
	leftChild *node
}

func newNode(kind nodeKind) *node {
	return &node{kind: kind}
}

// len counts child positions including the left child, the quantity the
// order bounds: a node holding k slots has length k+1.
func (n *node) len() int {
	return len(n.slots) + 1
}

// closestIndex returns the index of the rightmost slot whose ID is <= id,
// or -1 when id sorts before every slot and a descent must take the left
// child. Equal IDs resolve to the rightmost qualifying slot.
func (n *node) closestIndex(id uint64) int {
	if len(n.slots) < searchThreshold {
		idx := -1
		for i := range n.slots {
			if n.slots[i].dev.ID > id {
				break
			}
			idx = i
		}
		return idx
	}

	return sort.Search(len(n.slots), func(i int) bool {
		return n.slots[i].dev.ID > id
	}) - 1
}

// indexOf returns the index of the slot keyed exactly by id, or -1.
func (n *node) indexOf(id uint64) int {
	for i := range n.slots {
		switch {
		case n.slots[i].dev.ID == id:
			return i
		case n.slots[i].dev.ID > id:
			return -1
		}
	}
	return -1
}

// addKey inserts s one position past the closest index for id, shifting
// later slots right, so slots stay sorted. No duplicate detection happens
// here; the Index resolves equal keys before it descends.
func (n *node) addKey(id uint64, s slot) {
	pos := n.closestIndex(id) + 1
	if pos >= len(n.slots) {
		n.slots = append(n.slots, s)
		return
	}
	n.slots = append(n.slots[:pos], append([]slot{s}, n.slots[pos:]...)...)
}

// removeKey detaches whatever closestIndex selects for id and returns it.
// The bool reports whether a keyed slot was removed; false means id sorts
// before every slot and the returned slot carries only the detached
// left-child edge.
func (n *node) removeKey(id uint64) (slot, bool) {
	i := n.closestIndex(id)
	if i < 0 {
		s := slot{child: n.leftChild}
		n.leftChild = nil
		return s, false
	}

	s := n.slots[i]
	n.slots = append(n.slots[:i], n.slots[i+1:]...)
	return s, true
}

// split divides an overflowing node at the slot midpoint. The midpoint's
// record is promoted to the caller and its child becomes the new sibling's
// left child; the slots above the midpoint move to the sibling in order.
// The receiver keeps the lower half and its own left child.
func (n *node) split() (Device, *node) {
	mid := len(n.slots) / 2
	promoted := n.slots[mid]

	sibling := newNode(n.kind)
	sibling.leftChild = promoted.child
	sibling.slots = append(sibling.slots, n.slots[mid+1:]...)

	n.slots = n.slots[:mid]
	return promoted.dev, sibling
}

// device scans the node's own slots for an exact ID match.
func (n *node) device(id uint64) (Device, bool) {
	if i := n.indexOf(id); i >= 0 {
		return n.slots[i].dev, true
	}
	return Device{}, false
}

// child returns the subtree a search for id descends into: the left child
// when id sorts before every slot, otherwise the closest slot's child.
// Nil when the selected edge has no child, which is always the case in
// leaves.
func (n *node) child(id uint64) *node {
	if i := n.closestIndex(id); i >= 0 {
		return n.slots[i].child
	}
	return n.leftChild
}
