// Package devidx is an ordered in-memory device store built on a balanced
// multiway search tree. Records are keyed by numeric device ID; insertion
// keeps every leaf at the same depth by splitting full nodes and promoting
// the median key toward the root.
package devidx

import "math"

// minOrder is the smallest order the split protocol works with. Splitting
// removes the slot midpoint and moves the upper half to a sibling; below
// three there is nothing left on one side.
const minOrder = 3

// Index owns the tree. All mutation enters through Add, which recurses from
// the root and absorbs at most one split per level; Find and Walk are
// read-only walks. An Index is not safe for concurrent use; callers
// serialize access when sharing one across goroutines.
type Index struct {
	root  *node
	order int
	count uint64

	cache *findCache // nil when disabled
	log   Logger
}

// promotion carries a split result one level up: the median record and the
// sibling node holding the keys above it.
type promotion struct {
	dev     Device
	sibling *node
}

// New returns an empty Index. order is the maximum length (child positions,
// including the left child) any node may reach; orders below 3 are rejected
// with ErrInvalidOrder.
func New(order int, options ...Option) (*Index, error) {
	if order < minOrder {
		return nil, ErrInvalidOrder
	}

	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	ix := &Index{
		order: order,
		log:   opts.logger,
	}

	if opts.findCacheSize > 0 {
		cache, err := newFindCache(opts.findCacheSize)
		if err != nil {
			return nil, err
		}
		ix.cache = cache
	}

	ix.log.Debug("index created", "order", order, "find_cache", opts.findCacheSize)
	return ix, nil
}

// Len reports how many devices the index holds.
func (ix *Index) Len() uint64 {
	return ix.count
}

// Order reports the configured maximum node length.
func (ix *Index) Order() int {
	return ix.order
}

// Height reports the number of node levels, following left children down to
// a leaf. Zero for an empty index; a lone leaf root is height 1.
func (ix *Index) Height() int {
	h := 0
	for n := ix.root; n != nil; n = n.leftChild {
		h++
		if n.kind == leafKind {
			break
		}
	}
	return h
}

// Add inserts d, keyed by its ID. Adding an ID the index already holds
// replaces that record in place. Add has no failure path; the tree grows
// one level exactly when the root itself splits.
func (ix *Index) Add(d Device) {
	n := ix.root
	if n == nil {
		n = newNode(leafKind)
	}

	root, _ := ix.insert(n, d, true)
	grew := ix.root != nil && root != n
	ix.root = root

	if ix.cache != nil {
		ix.cache.invalidate(d.ID)
	}
	if grew {
		ix.log.Info("root split", "height", ix.Height(), "devices", ix.count)
	}
}

// insert descends to the node responsible for d's ID and unwinds absorbing
// at most one split per level. It returns the updated subtree root and,
// when n itself overflowed, the promotion the caller must adopt as a new
// slot. At the tree root the split is absorbed in place instead: a new
// regular root adopts the reduced node and its sibling, and no promotion
// escapes.
func (ix *Index) insert(n *node, d Device, isRoot bool) (*node, *promotion) {
	// Equal keys never descend: the matching slot, at whatever level, is
	// replaced where it sits.
	if i := n.indexOf(d.ID); i >= 0 {
		n.slots[i].dev = d
		return n, nil
	}

	switch n.kind {
	case leafKind:
		n.addKey(d.ID, slot{dev: d})
		ix.count++

	case regularKind:
		detached, keyed := n.removeKey(d.ID)
		child, promo := ix.insert(detached.child, d, false)
		if keyed {
			detached.child = child
			n.addKey(detached.dev.ID, detached)
		} else {
			n.leftChild = child
		}
		if promo != nil {
			n.addKey(promo.dev.ID, slot{dev: promo.dev, child: promo.sibling})
		}
	}

	if n.len() <= ix.order {
		return n, nil
	}

	median, sibling := n.split()
	if !isRoot {
		return n, &promotion{dev: median, sibling: sibling}
	}

	root := newNode(regularKind)
	root.leftChild = n
	root.addKey(median.ID, slot{dev: median, child: sibling})
	return root, nil
}

// Find returns the device stored under id; the bool reports presence.
// A missing id is not an error.
func (ix *Index) Find(id uint64) (Device, bool) {
	if ix.cache != nil {
		if d, ok := ix.cache.get(id); ok {
			return d, true
		}
	}

	if ix.root == nil {
		return Device{}, false
	}

	d, ok := ix.find(ix.root, id)
	if ok && ix.cache != nil {
		ix.cache.put(id, d)
	}
	return d, ok
}

// find checks n's own slots before descending; records live at every level,
// not only in leaves.
func (ix *Index) find(n *node, id uint64) (Device, bool) {
	if d, ok := n.device(id); ok {
		return d, true
	}
	if n.kind == leafKind {
		return Device{}, false
	}

	child := n.child(id)
	if child == nil {
		return Device{}, false
	}
	return ix.find(child, id)
}

// Walk calls visit once per stored device, in ascending ID order.
func (ix *Index) Walk(visit func(Device)) {
	if ix.root != nil {
		ix.walk(ix.root, visit)
	}
}

// walk is the in-order traversal: left child first, then each slot's record
// followed by that slot's child.
func (ix *Index) walk(n *node, visit func(Device)) {
	if n.leftChild != nil {
		ix.walk(n.leftChild, visit)
	}
	for i := range n.slots {
		visit(n.slots[i].dev)
		if c := n.slots[i].child; c != nil {
			ix.walk(c, visit)
		}
	}
}

// IsValid checks the structural rules over the whole tree: every node's
// length at most order, regular nodes at least order/2 long (the root needs
// only 2), and all leaves at one depth. An empty index is not a valid tree.
// Diagnostic only; no mutation path calls it.
func (ix *Index) IsValid() bool {
	if ix.root == nil {
		return false
	}

	ok, minDepth, maxDepth := ix.validate(ix.root, 0)
	return ok && minDepth == maxDepth
}

// validate reports whether the subtree under n obeys the fill rules, plus
// the shallowest and deepest leaf level it contains.
func (ix *Index) validate(n *node, level int) (bool, int, int) {
	if n.kind == leafKind {
		return n.len() <= ix.order, level, level
	}

	minLen := ix.order / 2
	if level == 0 {
		minLen = 2
	}
	ok := n.len() >= minLen && n.len() <= ix.order

	minDepth := math.MaxInt
	maxDepth := level

	check := func(c *node) {
		if c == nil {
			return
		}
		childOK, lo, hi := ix.validate(c, level+1)
		ok = ok && childOK
		minDepth = min(minDepth, lo)
		maxDepth = max(maxDepth, hi)
	}

	check(n.leftChild)
	for i := range n.slots {
		check(n.slots[i].child)
	}

	return ok, minDepth, maxDepth
}

// CacheStats returns the find cache counters. Zero-valued when the cache is
// disabled.
func (ix *Index) CacheStats() CacheStats {
	if ix.cache == nil {
		return CacheStats{}
	}
	return ix.cache.stats()
}
