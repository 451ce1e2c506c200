package hull

import (
	"log/slog"
	"slices"

	"github.com/oliverbestmann/hullchains/geom"
)

// ref is a handle into the node arena of a tree. The zero ref is the shared
// nil node and never holds any data.
type ref int32

const nilRef ref = 0

type kind uint8

const (
	leaf kind = iota + 1
	internal
)

type node struct {
	kind   kind
	parent ref
	left   ref
	right  ref

	// leaf only
	point geom.Point

	// the rightmost leaf below this node, a leaf is its own last leaf
	last ref

	// internal only: the rightmost leaf of the left subtree. Its point
	// is the split key, smaller or equal points go to the left.
	rep ref

	// internal only: index of the last point of the left subtree in hull
	split int

	height int

	// the part of this nodes hull that is not part of the parents hull.
	// For the root this is the complete hull.
	points []geom.Point

	// the complete hull of this subtree. Only valid for the nodes touched
	// by the current operation.
	hull []geom.Point
}

// Tree maintains the upper convex hull of a dynamic set of points.
// Leaves hold the points ordered by x, every internal node stores the part
// of its subtree's hull that does not survive in the hull of its parent.
//
// The zero value is not usable, use NewTree.
type Tree struct {
	nodes []node
	free  []ref
	root  ref
	size  int

	balance bool
	logger  *slog.Logger
}

type Option func(t *Tree)

// WithLogger sets the logger used to report operations that had no effect.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tree) {
		t.logger = logger
	}
}

// WithoutBalancing keeps the shape produced by insertions and deletions
// instead of rebalancing the tree after every update.
func WithoutBalancing() Option {
	return func(t *Tree) {
		t.balance = false
	}
}

func NewTree(opts ...Option) *Tree {
	t := &Tree{
		// index zero is reserved for the nil node
		nodes:   make([]node, 1, 64),
		balance: true,
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.logger == nil {
		t.logger = slog.Default()
	}

	return t
}

// Len returns the number of points in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Height returns the number of edges on the longest path from the root to a leaf.
func (t *Tree) Height() int {
	if t.root == nilRef {
		return 0
	}

	return t.nodes[t.root].height
}

// Hull returns the upper hull from left to right.
func (t *Tree) Hull() []geom.Point {
	if t.root == nilRef {
		return nil
	}

	return slices.Clone(t.nodes[t.root].points)
}

// Points returns all points in the tree, ordered by x.
func (t *Tree) Points() []geom.Point {
	points := make([]geom.Point, 0, t.size)

	var walk func(r ref)
	walk = func(r ref) {
		if r == nilRef {
			return
		}

		n := &t.nodes[r]
		if n.kind == leaf {
			points = append(points, n.point)
			return
		}

		walk(n.left)
		walk(n.right)
	}

	walk(t.root)

	return points
}

// Contains reports whether a point with the coordinates of p is in the tree.
func (t *Tree) Contains(p geom.Point) bool {
	r := t.root
	for r != nilRef && t.nodes[r].kind == internal {
		r = t.child(r, p)
	}

	return r != nilRef && t.nodes[r].point.Same(p)
}

// Insert adds p to the tree. Inserting a point that is already part of the
// tree has no effect and returns false.
func (t *Tree) Insert(p geom.Point) bool {
	if t.root == nilRef {
		t.root = t.newLeaf(p)
		t.nodes[t.root].points = []geom.Point{p}
		t.size++
		return true
	}

	target := t.down(p)

	if t.nodes[target].point.Same(p) {
		t.logger.Debug("Point already present", slog.Any("point", p))
		return false
	}

	inserted := t.newLeaf(p)
	joined := t.newNode(internal)

	if p.Less(t.nodes[target].point) {
		t.nodes[joined].left = inserted
		t.nodes[joined].right = target
	} else {
		t.nodes[joined].left = target
		t.nodes[joined].right = inserted
	}

	t.replace(target, joined)

	t.nodes[target].parent = joined
	t.nodes[inserted].parent = joined

	t.size++

	t.up(joined)

	return true
}

// Delete removes the point with the coordinates of p. It returns false if
// there is no such point.
func (t *Tree) Delete(p geom.Point) bool {
	if t.root == nilRef {
		t.logger.Debug("Point not found", slog.Any("point", p))
		return false
	}

	target := t.down(p)

	if !t.nodes[target].point.Same(p) {
		t.logger.Debug("Point not found", slog.Any("point", p))
		return false
	}

	t.size--

	parent := t.nodes[target].parent
	if parent == nilRef {
		// the last point
		t.release(target)
		t.root = nilRef
		return true
	}

	sibling := t.sibling(target)
	grandparent := t.nodes[parent].parent

	t.replace(parent, sibling)

	t.release(target)
	t.release(parent)

	if grandparent == nilRef {
		// the sibling is the new root. Its hull was pushed down
		// when walking down to the deleted leaf.
		t.nodes[sibling].points = slices.Clone(t.nodes[sibling].hull)
		return true
	}

	t.up(grandparent)

	return true
}

// down walks from the root to the leaf where p is or would be located.
// On the way the hull of every visited node is pushed to its children.
func (t *Tree) down(p geom.Point) ref {
	root := &t.nodes[t.root]
	root.hull = slices.Clone(root.points)

	r := t.root
	for t.nodes[r].kind == internal {
		t.push(r)
		r = t.child(r, p)
	}

	return r
}

// up merges the hulls of all nodes from r to the root.
func (t *Tree) up(r ref) {
	for {
		if t.balance {
			r = t.rebalance(r)
		}

		t.pull(r)

		parent := t.nodes[r].parent
		if parent == nilRef {
			break
		}

		r = parent
	}

	root := &t.nodes[r]
	root.points = slices.Clone(root.hull)
}

// push reconstructs the hulls of the children of r from the hull of r.
func (t *Tree) push(r ref) {
	n := &t.nodes[r]

	left := &t.nodes[n.left]
	if left.kind == internal {
		left.hull = slices.Concat(n.hull[:n.split+1], left.points)
	}

	right := &t.nodes[n.right]
	if right.kind == internal {
		right.hull = slices.Concat(right.points, n.hull[n.split+1:])
	}
}

// pull merges the hulls of the children of r into the hull of r and
// updates the cached values of r. The hulls of both children must be valid.
func (t *Tree) pull(r ref) {
	n := &t.nodes[r]
	left := &t.nodes[n.left]
	right := &t.nodes[n.right]

	bridge, err := Merge(left.hull, right.hull)
	if err != nil {
		// both children hold the non empty upper hulls of their subtrees
		panic(err)
	}

	left.points = bridge.DroppedLeft
	right.points = bridge.DroppedRight

	n.hull = bridge.Hull()
	n.split = bridge.Split

	n.rep = left.last
	n.last = right.last
	n.height = 1 + max(left.height, right.height)
}

// child returns the child of r that p belongs to.
func (t *Tree) child(r ref, p geom.Point) ref {
	n := &t.nodes[r]
	key := t.nodes[n.rep].point

	if p.Less(key) || p.Same(key) {
		return n.left
	}

	return n.right
}

func (t *Tree) sibling(r ref) ref {
	parent := &t.nodes[t.nodes[r].parent]
	if parent.left == r {
		return parent.right
	}

	return parent.left
}

// replace puts next at the position of prev in the tree.
func (t *Tree) replace(prev, next ref) {
	parent := t.nodes[prev].parent
	t.nodes[next].parent = parent

	switch {
	case parent == nilRef:
		t.root = next
	case t.nodes[parent].left == prev:
		t.nodes[parent].left = next
	default:
		t.nodes[parent].right = next
	}
}

func (t *Tree) newLeaf(p geom.Point) ref {
	r := t.newNode(leaf)

	n := &t.nodes[r]
	n.point = p
	n.last = r
	n.hull = []geom.Point{p}

	return r
}

func (t *Tree) newNode(kind kind) ref {
	var r ref
	if len(t.free) > 0 {
		r = pop(&t.free)
	} else {
		t.nodes = append(t.nodes, node{})
		r = ref(len(t.nodes) - 1)
	}

	t.nodes[r] = node{kind: kind}
	return r
}

func (t *Tree) release(r ref) {
	t.nodes[r] = node{}
	t.free = append(t.free, r)
}

func pop[T any](values *[]T) T {
	n := len(*values)
	if n == 0 {
		panic("slice is empty")
	}

	value := (*values)[n-1]
	*values = (*values)[:n-1]

	return value
}
