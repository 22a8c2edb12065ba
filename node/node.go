// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package node provides the elements of the scene graph.
package node

import (
	"github.com/gviegas/scenemath/linear"
)

// Interface of a node.
type Interface interface {
	// Local returns the local transform of the node.
	// It must not return nil.
	Local() *linear.M4f

	// Changed returns whether the local transform
	// has changed.
	Changed() bool
}

// Node represents a single node in a scene graph.
// Nodes have at most one immediate ancestor and
// an arbitrary number of immediate descendants.
//
// A Node owns a translation, rotation and scale
// from which its local transform is derived.
// It observes its own rotation, so a Node must not
// be copied after Init.
type Node struct {
	next *Node
	prev *Node
	sub  *Node

	// Name for the node.
	// It is not used by node code.
	Name string

	t       linear.V3f
	r       linear.Qf
	s       linear.V3f
	local   linear.M4f
	changed bool
}

// New creates an initialized node.
func New() *Node { return new(Node).Init() }

// Init initializes node n.
// It sets the identity transform and leaves the
// graph links untouched.
func (n *Node) Init() *Node {
	n.t = linear.V3f{}
	n.r = linear.Ident[float32]()
	n.s = linear.V3f{1, 1, 1}
	n.local.I()
	n.changed = false
	n.r.Observe((*rotation)(n))
	return n
}

// rotation is notified when the rotation of a node
// changes.
type rotation Node

func (r *rotation) Notify() { r.changed = true }

// Translation returns a pointer to the translation
// of n. Calling it flags the local transform as
// changed.
func (n *Node) Translation() *linear.V3f {
	n.changed = true
	return &n.t
}

// Rotation returns a pointer to the rotation of n.
// Changes made through linear.Q methods are tracked.
// Direct writes to the V and R fields are not.
func (n *Node) Rotation() *linear.Qf { return &n.r }

// Scale returns a pointer to the scale of n.
// Calling it flags the local transform as changed.
func (n *Node) Scale() *linear.V3f {
	n.changed = true
	return &n.s
}

// SetMatrix sets the local transform of n to m.
// m is decomposed into translation, rotation and
// scale, so it must not contain shear.
// A negative determinant is folded into the X scale.
func (n *Node) SetMatrix(m *linear.M4f) {
	n.t = linear.V3f{m[3][0], m[3][1], m[3][2]}
	n.s = linear.V3f{m[0].Len(), m[1].Len(), m[2].Len()}
	u := m.Upper()
	var c linear.V3f
	if c.Cross(&u[1], &u[2]); c.Dot(&u[0]) < 0 {
		n.s[0] = -n.s[0]
	}
	for i := range u {
		if n.s[i] != 0 {
			u[i].Scale(1/n.s[i], &u[i])
		}
	}
	n.r.FromM3(&u)
	n.local = *m
	n.changed = false
}

// Local implements Interface.
// The local transform is recomputed as T⋅R⋅S only
// when it has changed since the last call.
func (n *Node) Local() *linear.M4f {
	if n.changed {
		var t, r, s linear.M4f
		t.Translate(n.t[0], n.t[1], n.t[2])
		r.RotateQ(&n.r)
		s.Scale(n.s[0], n.s[1], n.s[2])
		n.local.Mul(&t, &r)
		n.local.Mul(&n.local, &s)
		n.changed = false
	}
	return &n.local
}

// Changed implements Interface.
func (n *Node) Changed() bool { return n.changed }

// World returns the transform of n relative to the
// root of its graph.
func (n *Node) World() linear.M4f {
	w := *n.Local()
	for p := n.Parent(); p != nil; p = p.Parent() {
		w.Mul(p.Local(), &w)
	}
	return w
}

// Insert inserts node sub as immediate descendant
// of node n.
// sub must be either a descendant of n or part of
// an unrelated graph - it must not be an ancestor
// of node n.
func (n *Node) Insert(sub *Node) {
	sub.Remove()
	sub.next = n.sub
	sub.prev = n
	if n.sub != nil {
		n.sub.prev = sub
	}
	n.sub = sub
}

// Remove removes node n from its immediate ancestor.
func (n *Node) Remove() {
	// prev is only nil when the node has no ancestor,
	// since the first immediate descendant refers to
	// its immediate ancestor through prev.
	if n.prev != nil {
		if n.prev.sub == n {
			n.prev.sub = n.next
		} else {
			n.prev.next = n.next
		}
		if n.next != nil {
			n.next.prev = n.prev
		}
		n.prev = nil
		n.next = nil
	}
}

// Parent returns the immediate ancestor of n, or nil
// if n has none.
func (n *Node) Parent() *Node {
	for nd := n; nd.prev != nil; nd = nd.prev {
		if nd.prev.sub == nd {
			return nd.prev
		}
	}
	return nil
}

// Len returns the number of descendants of n.
func (n *Node) Len() (cnt int) {
	n.ForEach(func(*Node) { cnt++ })
	return
}

// ForEach calls f for each descendant of node n.
// Ancestors are processed first.
// The scene graph must not be changed until this
// method returns.
func (n *Node) ForEach(f func(*Node)) {
	n.Until(func(nd *Node) bool {
		f(nd)
		return true
	})
}

// Until calls f for each descendant of node n.
// Ancestors are processed first. If f returns false,
// Until returns immediately.
// The scene graph must not be changed until this
// method returns.
func (n *Node) Until(f func(*Node) bool) {
	if n.sub == nil {
		return
	}
	que := []*Node{n.sub}
	for len(que) > 0 {
		for nd := que[0]; nd != nil; nd = nd.next {
			if !f(nd) {
				return
			}
			if sub := nd.sub; sub != nil {
				que = append(que, sub)
			}
		}
		que = que[1:]
	}
}
