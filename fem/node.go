// Copyright 2025 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/Karanja-eng/goframe/inp"
)

// Dof holds information about one degree-of-freedom == solution variable
type Dof struct {
	Key   string // name of DOF; e.g. "ux", "uy", "rz"
	Eq    int    // equation number in the global system
	Fixed bool   // prescribed zero by a support
}

// Node holds the DOFs of one joint
type Node struct {
	Vert *inp.Node // input vertex
	Dofs []*Dof    // one per DOF: 3 in 2D, 6 in 3D
}

// dofKeys2d/dofKeys3d give the DOF ordering per node; the member-local and
// global orderings use the same sequence
var (
	dofKeys2d = []string{"ux", "uy", "rz"}
	dofKeys3d = []string{"ux", "uy", "uz", "rx", "ry", "rz"}
)

// NewNode returns a new Node with DOFs numbered sequentially from eqStart.
// Support flags come from the vertex; a nil Fix slice means all free.
func NewNode(vert *inp.Node, ndim, eqStart int) *Node {
	keys := dofKeys2d
	if ndim == 3 {
		keys = dofKeys3d
	}
	o := &Node{Vert: vert}
	for i, key := range keys {
		fixed := vert.Fix != nil && vert.Fix[i]
		o.Dofs = append(o.Dofs, &Dof{Key: key, Eq: eqStart + i, Fixed: fixed})
	}
	return o
}

// GetEq returns the equation number of the DOF with given key, or -1
func (o *Node) GetEq(key string) int {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return dof.Eq
		}
	}
	return -1
}

// HasSupport tells whether any DOF of this node is fixed
func (o *Node) HasSupport() bool {
	for _, dof := range o.Dofs {
		if dof.Fixed {
			return true
		}
	}
	return false
}
