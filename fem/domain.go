// Copyright 2025 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the direct stiffness method for frame structures:
// global assembly, boundary-condition partitioning, linear solution, member
// end-force recovery, section force/deflection sampling and combination
// envelopes
package fem

import (
	"github.com/Karanja-eng/goframe/inp"

	"github.com/cpmech/gosl/la"
)

// Accumulator accumulates global stiffness coefficients one (row, col, value)
// at a time. *la.Triplet satisfies this interface directly; callers are not
// committed to any particular storage.
type Accumulator interface {
	Put(i, j int, val float64)
}

// DenseAccumulator scatter-adds coefficients into a dense matrix; used for
// debugging and for checks over the full equation set
type DenseAccumulator struct {
	K [][]float64
}

// NewDenseAccumulator returns an n-by-n dense accumulator
func NewDenseAccumulator(n int) *DenseAccumulator {
	return &DenseAccumulator{K: la.MatAlloc(n, n)}
}

// Put adds val to K[i][j]
func (o *DenseAccumulator) Put(i, j int, val float64) {
	o.K[i][j] += val
}

// reducedAcc maps full equation numbers to the free subset, dropping rows and
// columns of fixed DOFs
type reducedAcc struct {
	kb     Accumulator
	eq2red []int
}

func (o reducedAcc) Put(i, j int, val float64) {
	I, J := o.eq2red[i], o.eq2red[j]
	if I < 0 || J < 0 {
		return
	}
	o.kb.Put(I, J, val)
}

// Domain holds the nodes, members and equation bookkeeping of one model
type Domain struct {

	// data
	Mdl     *inp.Model
	Ndim    int
	Ndof    int // DOFs per node
	Nodes   []*Node
	Members []*Member

	// maps
	Nid2node map[int]*Node
	Mid2mbr  map[int]*Member

	// equations
	Ny     int   // total number of DOFs
	Nfree  int   // number of free DOFs
	Eq2red []int // [Ny] equation => reduced index; -1 at fixed DOFs
	Red2eq []int // [Nfree] reduced index => equation
	NnzKb  int   // upper bound of nonzeros in the reduced stiffness matrix
}

// NewDomain builds the domain from a checked model: nodes with sequential
// equation numbers, members with stiffness matrices and assembly maps, and
// the free/fixed DOF partition
func NewDomain(mdl *inp.Model) (o *Domain, err error) {

	// allocate
	o = new(Domain)
	o.Mdl = mdl
	o.Ndim = mdl.Ndim
	o.Ndof = mdl.Ndof()

	// nodes and equation numbers
	o.Nid2node = make(map[int]*Node)
	eq := 0
	for _, v := range mdl.Nodes {
		nod := NewNode(v, o.Ndim, eq)
		eq += o.Ndof
		o.Nodes = append(o.Nodes, nod)
		o.Nid2node[v.Id] = nod
	}
	o.Ny = eq

	// members
	o.Mid2mbr = make(map[int]*Member)
	for _, cell := range mdl.Members {
		mbr, err := NewMember(mdl, cell, o.Nid2node[cell.N0], o.Nid2node[cell.N1])
		if err != nil {
			return nil, err
		}
		o.Members = append(o.Members, mbr)
		o.Mid2mbr[cell.Id] = mbr
		o.NnzKb += mbr.Nu * mbr.Nu
	}

	// attach member loads
	for _, l := range mdl.Loads {
		if l.Type == "nodal" {
			continue
		}
		mbr := o.Mid2mbr[l.Member]
		mbr.Loads = append(mbr.Loads, l)
	}

	// free/fixed partition
	o.Eq2red = make([]int, o.Ny)
	for _, nod := range o.Nodes {
		for _, dof := range nod.Dofs {
			if dof.Fixed {
				o.Eq2red[dof.Eq] = -1
				continue
			}
			o.Eq2red[dof.Eq] = o.Nfree
			o.Red2eq = append(o.Red2eq, dof.Eq)
			o.Nfree++
		}
	}
	return
}

// AssembleKb scatter-adds every member's global stiffness into kb over the
// full equation set (no boundary-condition reduction)
func (o *Domain) AssembleKb(kb Accumulator) {
	for _, mbr := range o.Members {
		mbr.AddToKb(kb)
	}
}

// AssembleReducedKb scatter-adds every member's global stiffness into kb,
// dropping rows/columns of fixed DOFs
func (o *Domain) AssembleReducedKb(kb Accumulator) {
	o.AssembleKb(reducedAcc{kb: kb, eq2red: o.Eq2red})
}

// eq2node returns the node and local DOF index owning a global equation
func (o *Domain) eq2node(eq int) (*Node, int) {
	return o.Nodes[eq/o.Ndof], eq % o.Ndof
}
