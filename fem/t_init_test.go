// Copyright 2025 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/Karanja-eng/goframe/inp"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func get_nids_eqs(dom *Domain) (nids, eqs []int) {
	for _, nod := range dom.Nodes {
		nids = append(nids, nod.Vert.Id)
		for _, dof := range nod.Dofs {
			eqs = append(eqs, dof.Eq)
		}
	}
	return
}

// cantilever2d returns a horizontal cantilever of length l, fixed at node 0,
// with a tip load p acting downward under category "pt"
func cantilever2d(l, e, a, i22, p float64) *inp.Model {
	mdl := inp.NewModel(2)
	mdl.AddNode(0, []float64{0, 0}, true, true, true)
	mdl.AddNode(1, []float64{l, 0})
	mdl.AddMaterial("mat1", []*dbf.P{{N: "E", V: e}, {N: "rho", V: 7.85}})
	mdl.AddSection("sec1", a, i22, 0, 0)
	mdl.AddMember(0, 0, 1, "mat1", "sec1")
	mdl.AddNodalLoad("pt", 1, 0, -p, 0)
	mdl.AddCombo("sls", map[string]float64{"pt": 1})
	return mdl
}

// ssbeam2d returns a simply supported beam of span l with a uniformly
// distributed load w acting downward under category "udl"
func ssbeam2d(l, e, a, i22, w float64) *inp.Model {
	mdl := inp.NewModel(2)
	mdl.AddNode(0, []float64{0, 0}, true, true, false)
	mdl.AddNode(1, []float64{l, 0}, false, true, false)
	mdl.AddMaterial("mat1", []*dbf.P{{N: "E", V: e}, {N: "rho", V: 7.85}})
	mdl.AddSection("sec1", a, i22, 0, 0)
	mdl.AddMember(0, 0, 1, "mat1", "sec1")
	mdl.AddMemberUDL("udl", 0, -w)
	mdl.AddCombo("sls", map[string]float64{"udl": 1})
	return mdl
}
