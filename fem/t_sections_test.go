// Copyright 2025 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/Karanja-eng/goframe/ana"
	"github.com/Karanja-eng/goframe/inp"
)

func Test_sections01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sections01. trapezoid with equal ends equals UDL")

	l, e, a, i22, w := 4.0, 2e8, 0.01, 1e-4, 5.0
	mkmodel := func(trapez bool) *inp.Model {
		mdl := inp.NewModel(2)
		mdl.AddNode(0, []float64{0, 0}, true, true, false)
		mdl.AddNode(1, []float64{l, 0}, false, true, false)
		mdl.AddMaterial("mat1", []*dbf.P{{N: "E", V: e}, {N: "rho", V: 7.85}})
		mdl.AddSection("sec1", a, i22, 0, 0)
		mdl.AddMember(0, 0, 1, "mat1", "sec1")
		if trapez {
			mdl.AddMemberDist("udl", 0, 0, -w, -w, 0, 0)
		} else {
			mdl.AddMemberUDL("udl", 0, -w)
		}
		mdl.AddCombo("sls", map[string]float64{"udl": 1})
		return mdl
	}

	run := func(mdl *inp.Model) []SectionState {
		an, err := NewAnalysis(mdl)
		if err != nil {
			tst.Fatalf("NewAnalysis failed:\n%v", err)
		}
		defer an.Clean()
		res, err := an.Run("sls")
		if err != nil {
			tst.Fatalf("Run failed:\n%v", err)
		}
		return an.Dom.Members[0].Sample(res, 11)
	}

	sa := run(mkmodel(true))
	sb := run(mkmodel(false))
	for i := range sa {
		chk.Scalar(tst, io.Sf("Vy @ %d", i), 1e-11, sa[i].Vy, sb[i].Vy)
		chk.Scalar(tst, io.Sf("Mz @ %d", i), 1e-11, sa[i].Mz, sb[i].Mz)
		chk.Scalar(tst, io.Sf("Uy @ %d", i), 1e-13, sa[i].Uy, sb[i].Uy)
	}
}

func Test_sections02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sections02. point load on member")

	l, e, a, i22, p, at := 4.0, 2e8, 0.01, 1e-4, 10.0, 1.0
	mdl := inp.NewModel(2)
	mdl.AddNode(0, []float64{0, 0}, true, true, false)
	mdl.AddNode(1, []float64{l, 0}, false, true, false)
	mdl.AddMaterial("mat1", []*dbf.P{{N: "E", V: e}, {N: "rho", V: 7.85}})
	mdl.AddSection("sec1", a, i22, 0, 0)
	mdl.AddMember(0, 0, 1, "mat1", "sec1")
	mdl.AddMemberPoint("pt", 0, at, 0, -p)
	mdl.AddCombo("sls", map[string]float64{"pt": 1})

	an, err := NewAnalysis(mdl)
	if err != nil {
		tst.Errorf("NewAnalysis failed:\n%v", err)
		return
	}
	defer an.Clean()

	// stations aligned with the load position so the jump is captured
	sta, err := an.SampleMember(0, "sls", 9)
	if err != nil {
		tst.Errorf("SampleMember failed:\n%v", err)
		return
	}

	sol := ana.SimpleBeamPointLoad{L: l, EI: e * i22, P: p, A: at}
	b := l - at
	for _, st := range sta {
		x := st.S * l
		chk.Scalar(tst, io.Sf("Mz @ %.1f", x), 1e-11, st.Mz, sol.Moment(x))
		if x < at {
			chk.Scalar(tst, io.Sf("Vy @ %.1f", x), 1e-11, st.Vy, p*b/l)
		}
		if x > at {
			chk.Scalar(tst, io.Sf("Vy @ %.1f", x), 1e-11, st.Vy, -p*at/l)
		}
	}
	chk.Scalar(tst, "Mz(at)", 1e-11, sta[2].Mz, sol.MaxMoment())
}

func Test_sections03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sections03. end stations reproduce end forces")

	// asymmetric trapezoidal load on a propped cantilever; the diagram values
	// at the first and last stations must match the recovered end forces for
	// any number of stations
	l, e, a, i22 := 5.0, 2e8, 0.01, 1e-4
	mdl := inp.NewModel(2)
	mdl.AddNode(0, []float64{0, 0}, true, true, true)
	mdl.AddNode(1, []float64{l, 0}, false, true, false)
	mdl.AddMaterial("mat1", []*dbf.P{{N: "E", V: e}, {N: "rho", V: 7.85}})
	mdl.AddSection("sec1", a, i22, 0, 0)
	mdl.AddMember(0, 0, 1, "mat1", "sec1")
	mdl.AddMemberDist("trap", 0, 2.0, -3.0, -9.0, 0, 0)
	mdl.AddCombo("sls", map[string]float64{"trap": 1})

	an, err := NewAnalysis(mdl)
	if err != nil {
		tst.Errorf("NewAnalysis failed:\n%v", err)
		return
	}
	defer an.Clean()
	res, err := an.Run("sls")
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	fl := res.EndForces[0]
	io.Pforan("fl = %v\n", fl)

	for _, nsta := range []int{2, 3, 7, 12} {
		sta := an.Dom.Members[0].Sample(res, nsta)
		s0, s1 := sta[0], sta[nsta-1]
		chk.Scalar(tst, io.Sf("N(0)  nsta=%d", nsta), 1e-10, s0.N, -fl[0])
		chk.Scalar(tst, io.Sf("Vy(0) nsta=%d", nsta), 1e-10, s0.Vy, fl[1])
		chk.Scalar(tst, io.Sf("Mz(0) nsta=%d", nsta), 1e-10, s0.Mz, -fl[2])
		chk.Scalar(tst, io.Sf("N(1)  nsta=%d", nsta), 1e-10, s1.N, fl[3])
		chk.Scalar(tst, io.Sf("Vy(1) nsta=%d", nsta), 1e-10, s1.Vy, -fl[4])
		chk.Scalar(tst, io.Sf("Mz(1) nsta=%d", nsta), 1e-10, s1.Mz, fl[5])
	}

	// too few stations
	if _, err := an.SampleMember(0, "sls", 1); err == nil {
		tst.Errorf("SampleMember should reject nsta < 2")
	}
	if _, err := an.SampleMember(123, "sls", 5); err == nil {
		tst.Errorf("SampleMember should reject an unknown member")
	}
}

func Test_sections04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sections04. self-weight")

	// vertical column under gravity: axial force builds up linearly from zero
	// at the top to the total weight at the base
	h, e, a, i22, rho, g := 3.0, 2e8, 0.01, 1e-4, 7.85, 9.81
	mdl := inp.NewModel(2)
	mdl.AddNode(0, []float64{0, 0}, true, true, true)
	mdl.AddNode(1, []float64{0, h})
	mdl.AddMaterial("mat1", []*dbf.P{{N: "E", V: e}, {N: "rho", V: rho}})
	mdl.AddSection("sec1", a, i22, 0, 0)
	mdl.AddMember(0, 0, 1, "mat1", "sec1")
	mdl.AddSelfWeight("dead", g)
	mdl.AddCombo("sls", map[string]float64{"dead": 1})

	an, err := NewAnalysis(mdl)
	if err != nil {
		tst.Errorf("NewAnalysis failed:\n%v", err)
		return
	}
	defer an.Clean()
	res, err := an.Run("sls")
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	wtot := rho * a * g * h
	chk.Scalar(tst, "ry(base)", 1e-11, res.Reactions[0][1], wtot)

	sta := an.Dom.Members[0].Sample(res, 5)
	for _, st := range sta {
		x := st.S * h
		chk.Scalar(tst, io.Sf("N @ %.2f", x), 1e-11, st.N, -(wtot - rho*a*g*x))
		chk.Scalar(tst, io.Sf("Mz @ %.2f", x), 1e-11, st.Mz, 0)
	}
}
