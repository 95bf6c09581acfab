// Copyright 2025 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// SectionState holds internal forces and local displacements at one station
// along a member. Forces follow the sagging-positive diagram convention:
// at s=0 they equal the negated stored end forces, at s=1 the stored end-2
// values (see Member.Sample).
type SectionState struct {
	S float64 // position ratio along length: 0 <= s <= 1

	// internal forces
	N  float64 // axial force; tension positive
	Vy float64 // shear in local y
	Vz float64 // shear in local z (3D)
	T  float64 // torsion (3D)
	My float64 // bending moment about local y (3D)
	Mz float64 // bending moment about local z

	// local displacements
	Ux float64 // axial displacement
	Uy float64 // deflection in local y
	Uz float64 // deflection in local z (3D)
	Rx float64 // twist rotation (3D)
}

// hermite evaluates the cubic Hermite shape functions at position ratio s
func hermite(s float64) (h1, h2, h3, h4 float64) {
	ss := s * s
	sss := ss * s
	h1 = 1.0 - 3.0*ss + 2.0*sss
	h2 = s - 2.0*ss + sss
	h3 = 3.0*ss - 2.0*sss
	h4 = sss - ss
	return
}

// Sample reconstructs internal forces and deflections at nsta stations along
// the member by superposition of the recovered end forces and the member's
// factored loads. Stations are equally spaced on [0,1]; forces at the end
// stations reproduce the stored end forces exactly (up to the diagram sign
// convention) for any nsta >= 2.
func (o *Member) Sample(res *Results, nsta int) (sta []SectionState) {

	// end forces and local displacements
	fl := res.EndForces[o.Id()]
	ul := o.LocalDisp(res.U)
	factors := res.Combo.Factors

	// stations
	S := utl.LinSpace(0, 1, nsta)
	sta = make([]SectionState, nsta)
	l := o.L
	ndof := 3 * (o.Ndim - 1)
	for i, s := range S {
		x := s * l
		st := &sta[i]
		st.S = s

		// forces from end-1 values
		st.N = -fl[0]
		st.Vy = fl[1]
		if o.Ndim == 2 {
			st.Mz = -fl[2] + fl[1]*x
		} else {
			st.Vz = fl[2]
			st.T = -fl[3]
			st.My = -fl[4] - fl[2]*x
			st.Mz = -fl[5] + fl[1]*x
		}

		// superposition of activated load contributions
		for _, load := range o.Loads {
			if load.Off {
				continue
			}
			fac := factors[load.Cat]
			if fac == 0 {
				continue
			}
			switch load.Type {

			case "dist", "grav":
				qx, qyl, qyr, qzl, qzr := o.distIntensities(load, fac)
				st.N -= qx * x
				st.Vy += qyl*x + (qyr-qyl)*x*x/(2.0*l)
				st.Mz += qyl*x*x/2.0 + (qyr-qyl)*x*x*x/(6.0*l)
				if o.Ndim == 3 {
					st.Vz += qzl*x + (qzr-qzl)*x*x/(2.0*l)
					st.My -= qzl*x*x/2.0 + (qzr-qzl)*x*x*x/(6.0*l)
				}

			case "point":
				if load.At > x {
					continue
				}
				st.N -= fac * load.P[0]
				st.Vy += fac * load.P[1]
				st.Mz += fac * load.P[1] * (x - load.At)
				if o.Ndim == 3 {
					st.Vz += fac * load.P[2]
					st.My -= fac * load.P[2] * (x - load.At)
				}
			}
		}

		// deflections by Hermite interpolation of the end displacements
		h1, h2, h3, h4 := hermite(s)
		st.Ux = (1.0-s)*ul[0] + s*ul[ndof]
		if o.Ndim == 2 {
			st.Uy = h1*ul[1] + h2*l*ul[2] + h3*ul[4] + h4*l*ul[5]
			continue
		}
		st.Uy = h1*ul[1] + h2*l*ul[5] + h3*ul[7] + h4*l*ul[11]
		st.Uz = h1*ul[2] - h2*l*ul[4] + h3*ul[8] - h4*l*ul[10] // dw/dx == -ry
		st.Rx = (1.0-s)*ul[3] + s*ul[9]
	}
	return
}

// SampleMember samples a member for an already-solved combination
func (o *Analysis) SampleMember(mid int, comboName string, nsta int) (sta []SectionState, err error) {
	if nsta < 2 {
		return nil, chk.Err("need at least 2 stations. nsta=%d is invalid", nsta)
	}
	mbr, found := o.Dom.Mid2mbr[mid]
	if !found {
		return nil, chk.Err("unknown member %d", mid)
	}
	res, err := o.ResultsOf(comboName)
	if err != nil {
		return nil, err
	}
	if res == nil {
		if res, err = o.Run(comboName); err != nil {
			return nil, err
		}
	}
	return mbr.Sample(res, nsta), nil
}
