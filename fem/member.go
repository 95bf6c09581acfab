// Copyright 2025 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/Karanja-eng/goframe/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Member represents a prismatic frame member (Euler-Bernoulli beam-column,
// linear elastic)
//
//  2D     y                                     Props:  Nodes:
//         ^                                      E, A    0 and 1
//         |                                      I22
//        (0)-----------------------------(1)------> x
//
//  3D  local x is the member axis; local y lies in the plane spanned by the
//      axis and the orientation vector (global Y when none is given); local z
//      completes the right-handed triad.       Props: E, G, A, I22, I11, Jtt
//
type Member struct {

	// basic data
	Cell *inp.Member // input member
	X    [][]float64 // nodal coordinates [ndim][2]
	Nu   int         // total number of unknowns
	Ndim int         // space dimension

	// parameters and properties
	E   float64 // Young's modulus
	G   float64 // shear modulus
	A   float64 // cross-sectional area
	I22 float64 // major moment of inertia (bending in local x-y)
	I11 float64 // minor moment of inertia (bending in local x-z)
	Jtt float64 // torsional constant
	Rho float64 // density

	// derived geometry
	L float64     // length, from current node positions
	T [][]float64 // global-to-local transformation matrix [nu][nu]

	// local axis unit vectors (3D)
	vt, vs, vr []float64

	// stiffness
	Kl [][]float64 // local K matrix
	K  [][]float64 // global K matrix

	// assembly map (location array / element equations)
	Umap []int

	// loads applied directly to this member
	Loads []*inp.Load
}

// NewMember allocates a member and computes its stiffness matrices. The model
// must have been checked already; nodes give the assembly map.
func NewMember(mdl *inp.Model, cell *inp.Member, n0, n1 *Node) (o *Member, err error) {

	// basic data
	o = new(Member)
	o.Cell = cell
	o.Ndim = mdl.Ndim
	ndof := 3 * (o.Ndim - 1)
	o.Nu = 2 * ndof

	// coordinates
	o.X = la.MatAlloc(o.Ndim, 2)
	for i := 0; i < o.Ndim; i++ {
		o.X[i][0] = n0.Vert.C[i]
		o.X[i][1] = n1.Vert.C[i]
	}

	// parameters
	mat := mdl.Matmap[cell.Mat]
	sec := mdl.Secmap[cell.Sec]
	o.E, o.G, o.Rho = mat.E, mat.G, mat.Rho
	o.A, o.I22, o.I11, o.Jtt = sec.A, sec.I22, sec.I11, sec.Jtt

	// vectors and matrices
	o.T = la.MatAlloc(o.Nu, o.Nu)
	o.Kl = la.MatAlloc(o.Nu, o.Nu)
	o.K = la.MatAlloc(o.Nu, o.Nu)

	// assembly map
	o.Umap = make([]int, o.Nu)
	for i := 0; i < ndof; i++ {
		o.Umap[i] = n0.Dofs[i].Eq
		o.Umap[i+ndof] = n1.Dofs[i].Eq
	}

	// compute L, T, Kl and K
	err = o.Recompute()
	return
}

// Id returns the member id
func (o *Member) Id() int { return o.Cell.Id }

// Recompute re-computes length, transformation and stiffness matrices from
// the current nodal coordinates. Must be called again if node positions
// change; derived geometry is never cached across edits.
func (o *Member) Recompute() (err error) {

	// 3D
	if o.Ndim == 3 {

		// member axis
		v01 := make([]float64, 3)
		for i := 0; i < 3; i++ {
			v01[i] = o.X[i][1] - o.X[i][0]
		}
		l := math.Sqrt(utl.Dot3d(v01, v01))
		if l < 1e-9 {
			return chk.Err("member %d has zero length", o.Cell.Id)
		}
		o.L = l
		o.vt = make([]float64, 3)
		for i := 0; i < 3; i++ {
			o.vt[i] = v01[i] / l
		}

		// orientation vector: input Onv or the default global axes
		ref := o.Cell.Onv
		if ref == nil {
			ref = []float64{0, 1, 0}
			if math.Abs(utl.Dot3d(o.vt, ref)) > 0.999 {
				ref = []float64{0, 0, 1}
			}
		}

		// local y: component of ref orthogonal to the axis
		o.vs = make([]float64, 3)
		d := utl.Dot3d(ref, o.vt)
		for i := 0; i < 3; i++ {
			o.vs[i] = ref[i] - d*o.vt[i]
		}
		ls := math.Sqrt(utl.Dot3d(o.vs, o.vs))
		if ls < 1e-9 {
			return chk.Err("member %d: orientation vector is parallel to the member axis", o.Cell.Id)
		}
		for i := 0; i < 3; i++ {
			o.vs[i] /= ls
		}

		// local z
		o.vr = make([]float64, 3)
		utl.Cross3d(o.vr, o.vt, o.vs) // vr := vt cross vs

		// global-to-local transformation matrix
		for k := 0; k < 4; k++ {
			o.T[3*k+0][3*k+0], o.T[3*k+0][3*k+1], o.T[3*k+0][3*k+2] = o.vt[0], o.vt[1], o.vt[2]
			o.T[3*k+1][3*k+0], o.T[3*k+1][3*k+1], o.T[3*k+1][3*k+2] = o.vs[0], o.vs[1], o.vs[2]
			o.T[3*k+2][3*k+0], o.T[3*k+2][3*k+1], o.T[3*k+2][3*k+2] = o.vr[0], o.vr[1], o.vr[2]
		}

		// constants
		EI2, EI1, GJ, EA := o.E*o.I22, o.E*o.I11, o.G*o.Jtt, o.E*o.A
		ll := l * l
		lll := l * ll

		// stiffness matrix in local system
		for i := 0; i < o.Nu; i++ {
			la.VecFill(o.Kl[i], 0)
		}
		o.Kl[0][0] = EA / l
		o.Kl[0][6] = -EA / l

		o.Kl[1][1] = 12.0 * EI2 / lll
		o.Kl[1][5] = 6.0 * EI2 / ll
		o.Kl[1][7] = -12.0 * EI2 / lll
		o.Kl[1][11] = 6.0 * EI2 / ll

		o.Kl[2][2] = 12.0 * EI1 / lll
		o.Kl[2][4] = -6.0 * EI1 / ll
		o.Kl[2][8] = -12.0 * EI1 / lll
		o.Kl[2][10] = -6.0 * EI1 / ll

		o.Kl[3][3] = GJ / l
		o.Kl[3][9] = -GJ / l

		o.Kl[4][2] = -6.0 * EI1 / ll
		o.Kl[4][4] = 4.0 * EI1 / l
		o.Kl[4][8] = 6.0 * EI1 / ll
		o.Kl[4][10] = 2.0 * EI1 / l

		o.Kl[5][1] = 6.0 * EI2 / ll
		o.Kl[5][5] = 4.0 * EI2 / l
		o.Kl[5][7] = -6.0 * EI2 / ll
		o.Kl[5][11] = 2.0 * EI2 / l

		o.Kl[6][0] = -EA / l
		o.Kl[6][6] = EA / l

		o.Kl[7][1] = -12.0 * EI2 / lll
		o.Kl[7][5] = -6.0 * EI2 / ll
		o.Kl[7][7] = 12.0 * EI2 / lll
		o.Kl[7][11] = -6.0 * EI2 / ll

		o.Kl[8][2] = -12.0 * EI1 / lll
		o.Kl[8][4] = 6.0 * EI1 / ll
		o.Kl[8][8] = 12.0 * EI1 / lll
		o.Kl[8][10] = 6.0 * EI1 / ll

		o.Kl[9][3] = -GJ / l
		o.Kl[9][9] = GJ / l

		o.Kl[10][2] = -6.0 * EI1 / ll
		o.Kl[10][4] = 2.0 * EI1 / l
		o.Kl[10][8] = 6.0 * EI1 / ll
		o.Kl[10][10] = 4.0 * EI1 / l

		o.Kl[11][1] = 6.0 * EI2 / ll
		o.Kl[11][5] = 2.0 * EI2 / l
		o.Kl[11][7] = -6.0 * EI2 / ll
		o.Kl[11][11] = 4.0 * EI2 / l

		// stiffness matrix in global system
		la.MatTrMul3(o.K, 1, o.T, o.Kl, o.T) // K := 1 * trans(T) * Kl * T
		return
	}

	// 2D: T
	dx := o.X[0][1] - o.X[0][0]
	dy := o.X[1][1] - o.X[1][0]
	l := math.Sqrt(dx*dx + dy*dy)
	if l < 1e-9 {
		return chk.Err("member %d has zero length", o.Cell.Id)
	}
	o.L = l
	c := dx / l
	s := dy / l
	o.T[0][0] = c
	o.T[0][1] = s
	o.T[1][0] = -s
	o.T[1][1] = c
	o.T[2][2] = 1
	o.T[3][3] = c
	o.T[3][4] = s
	o.T[4][3] = -s
	o.T[4][4] = c
	o.T[5][5] = 1

	// aux vars
	ll := l * l
	m := o.E * o.A / l
	n := o.E * o.I22 / (ll * l)

	// K
	o.Kl[0][0] = m
	o.Kl[0][3] = -m
	o.Kl[1][1] = 12 * n
	o.Kl[1][2] = 6 * l * n
	o.Kl[1][4] = -12 * n
	o.Kl[1][5] = 6 * l * n
	o.Kl[2][1] = 6 * l * n
	o.Kl[2][2] = 4 * ll * n
	o.Kl[2][4] = -6 * l * n
	o.Kl[2][5] = 2 * ll * n
	o.Kl[3][0] = -m
	o.Kl[3][3] = m
	o.Kl[4][1] = -12 * n
	o.Kl[4][2] = -6 * l * n
	o.Kl[4][4] = 12 * n
	o.Kl[4][5] = -6 * l * n
	o.Kl[5][1] = 6 * l * n
	o.Kl[5][2] = 2 * ll * n
	o.Kl[5][4] = -6 * l * n
	o.Kl[5][5] = 4 * ll * n
	la.MatTrMul3(o.K, 1, o.T, o.Kl, o.T) // K := 1 * trans(T) * Kl * T
	return
}

// AddToKb scatter-adds the member's global stiffness into an accumulator
// using the global equation numbers
func (o *Member) AddToKb(kb Accumulator) {
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			kb.Put(I, J, o.K[i][j])
		}
	}
}

// distIntensities resolves the local distributed intensities of one load,
// already scaled by its combination factor. Self-weight loads are converted
// into local components of the global rho*A*g vector here, so load input
// stays append-only.
func (o *Member) distIntensities(l *inp.Load, factor float64) (qx, qyl, qyr, qzl, qzr float64) {
	if l.Type == "grav" {
		w := -factor * l.G * o.Rho * o.A // along global y
		if o.Ndim == 3 {
			qx = o.vt[1] * w
			qy := o.vs[1] * w
			qz := o.vr[1] * w
			return qx, qy, qy, qz, qz
		}
		dx := o.X[0][1] - o.X[0][0]
		dy := o.X[1][1] - o.X[1][0]
		c, s := dx/o.L, dy/o.L
		return s * w, c * w, c * w, 0, 0
	}
	return factor * l.Qx, factor * l.QyL, factor * l.QyR, factor * l.QzL, factor * l.QzR
}

// EquivNodalForces computes the member's equivalent nodal force vector in the
// local frame for the given combination factors. The vector is freshly
// allocated so concurrent combination runs never share it.
func (o *Member) EquivNodalForces(factors map[string]float64) (f0 []float64) {
	f0 = make([]float64, o.Nu)
	l := o.L
	ll := l * l
	lll := ll * l
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
			if o.Ndim == 2 {
				f0[0] += qx * l / 2.0
				f0[1] += l * (7.0*qyl + 3.0*qyr) / 20.0
				f0[2] += ll * (3.0*qyl + 2.0*qyr) / 60.0
				f0[3] += qx * l / 2.0
				f0[4] += l * (3.0*qyl + 7.0*qyr) / 20.0
				f0[5] -= ll * (2.0*qyl + 3.0*qyr) / 60.0
				continue
			}
			f0[0] += qx * l / 2.0
			f0[1] += l * (7.0*qyl + 3.0*qyr) / 20.0
			f0[2] += l * (7.0*qzl + 3.0*qzr) / 20.0
			f0[4] -= ll * (3.0*qzl + 2.0*qzr) / 60.0
			f0[5] += ll * (3.0*qyl + 2.0*qyr) / 60.0
			f0[6] += qx * l / 2.0
			f0[7] += l * (3.0*qyl + 7.0*qyr) / 20.0
			f0[8] += l * (3.0*qzl + 7.0*qzr) / 20.0
			f0[10] += ll * (2.0*qzl + 3.0*qzr) / 60.0
			f0[11] -= ll * (2.0*qyl + 3.0*qyr) / 60.0

		case "point":
			a := load.At
			b := l - a
			px := fac * load.P[0]
			py := fac * load.P[1]
			if o.Ndim == 2 {
				f0[0] += px * b / l
				f0[1] += py * b * b * (l + 2.0*a) / lll
				f0[2] += py * a * b * b / ll
				f0[3] += px * a / l
				f0[4] += py * a * a * (l + 2.0*b) / lll
				f0[5] -= py * a * a * b / ll
				continue
			}
			pz := fac * load.P[2]
			f0[0] += px * b / l
			f0[1] += py * b * b * (l + 2.0*a) / lll
			f0[2] += pz * b * b * (l + 2.0*a) / lll
			f0[4] -= pz * a * b * b / ll
			f0[5] += py * a * b * b / ll
			f0[6] += px * a / l
			f0[7] += py * a * a * (l + 2.0*b) / lll
			f0[8] += pz * a * a * (l + 2.0*b) / lll
			f0[10] += pz * a * a * b / ll
			f0[11] -= py * a * a * b / ll
		}
	}
	return
}

// LocalDisp gathers the member's end displacements from the full global
// displacement vector and transforms them to the local frame
func (o *Member) LocalDisp(U []float64) (ul []float64) {
	ue := make([]float64, o.Nu)
	for i, I := range o.Umap {
		ue[i] = U[I]
	}
	ul = make([]float64, o.Nu)
	la.MatVecMul(ul, 1, o.T, ue) // ul := T * ue
	return
}

// RecoverEndForces computes the member end forces in the local frame:
// fl = Kl*ul - f0, where f0 is the combination's equivalent nodal force vector
func (o *Member) RecoverEndForces(U, f0 []float64) (fl []float64) {
	ul := o.LocalDisp(U)
	fl = make([]float64, o.Nu)
	la.MatVecMul(fl, 1, o.Kl, ul) // fl := Kl * ul
	for i := 0; i < o.Nu; i++ {
		fl[i] -= f0[i]
	}
	return
}

// AddToFb scatter-adds the global version of the local equivalent nodal force
// vector into the full global load vector
func (o *Member) AddToFb(fb, f0 []float64) {
	fx := make([]float64, o.Nu)
	la.MatTrVecMulAdd(fx, 1.0, o.T, f0) // fx += trans(T) * f0
	for i, I := range o.Umap {
		fb[I] += fx[i]
	}
}

// GlobalEndForces transforms recovered local end forces to the global frame;
// used to accumulate support reactions
func (o *Member) GlobalEndForces(fl []float64) (fg []float64) {
	fg = make([]float64, o.Nu)
	la.MatTrVecMulAdd(fg, 1.0, o.T, fl) // fg += trans(T) * fl
	return
}
