// Copyright 2025 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana provides closed-form solutions and reference data: beam
// formulas used to verify the solver, cross-section property calculators and
// a small library of common materials
package ana

import (
	"math"

	"github.com/Karanja-eng/goframe/inp"

	"github.com/cpmech/gosl/chk"
)

// CrossSection computes cross-sectional properties from plain dimensions
//
//   typ : rectangle
//         circle                             tw
//         I-beam                         -->| |<--
//                                    ___    | |     ___
//   ^ 1       +-------+            tf |   ########   |
//   |         |       |              ---  ########   |
//   |         |       |                      ##      |
//   +----> 2  |       | h = hei              ##      | h = hei
//             |       |                      ##      |
//             |       |              ---  ########   |
//             +-------+            tf_|_  ########  ---
//              b = wid                    b = wid
//
type CrossSection struct {

	// input
	Type string  // "rectangle", "I-beam" or "circle"
	Wid  float64 // width (b) if not circular
	Hei  float64 // height (h) if not circular
	Tf   float64 // flange thickness if I-beam
	Tw   float64 // web thickness if I-beam
	R    float64 // radius if circular

	// derived
	A   float64 // cross-sectional area
	I22 float64 // major cross-section moment of inertia
	I11 float64 // minor cross-section moment of inertia
	Jtt float64 // torsional constant
}

// Init initialises the structure and computes the derived properties
func (o *CrossSection) Init(typ string, wid, hei, tf, tw, rad float64) {

	// input data
	o.Type, o.Wid, o.Hei, o.Tf, o.Tw, o.R = typ, wid, hei, tf, tw, rad

	// derived
	switch typ {
	case "rectangle":
		b, h := wid, hei
		b3 := b * b * b
		h3 := h * h * h
		o.A = b * h
		o.I22 = b * h3 / 12.0
		o.I11 = b3 * h / 12.0
		if b == h {
			o.Jtt = 9.0 * b3 * b / 64.0
		} else {
			if b > h {
				b, h = h, b
			}
			o.Jtt = h * b3 * (1.0/3.0 - 0.21*(b/h)*(1.0-b*b3/(12.0*h*h3))) // approximate
		}

	case "I-beam":
		b, h := wid, hei
		b3 := b * b * b
		h3 := h * h * h
		tf3 := tf * tf * tf
		tw3 := tw * tw * tw
		l := h - 2.0*tf
		l3 := l * l * l
		o.A = b*h - l*(b-tw)
		o.I22 = b*h3/12.0 - (b-tw)*l3/12.0
		o.I11 = l*tw3/12.0 + tf*b3/6.0
		o.Jtt = (2.0*b*tf3 + (h-2.0*tf)*tw3) / 3.0

	case "circle":
		r2 := rad * rad
		o.A = math.Pi * r2
		o.I22 = math.Pi * r2 * r2 / 4.0
		o.I11 = o.I22
		o.Jtt = o.I22 + o.I11

	default:
		chk.Panic("cross-section type %q is unavailable", typ)
	}
}

// ToSection converts the computed properties into an input section
func (o *CrossSection) ToSection(name string) *inp.Section {
	return &inp.Section{Name: name, A: o.A, I22: o.I22, I11: o.I11, Jtt: o.Jtt}
}
