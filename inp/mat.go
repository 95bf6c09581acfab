// Copyright 2025 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/fun/dbf"
)

// Material holds the elastic properties of a member material. Characteristic
// strength parameters (e.g. "fcu", "fy") may be carried in Prms for design
// consumers; the engine itself reads E, G and rho only.
type Material struct {

	// input
	Name string   `json:"name"` // name of material
	Prms dbf.Params `json:"prms"` // parameters: E, G, rho, and pass-through values

	// derived
	E   float64 // Young's modulus
	G   float64 // shear modulus
	Rho float64 // density
}

// Derive extracts the engine parameters from Prms
func (o *Material) Derive() error {
	for _, p := range o.Prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "G":
			o.G = p.V
		case "rho":
			o.Rho = p.V
		}
	}
	if o.E < ϵp {
		return modelErr("material %q: E must be positive", o.Name)
	}
	return nil
}

// Section holds cross-sectional properties of a prismatic member
//
//   I22 -- major bending moment of inertia; pairs with transverse loads qy
//   I11 -- minor bending moment of inertia; pairs with transverse loads qz
//   Jtt -- torsional constant (spatial analyses only)
type Section struct {
	Name string  `json:"name"`
	A    float64 `json:"a"`
	I22  float64 `json:"i22"`
	I11  float64 `json:"i11"`
	Jtt  float64 `json:"jtt"`
}

// check validates section properties for ndim-dimensional analyses
func (o *Section) check(ndim int) error {
	if o.A < ϵp || o.I22 < ϵp {
		return modelErr("section %q: A and I22 must be positive", o.Name)
	}
	if ndim == 3 {
		if o.I11 < ϵp || o.Jtt < ϵp {
			return modelErr("section %q: I11 and Jtt must be positive in 3D", o.Name)
		}
	}
	return nil
}
