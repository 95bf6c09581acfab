// Copyright 2025 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// RefMaterial returns the parameter set of a common reference material.
// Units: E, G in kPa; rho in Mg/m³ -- consistent with kN and m models.
func RefMaterial(typ string) dbf.Params {
	var e, nu, rho float64
	switch typ {
	case "steel":
		e, nu, rho = 200e6, 0.32, 7.85
	case "aluminum":
		e, nu, rho = 73.1e6, 0.35, 2.79
	case "concrete-low":
		e, nu, rho = 22.1e6, 0.15, 2.38
	case "concrete-high":
		e, nu, rho = 30.0e6, 0.15, 2.38
	case "wood-douglas-fir":
		e, nu, rho = 13.1e6, 0.29, 0.47
	default:
		chk.Panic("material type %q is unavailable", typ)
	}
	g := e / (2.0 * (1.0 + nu))
	return dbf.Params{
		&dbf.P{N: "E", V: e},
		&dbf.P{N: "G", V: g},
		&dbf.P{N: "nu", V: nu},
		&dbf.P{N: "rho", V: rho},
	}
}
