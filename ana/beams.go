// Copyright 2025 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

// CantileverEndLoad holds the closed-form solution of a cantilever, fixed at
// x=0 and free at x=L, with a transverse point load P applied at the tip.
// Sign convention: P positive downward; deflections positive downward;
// moments sagging positive (the support moment is hogging, thus negative).
type CantileverEndLoad struct {
	L  float64 // length
	EI float64 // bending stiffness
	P  float64 // tip load
}

// Shear returns the shear force at x
func (o CantileverEndLoad) Shear(x float64) float64 { return o.P }

// Moment returns the bending moment at x
func (o CantileverEndLoad) Moment(x float64) float64 { return -o.P * (o.L - x) }

// Deflection returns the deflection at x
func (o CantileverEndLoad) Deflection(x float64) float64 {
	return o.P * x * x * (3.0*o.L - x) / (6.0 * o.EI)
}

// TipDeflection returns the deflection at the free end: P·L³/(3·E·I)
func (o CantileverEndLoad) TipDeflection() float64 {
	return o.P * o.L * o.L * o.L / (3.0 * o.EI)
}

// SimpleBeamUDL holds the closed-form solution of a simply supported beam of
// span L under a uniformly distributed load w (positive downward).
type SimpleBeamUDL struct {
	L  float64 // span
	EI float64 // bending stiffness
	W  float64 // distributed load intensity
}

// Shear returns the shear force at x: w·L/2 at the left support
func (o SimpleBeamUDL) Shear(x float64) float64 {
	return o.W*o.L/2.0 - o.W*x
}

// Moment returns the bending moment at x; max w·L²/8 at midspan
func (o SimpleBeamUDL) Moment(x float64) float64 {
	return o.W * x * (o.L - x) / 2.0
}

// MaxMoment returns the midspan moment: w·L²/8
func (o SimpleBeamUDL) MaxMoment() float64 { return o.W * o.L * o.L / 8.0 }

// EndShear returns the support shear: w·L/2
func (o SimpleBeamUDL) EndShear() float64 { return o.W * o.L / 2.0 }

// Deflection returns the deflection at x (positive downward)
func (o SimpleBeamUDL) Deflection(x float64) float64 {
	l := o.L
	return o.W * x * (l*l*l - 2.0*l*x*x + x*x*x) / (24.0 * o.EI)
}

// MidDeflection returns the midspan deflection: 5·w·L⁴/(384·E·I)
func (o SimpleBeamUDL) MidDeflection() float64 {
	l := o.L
	return 5.0 * o.W * l * l * l * l / (384.0 * o.EI)
}

// SimpleBeamPointLoad holds the closed-form solution of a simply supported
// beam with a point load P (positive downward) at distance a from the left
// support
type SimpleBeamPointLoad struct {
	L  float64
	EI float64
	P  float64
	A  float64
}

// Moment returns the bending moment at x
func (o SimpleBeamPointLoad) Moment(x float64) float64 {
	b := o.L - o.A
	if x <= o.A {
		return o.P * b * x / o.L
	}
	return o.P * o.A * (o.L - x) / o.L
}

// MaxMoment returns the moment under the load: P·a·b/L
func (o SimpleBeamPointLoad) MaxMoment() float64 {
	return o.P * o.A * (o.L - o.A) / o.L
}
