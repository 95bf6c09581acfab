// Copyright 2025 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out renders analysis results for the terminal: station tables,
// support reactions and ASCII force/deflection diagrams
package out

import (
	"github.com/Karanja-eng/goframe/fem"

	"github.com/cpmech/gosl/io"
	"github.com/guptarohit/asciigraph"
)

// diagram plots one quantity series along the member stations
func diagram(vals []float64, caption string) string {
	return asciigraph.Plot(vals,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	) + "\n"
}

// DiagShear returns the ASCII shear force diagram of a station series
func DiagShear(sta []fem.SectionState, label string) string {
	vals := make([]float64, len(sta))
	for i, st := range sta {
		vals[i] = st.Vy
	}
	return diagram(vals, io.Sf("shear force Vy: %s", label))
}

// DiagMoment returns the ASCII bending moment diagram of a station series
func DiagMoment(sta []fem.SectionState, label string) string {
	vals := make([]float64, len(sta))
	for i, st := range sta {
		vals[i] = st.Mz
	}
	return diagram(vals, io.Sf("bending moment Mz: %s", label))
}

// DiagDeflection returns the ASCII deflection diagram of a station series
func DiagDeflection(sta []fem.SectionState, label string) string {
	vals := make([]float64, len(sta))
	for i, st := range sta {
		vals[i] = st.Uy
	}
	return diagram(vals, io.Sf("deflection uy: %s", label))
}

// DiagEnvelopeMoment returns the ASCII diagram of the moment envelope
// (max and min) of one member
func DiagEnvelopeMoment(me *fem.MemberEnvelope, label string) string {
	mx := make([]float64, len(me.S))
	mn := make([]float64, len(me.S))
	for i := range me.S {
		mx[i] = me.Max[i].Mz
		mn[i] = me.Min[i].Mz
	}
	return asciigraph.PlotMany([][]float64{mn, mx},
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption(io.Sf("moment envelope Mz: %s", label)),
	) + "\n"
}
