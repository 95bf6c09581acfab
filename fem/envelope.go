// Copyright 2025 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// MemberEnvelope holds per-station maxima and minima of each force and
// deflection quantity of one member, across load combinations. All
// combinations are sampled on the same station grid so the element-wise
// reduction is well-defined.
type MemberEnvelope struct {
	Mid int            // member id
	S   []float64      // station ratios
	Max []SectionState // per-station maxima
	Min []SectionState // per-station minima
}

// Envelope holds the per-member force/deflection envelopes of a model
type Envelope struct {
	Nsta    int
	Members map[int]*MemberEnvelope
	Skipped []string // combinations excluded due to solve failures
}

// update folds one combination's states into the running maxima/minima
func (o *MemberEnvelope) update(sta []SectionState) {
	for i, st := range sta {
		mx, mn := &o.Max[i], &o.Min[i]
		mx.N = utl.Max(mx.N, st.N)
		mx.Vy = utl.Max(mx.Vy, st.Vy)
		mx.Vz = utl.Max(mx.Vz, st.Vz)
		mx.T = utl.Max(mx.T, st.T)
		mx.My = utl.Max(mx.My, st.My)
		mx.Mz = utl.Max(mx.Mz, st.Mz)
		mx.Ux = utl.Max(mx.Ux, st.Ux)
		mx.Uy = utl.Max(mx.Uy, st.Uy)
		mx.Uz = utl.Max(mx.Uz, st.Uz)
		mx.Rx = utl.Max(mx.Rx, st.Rx)
		mn.N = utl.Min(mn.N, st.N)
		mn.Vy = utl.Min(mn.Vy, st.Vy)
		mn.Vz = utl.Min(mn.Vz, st.Vz)
		mn.T = utl.Min(mn.T, st.T)
		mn.My = utl.Min(mn.My, st.My)
		mn.Mz = utl.Min(mn.Mz, st.Mz)
		mn.Ux = utl.Min(mn.Ux, st.Ux)
		mn.Uy = utl.Min(mn.Uy, st.Uy)
		mn.Uz = utl.Min(mn.Uz, st.Uz)
		mn.Rx = utl.Min(mn.Rx, st.Rx)
	}
}

// NewEnvelope samples every member under every combination and reduces the
// station series element-wise to maxima/minima. Combinations are solved on
// demand, re-using the shared factorisation; a combination failing with
// InstabilityError is excluded and listed in Skipped, never contributing
// zeros.
func NewEnvelope(a *Analysis, nsta int) (o *Envelope, err error) {
	if nsta < 2 {
		return nil, chk.Err("need at least 2 stations. nsta=%d is invalid", nsta)
	}
	o = &Envelope{Nsta: nsta, Members: make(map[int]*MemberEnvelope)}
	for _, combo := range a.Dom.Mdl.Combos {
		res, ferr := a.ResultsOf(combo.Name)
		if res == nil && ferr == nil {
			res, ferr = a.Run(combo.Name)
		}
		if ferr != nil {
			o.Skipped = append(o.Skipped, combo.Name)
			continue
		}
		for _, mbr := range a.Dom.Members {
			sta := mbr.Sample(res, nsta)
			me, found := o.Members[mbr.Id()]
			if !found {
				me = &MemberEnvelope{
					Mid: mbr.Id(),
					S:   utl.LinSpace(0, 1, nsta),
					Max: make([]SectionState, nsta),
					Min: make([]SectionState, nsta),
				}
				copy(me.Max, sta)
				copy(me.Min, sta)
				o.Members[mbr.Id()] = me
				continue
			}
			me.update(sta)
		}
	}
	if len(o.Members) == 0 && len(o.Skipped) > 0 {
		return nil, chk.Err("all %d combination(s) failed; no envelope available", len(o.Skipped))
	}
	return
}

// ReduceSupportMoments applies the simplified moment redistribution: hogging
// (negative) bending moments at the member end stations are scaled down by
// frac, clamped to the 30%% allowed by design codes. Span moments are NOT
// increased in exchange, so equilibrium is not re-established; the output is
// a best-effort post-filter, not a verified structural result.
func (o *Envelope) ReduceSupportMoments(frac float64) {
	if frac < 0 {
		frac = 0
	}
	if frac > 0.3 {
		frac = 0.3
	}
	keep := 1.0 - frac
	for _, me := range o.Members {
		for _, i := range []int{0, len(me.S) - 1} {
			if me.Min[i].Mz < 0 {
				me.Min[i].Mz *= keep
			}
			if me.Max[i].Mz < 0 {
				me.Max[i].Mz *= keep
			}
			if me.Min[i].My < 0 {
				me.Min[i].My *= keep
			}
			if me.Max[i].My < 0 {
				me.Max[i].My *= keep
			}
		}
	}
}
