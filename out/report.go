// Copyright 2025 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"sort"

	"github.com/Karanja-eng/goframe/fem"

	"github.com/cpmech/gosl/io"
)

// StationTable formats a station series as a table. 2D columns: s, N, Vy, Mz,
// uy; 3D adds Vz, T, My and uz.
func StationTable(sta []fem.SectionState, ndim int) (l string) {
	if ndim == 3 {
		l = io.Sf("%6s%12s%12s%12s%12s%12s%12s%12s%12s\n", "s", "N", "Vy", "Vz", "T", "My", "Mz", "uy", "uz")
		for _, st := range sta {
			l += io.Sf("%6.3f%12.4f%12.4f%12.4f%12.4f%12.4f%12.4f%12.6f%12.6f\n",
				st.S, st.N, st.Vy, st.Vz, st.T, st.My, st.Mz, st.Uy, st.Uz)
		}
		return
	}
	l = io.Sf("%6s%12s%12s%12s%12s\n", "s", "N", "Vy", "Mz", "uy")
	for _, st := range sta {
		l += io.Sf("%6.3f%12.4f%12.4f%12.4f%12.6f\n", st.S, st.N, st.Vy, st.Mz, st.Uy)
	}
	return
}

// Reactions formats the support reactions of one combination, sorted by
// node id
func Reactions(res *fem.Results) (l string) {
	nids := make([]int, 0, len(res.Reactions))
	for nid := range res.Reactions {
		nids = append(nids, nid)
	}
	sort.Ints(nids)
	l = io.Sf("reactions: combination %q\n", res.Combo.Name)
	for _, nid := range nids {
		l += io.Sf("  node %3d :", nid)
		for _, r := range res.Reactions[nid] {
			l += io.Sf(" %12.4f", r)
		}
		l += "\n"
	}
	return
}

// EnvelopeTable formats the per-station extremes of one member envelope
func EnvelopeTable(me *fem.MemberEnvelope) (l string) {
	l = io.Sf("member %d envelope\n", me.Mid)
	l += io.Sf("%6s%12s%12s%12s%12s%12s%12s\n", "s", "Nmin", "Nmax", "Vymin", "Vymax", "Mzmin", "Mzmax")
	for i, s := range me.S {
		l += io.Sf("%6.3f%12.4f%12.4f%12.4f%12.4f%12.4f%12.4f\n",
			s, me.Min[i].N, me.Max[i].N, me.Min[i].Vy, me.Max[i].Vy, me.Min[i].Mz, me.Max[i].Mz)
	}
	return
}
