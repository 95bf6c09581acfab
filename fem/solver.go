// Copyright 2025 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/Karanja-eng/goframe/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// InstabilityError indicates that the reduced stiffness system is singular or
// numerically indistinguishable from singular: a free rigid-body mode
// (mechanism) or insufficient supports. It is never downgraded to zero or NaN
// results.
type InstabilityError struct {
	Combo  string // affected combination; empty when the model itself is unstable
	Reason string
}

// Error returns the error message
func (o *InstabilityError) Error() string {
	if o.Combo == "" {
		return io.Sf("structure is unstable: %s", o.Reason)
	}
	return io.Sf("combination %q: structure is unstable: %s", o.Combo, o.Reason)
}

// Results holds the outcome of one combination's solve. Displacements are
// owned here, keyed by combination, never stored on the nodes; concurrent
// combination runs therefore share no mutable state.
type Results struct {
	Combo     *inp.Combo
	U         []float64         // full global displacement vector; zeros at fixed DOFs
	EndForces map[int][]float64 // member id => recovered local end-force vector
	Reactions map[int][]float64 // node id => per-DOF reactions; supported nodes only
}

// Analysis runs the direct stiffness method on a model: the stiffness matrix
// is assembled and factorised once and every load combination re-uses the
// factorisation with its own load vector
type Analysis struct {

	// data
	Dom *Domain

	// linear solver
	Kb     *la.Triplet
	Lis    la.LinSol
	facOK  bool
	facErr error

	// results per combination
	mu       sync.Mutex
	results  map[string]*Results
	failures map[string]error

	// abort flag for RunAll
	aborted int32
}

// NewAnalysis builds the domain for a model. The model is checked first if
// needed; invalid input fails here with a ModelError.
func NewAnalysis(mdl *inp.Model) (o *Analysis, err error) {
	if !mdl.Checked() {
		if err = mdl.Check(); err != nil {
			return
		}
	}
	o = new(Analysis)
	o.Dom, err = NewDomain(mdl)
	if err != nil {
		return nil, err
	}
	o.Kb = new(la.Triplet)
	o.Lis = la.GetSolver("umfpack")
	o.results = make(map[string]*Results)
	o.failures = make(map[string]error)
	return
}

// Clean releases linear solver resources
func (o *Analysis) Clean() {
	o.Lis.Free()
}

// factorise assembles and factorises the reduced stiffness matrix once.
// Callers must hold o.mu.
func (o *Analysis) factorise() error {
	if o.facOK || o.facErr != nil {
		return o.facErr
	}
	supported := false
	for _, nod := range o.Dom.Nodes {
		if nod.HasSupport() {
			supported = true
			break
		}
	}
	if !supported {
		o.facErr = &InstabilityError{Reason: "model has no supports"}
		return o.facErr
	}
	if o.Dom.Nfree > 0 {
		o.Kb.Init(o.Dom.Nfree, o.Dom.Nfree, o.Dom.NnzKb)
		o.Kb.Start()
		o.Dom.AssembleReducedKb(o.Kb)
		if err := o.Lis.InitR(o.Kb, false, false, false); err != nil {
			o.facErr = chk.Err("cannot initialise linear solver:\n%v", err)
			return o.facErr
		}
		if err := o.Lis.Fact(); err != nil {
			o.facErr = &InstabilityError{Reason: io.Sf("factorisation failed: %v", err)}
			return o.facErr
		}
	}
	o.facOK = true
	return nil
}

// assembleFb builds the full global load vector for one combination:
// equivalent nodal forces from member loads plus directly applied nodal
// loads, all scaled by the combination's category factors
func (o *Analysis) assembleFb(combo *inp.Combo) (fb []float64) {
	fb = make([]float64, o.Dom.Ny)
	for _, mbr := range o.Dom.Members {
		f0 := mbr.EquivNodalForces(combo.Factors)
		mbr.AddToFb(fb, f0)
	}
	for _, l := range o.Dom.Mdl.Loads {
		if l.Type != "nodal" || l.Off {
			continue
		}
		fac := combo.Factors[l.Cat]
		if fac == 0 {
			continue
		}
		nod := o.Dom.Nid2node[l.Node]
		for i, dof := range nod.Dofs {
			fb[dof.Eq] += fac * l.F[i]
		}
	}
	return
}

// Run solves one combination and stores its results. An InstabilityError
// affects this combination only; other combinations can still be run.
func (o *Analysis) Run(comboName string) (res *Results, err error) {

	// combination
	combo, found := o.Dom.Mdl.Combomap[comboName]
	if !found {
		return nil, chk.Err("unknown combination %q", comboName)
	}

	// factorise once
	o.mu.Lock()
	err = o.factorise()
	o.mu.Unlock()
	if err != nil {
		if ie, ok := err.(*InstabilityError); ok {
			err = &InstabilityError{Combo: comboName, Reason: ie.Reason}
		}
		o.setFailure(comboName, err)
		return nil, err
	}

	// assemble load vector and reduce
	fb := o.assembleFb(combo)
	fr := make([]float64, o.Dom.Nfree)
	for i, eq := range o.Dom.Red2eq {
		fr[i] = fb[eq]
	}

	// solve for free DOF displacements. The backend solve is not reentrant,
	// hence the lock; the factorisation itself is shared read-only.
	wr := make([]float64, o.Dom.Nfree)
	if o.Dom.Nfree > 0 {
		o.mu.Lock()
		serr := o.Lis.SolveR(wr, fr, false)
		o.mu.Unlock()
		if serr != nil {
			err = &InstabilityError{Combo: comboName, Reason: io.Sf("solve failed: %v", serr)}
			o.setFailure(comboName, err)
			return nil, err
		}
	}

	// full displacement vector with zeros reinserted at fixed DOFs
	U := make([]float64, o.Dom.Ny)
	for i, eq := range o.Dom.Red2eq {
		if math.IsNaN(wr[i]) || math.IsInf(wr[i], 0) {
			err = &InstabilityError{Combo: comboName, Reason: "solution contains non-finite displacements"}
			o.setFailure(comboName, err)
			return nil, err
		}
		U[eq] = wr[i]
	}

	// recover member end forces and accumulate reactions
	res = &Results{
		Combo:     combo,
		U:         U,
		EndForces: make(map[int][]float64),
		Reactions: make(map[int][]float64),
	}
	for _, mbr := range o.Dom.Members {
		f0 := mbr.EquivNodalForces(combo.Factors)
		fl := mbr.RecoverEndForces(U, f0)
		res.EndForces[mbr.Id()] = fl
		fg := mbr.GlobalEndForces(fl)
		for i, eq := range mbr.Umap {
			if o.Dom.Eq2red[eq] >= 0 {
				continue
			}
			nod, idx := o.Dom.eq2node(eq)
			r, ok := res.Reactions[nod.Vert.Id]
			if !ok {
				r = make([]float64, o.Dom.Ndof)
				res.Reactions[nod.Vert.Id] = r
			}
			r[idx] += fg[i]
		}
	}

	// subtract nodal loads applied straight onto supports
	for _, l := range o.Dom.Mdl.Loads {
		if l.Type != "nodal" || l.Off {
			continue
		}
		fac := combo.Factors[l.Cat]
		if fac == 0 {
			continue
		}
		if r, ok := res.Reactions[l.Node]; ok {
			nod := o.Dom.Nid2node[l.Node]
			for i, dof := range nod.Dofs {
				if dof.Fixed {
					r[i] -= fac * l.F[i]
				}
			}
		}
	}

	// store
	o.mu.Lock()
	o.results[comboName] = res
	delete(o.failures, comboName)
	o.mu.Unlock()
	return
}

// setFailure records a per-combination error
func (o *Analysis) setFailure(comboName string, err error) {
	o.mu.Lock()
	o.failures[comboName] = err
	delete(o.results, comboName)
	o.mu.Unlock()
}

// ResultsOf returns the stored results of a combination, or the error that
// failed it. A nil Results with nil error means the combination was not run.
func (o *Analysis) ResultsOf(comboName string) (*Results, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err, found := o.failures[comboName]; found {
		return nil, err
	}
	return o.results[comboName], nil
}

// Abort requests a running RunAll to stop between combinations
func (o *Analysis) Abort() {
	atomic.StoreInt32(&o.aborted, 1)
}

// RunAll solves every combination of the model. With nworkers > 1,
// combinations are distributed over goroutines; the model and the
// factorisation are shared read-only and each combination owns its results.
// One combination's InstabilityError does not stop the others; the summary
// error reports how many failed.
func (o *Analysis) RunAll(nworkers int) (err error) {

	// reset abort flag
	atomic.StoreInt32(&o.aborted, 0)

	// factorise first so workers race only on SolveR
	o.mu.Lock()
	ferr := o.factorise()
	o.mu.Unlock()

	// distribute combinations
	if nworkers < 1 {
		nworkers = 1
	}
	combos := make(chan string, len(o.Dom.Mdl.Combos))
	for _, c := range o.Dom.Mdl.Combos {
		combos <- c.Name
	}
	close(combos)
	var wg sync.WaitGroup
	for i := 0; i < nworkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range combos {
				if atomic.LoadInt32(&o.aborted) != 0 {
					return
				}
				o.Run(name)
			}
		}()
	}
	wg.Wait()

	// summary
	if atomic.LoadInt32(&o.aborted) != 0 {
		return chk.Err("analysis aborted")
	}
	o.mu.Lock()
	nfail := len(o.failures)
	o.mu.Unlock()
	if ferr != nil || nfail > 0 {
		return chk.Err("%d combination(s) failed; see ResultsOf for details", nfail)
	}
	return
}
