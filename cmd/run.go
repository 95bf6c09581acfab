// Copyright 2025 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"sort"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/Karanja-eng/goframe/fem"
	"github.com/Karanja-eng/goframe/inp"
	"github.com/Karanja-eng/goframe/out"
)

var (
	runNsta    int
	runWorkers int
	runRedist  float64
	runEnv     bool
	runDiag    bool
)

var runCmd = &cobra.Command{
	Use:   "run model.json",
	Short: "Analyse a frame model",
	Long: `Reads a frame model from a JSON file, solves every load combination
and prints reactions, member end forces and station tables. With
--envelope, the per-station min/max of all combinations is printed
instead of per-combination results.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		// read and check the model
		mdl, err := inp.ReadModel(args[0])
		if err != nil {
			return err
		}
		for _, w := range mdl.Warnings {
			io.Pfyel("warning: %s\n", w)
		}

		// solve all combinations
		a, err := fem.NewAnalysis(mdl)
		if err != nil {
			return err
		}
		defer a.Clean()
		if err := a.RunAll(runWorkers); err != nil {
			io.Pfyel("%v\n", err)
		}

		// envelope report
		if runEnv {
			env, err := fem.NewEnvelope(a, runNsta)
			if err != nil {
				return err
			}
			if runRedist > 0 {
				env.ReduceSupportMoments(runRedist)
			}
			for _, name := range env.Skipped {
				io.Pfyel("combination %q skipped\n", name)
			}
			mids := make([]int, 0, len(env.Members))
			for mid := range env.Members {
				mids = append(mids, mid)
			}
			sort.Ints(mids)
			for _, mid := range mids {
				me := env.Members[mid]
				io.Pforan("member %d\n", mid)
				io.Pf("%s", out.EnvelopeTable(me))
				if runDiag {
					io.Pf("%s\n", out.DiagEnvelopeMoment(me, io.Sf("member %d", mid)))
				}
			}
			return nil
		}

		// per-combination report
		for _, combo := range mdl.Combos {
			res, err := a.ResultsOf(combo.Name)
			if err != nil {
				io.Pfyel("combination %q: %v\n", combo.Name, err)
				continue
			}
			io.Pforan("combination %q\n", combo.Name)
			io.Pf("%s", out.Reactions(res))
			for _, mbr := range a.Dom.Members {
				sta := mbr.Sample(res, runNsta)
				io.Pf("member %d\n", mbr.Id())
				io.Pf("%s", out.StationTable(sta, a.Dom.Ndim))
				if runDiag {
					io.Pf("%s\n", out.DiagMoment(sta, io.Sf("member %d", mbr.Id())))
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVar(&runNsta, "nsta", 11, "number of sampling stations per member")
	runCmd.Flags().IntVar(&runWorkers, "workers", 4, "number of concurrent combination workers")
	runCmd.Flags().Float64Var(&runRedist, "redistribute", 0, "support moment reduction fraction (max 0.3)")
	runCmd.Flags().BoolVar(&runEnv, "envelope", false, "print force envelopes instead of per-combination results")
	runCmd.Flags().BoolVar(&runDiag, "diagrams", false, "print ASCII bending moment diagrams")
}
