// Copyright 2025 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goframe",
	Short: "Frame Analysis Engine",
	Long: `goframe - linear elastic analysis of 2D and 3D frame structures

Given a model of joints, prismatic members, supports, loads and load
combinations, goframe computes joint displacements, member end forces,
support reactions, and the internal force and deflection diagrams along
every member, together with force envelopes across combinations.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
