/*
 * commands.go, part of gochemfiles.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"
	"os"

	chem "github.com/rmera/gochemfiles"
	"github.com/rmera/gochemfiles/chemgraph"
	"github.com/rmera/gochemfiles/chemplot"
	"github.com/rmera/gochemfiles/pdb"
	"github.com/rmera/gochemfiles/traj/pdbtraj"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//flags shared by all the commands.
type globals struct {
	layout  string
	strict  bool
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	g := new(globals)
	root := &cobra.Command{
		Use:           "pdbtool",
		Short:         "Inspect and convert PDB files",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if g.verbose {
				g.logger, err = zap.NewDevelopment()
			} else {
				g.logger, err = zap.NewProduction()
			}
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if g.logger != nil {
				g.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&g.layout, "layout", "", "YAML file with the field widths to use instead of the PDB ones")
	root.PersistentFlags().BoolVar(&g.strict, "strict", false, "reject records shorter than the full layout")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log ignored and short records")

	info := &cobra.Command{
		Use:   "info FILE",
		Short: "Print a summary of each frame in FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, g, args[0])
		},
	}
	convert := &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Re-write all the frames of IN to OUT. Compression is chosen from the extensions (.gz, .zst)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, g, args[0], args[1])
		},
	}
	var plotname string
	degrees := &cobra.Command{
		Use:   "degrees FILE",
		Short: "Plot how many atoms have each number of bonds, in the first frame of FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDegrees(cmd, g, args[0], plotname)
		},
	}
	degrees.Flags().StringVarP(&plotname, "output", "o", "degrees.png", "name of the plot file")
	root.AddCommand(info, convert, degrees)
	return root
}

//options builds the codec options from the flags.
func (g *globals) options() (*pdb.Options, error) {
	o := pdb.DefaultOptions()
	o.Strict(g.strict)
	o.Logger(g.logger)
	if g.layout == "" {
		return o, nil
	}
	f, err := os.Open(g.layout)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	L, err := pdb.LoadLayout(f)
	if err != nil {
		return nil, err
	}
	o.Layout(L)
	return o, nil
}

//eachFrame calls f with every frame in name.
func eachFrame(g *globals, name string, f func(*chem.Frame) error) (int, error) {
	o, err := g.options()
	if err != nil {
		return 0, err
	}
	R, err := pdbtraj.New(name, o)
	if err != nil {
		return 0, err
	}
	defer R.Close()
	n := 0
	for ; ; n++ {
		F, err := R.Next()
		if err != nil {
			if _, ok := err.(chem.LastFrameError); ok {
				return n, nil
			}
			return n, err
		}
		if err := f(F); err != nil {
			return n, err
		}
	}
}

func runInfo(cmd *cobra.Command, g *globals, name string) error {
	out := cmd.OutOrStdout()
	n, err := eachFrame(g, name, func(F *chem.Frame) error {
		top := F.Topology()
		fmt.Fprintf(out, "frame %d: %d atoms, %d bonds, %d angles, %d dihedrals, %d residues, %d molecules\n",
			F.Step(), F.Len(), len(top.Bonds()), len(top.Angles()), len(top.Dihedrals()), len(top.Residues()), len(chemgraph.Molecules(top)))
		fmt.Fprintf(out, "  cell: %s\n", F.Cell())
		return nil
	})
	if err != nil {
		return err
	}
	g.logger.Info("read file", zap.String("file", name), zap.Int("frames", n))
	return nil
}

func runConvert(cmd *cobra.Command, g *globals, in, out string) error {
	o, err := g.options()
	if err != nil {
		return err
	}
	W, err := pdbtraj.NewWriter(out, false, o)
	if err != nil {
		return err
	}
	n, err := eachFrame(g, in, W.WNext)
	if err2 := W.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d frames written to %s\n", n, out)
	return nil
}

//errStop ends the reading after the first frame.
var errStop = fmt.Errorf("stop")

func runDegrees(cmd *cobra.Command, g *globals, name, plotname string) error {
	var top *chem.Topology
	_, err := eachFrame(g, name, func(F *chem.Frame) error {
		top = F.Topology()
		return errStop
	})
	if err != nil && err != errStop {
		return err
	}
	if top == nil {
		return fmt.Errorf("no frames in %s", name)
	}
	if err := chemplot.SaveDegreePlot(top, name, plotname); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "degree plot saved to %s\n", plotname)
	return nil
}
