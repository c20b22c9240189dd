/*
 * degrees.go, part of gochemfiles
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//Package chemplot plots properties of a topology.
package chemplot

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"

	chem "github.com/rmera/gochemfiles"
	"github.com/rmera/gochemfiles/chemgraph"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicDegreePlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Bonds"
	p.Y.Label.Text = "Atoms"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())
	return p
}

//DegreeCounts returns, for each number of bonds from 0 to the
//largest in top, how many atoms have that many bonds.
func DegreeCounts(top *chem.Topology) []float64 {
	degrees := chemgraph.Degrees(top)
	maxd := 0
	for _, d := range degrees {
		maxd = max(maxd, d)
	}
	counts := make([]float64, maxd+1)
	for _, d := range degrees {
		counts[d]++
	}
	return counts
}

//DegreePlot returns a bar plot of the number of atoms with each number
//of bonds in top. The mean number of bonds and its standard deviation
//are added to the title.
func DegreePlot(top *chem.Topology, title string) (*plot.Plot, error) {
	if top.Len() == 0 {
		return nil, fmt.Errorf("chemplot: can't plot the bonds of an empty topology")
	}
	degrees := chemgraph.Degrees(top)
	x := make([]float64, len(degrees))
	for i, d := range degrees {
		x[i] = float64(d)
	}
	mean, sd := stat.MeanStdDev(x, nil)
	if len(x) < 2 {
		sd = 0
	}
	p := basicDegreePlot(fmt.Sprintf("%s (%.2f +/- %.2f bonds)", title, mean, sd))
	counts := DegreeCounts(top)
	bars, err := plotter.NewBarChart(plotter.Values(counts), vg.Points(20))
	if err != nil {
		return nil, err
	}
	bars.Color = color.RGBA{R: 30, G: 90, B: 200, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	names := make([]string, len(counts))
	for i := range names {
		names[i] = strconv.Itoa(i)
	}
	p.NominalX(names...)
	return p, nil
}

//SaveDegreePlot saves the degree plot of top to filename. The format is
//taken from the extension (png, svg, pdf, etc).
func SaveDegreePlot(top *chem.Topology, title, filename string) error {
	p, err := DegreePlot(top, title)
	if err != nil {
		return err
	}
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	return p.Save(5*vg.Inch, 4*vg.Inch, filename)
}
