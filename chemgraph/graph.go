/*
 * graph.go, part of gochemfiles.
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

//Package chemgraph offers a Gonum graph view of a topology, where atoms are nodes
//and bonds are edges, and a few queries built on it.
package chemgraph

import (
	"cmp"
	"fmt"
	"slices"

	chem "github.com/rmera/gochemfiles"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//Atom is a graph node. Its ID is the index of the atom in the topology.
type Atom struct {
	*chem.Atom
	index int
}

func (A *Atom) ID() int64 {
	return int64(A.index)
}

//Index returns the index of the atom in the topology.
func (A *Atom) Index() int {
	return A.index
}

var _ graph.Node = &Atom{}

//NewGraph returns an undirected graph with one node per atom in top,
//and one edge per bond. The graph doesn't follow later changes in top.
func NewGraph(top *chem.Topology) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < top.Len(); i++ {
		g.AddNode(&Atom{Atom: top.Atom(i), index: i})
	}
	for _, b := range top.Bonds() {
		g.SetEdge(g.NewEdge(g.Node(int64(b[0])), g.Node(int64(b[1]))))
	}
	return g
}

func indexes(nodes []graph.Node) []int {
	ret := make([]int, 0, len(nodes))
	for _, n := range nodes {
		ret = append(ret, int(n.ID()))
	}
	return ret
}

//Molecules returns the connected components of the bond graph, that is, the
//separate molecules in the topology. Each molecule is sorted, and the molecules
//are ordered by their smallest index.
func Molecules(top *chem.Topology) [][]int {
	cc := topo.ConnectedComponents(NewGraph(top))
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		m := indexes(c)
		slices.Sort(m)
		ret = append(ret, m)
	}
	slices.SortFunc(ret, func(a, b []int) int { return cmp.Compare(a[0], b[0]) })
	return ret
}

//ShortestPath returns the atoms in the shortest bond path from i to j, both included.
//It returns nil if there is no path, and an error if i or j are not in the topology.
func ShortestPath(top *chem.Topology, i, j int) ([]int, error) {
	if i < 0 || j < 0 || i >= top.Len() || j >= top.Len() {
		return nil, chem.NewError(chem.ErrOutOfBounds, "chemgraph.ShortestPath", "we have %d atoms, but the indexes are %d and %d", top.Len(), i, j)
	}
	g := NewGraph(top)
	pt := path.DijkstraFrom(g.Node(int64(i)), g)
	nodes, _ := pt.To(int64(j))
	if len(nodes) == 0 {
		return nil, nil
	}
	return indexes(nodes), nil
}

//Degrees returns the number of bonds of each atom.
func Degrees(top *chem.Topology) []int {
	ret := make([]int, top.Len())
	for _, b := range top.Bonds() {
		ret[b[0]]++
		ret[b[1]]++
	}
	return ret
}

//Rings returns true if the bond graph has at least one cycle.
func Rings(top *chem.Topology) bool {
	//a forest has exactly natoms-nmolecules edges.
	return len(top.Bonds()) > top.Len()-len(Molecules(top))
}

func describe(m []int) string {
	return fmt.Sprintf("%d atoms (%d-%d)", len(m), m[0], m[len(m)-1])
}

//Summary returns one line per molecule with its size and
//the range of its indexes.
func Summary(top *chem.Topology) []string {
	mols := Molecules(top)
	ret := make([]string, 0, len(mols))
	for k, m := range mols {
		ret = append(ret, fmt.Sprintf("molecule %d: %s", k, describe(m)))
	}
	return ret
}
