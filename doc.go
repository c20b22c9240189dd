/*
 * doc.go, part of gochemfiles.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

/*Package chem is the main package of the gochemfiles library. It provides the
structural description of a molecular system: atoms, the bonds between them,
the angles and dihedrals derived from those bonds, and the residues the atoms
are grouped in. A Frame adds one position per atom and a unit cell.


	**Capabilities**

    Topology: atoms addressed by their index, bonds, residues.
        Angles and dihedrals are computed from the bonds when asked for,
        and cached until the bonds change.
        Removing an atom renumbers every bond and residue that refers to
        a higher index.
        A residue can't share atoms with another residue.

    Frame: a topology plus coordinates, a unit cell and a step number.
        Coordinates can be exchanged as [3]float64 or as a v3.Matrix.

    Errors: every error returned by the library can be tested with errors.Is
        against ErrOutOfBounds, ErrResidueConflict or ErrFormat, and decorated
        with the names of the functions it went through.

The PDB codec lives in the pdb package, and reading/writing PDB files (optionally
compressed) in traj/pdbtraj. chemgraph offers a gonum graph view of a topology.
*/
package chem
