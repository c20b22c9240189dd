/*
 * element.go, part of gochemfiles.
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

package pdb

import "strings"

//two-letter atom names that are elements, not e.g. an alpha carbon.
var twoLetter = map[string]string{
	"CU": "Cu",
	"CO": "Co",
	"CL": "Cl",
	"NA": "Na",
	"SE": "Se",
	"ZN": "Zn",
	"FE": "Fe",
	"MG": "Mg",
	"MN": "Mn",
	"BR": "Br",
}

//elementFromName tries to guess the element from a PDB atom name, for records
//without element column. It is mostly based on AMBER names, and only
//deals with common bio-elements. It returns an empty string if it can't guess.
func elementFromName(name string) string {
	name = strings.ToUpper(strings.TrimLeft(name, "0123456789"))
	if name == "" {
		return ""
	}
	if s, ok := twoLetter[name]; ok {
		return s
	}
	if len(name) == 4 || name[0] == 'H' { //only Hs have 4-char names in AMBER.
		return "H"
	}
	switch name[0] {
	case 'C', 'N', 'O', 'P', 'S':
		return name[:1]
	}
	return ""
}
