/*
 * pdbtraj.go, part of gochemfiles.
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

//Package pdbtraj reads and writes multi-frame PDB files. Files with names ending in
//.gz are transparently compressed with gzip, and those ending in .zst with zstd.
package pdbtraj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	chem "github.com/rmera/gochemfiles"
	"github.com/rmera/gochemfiles/pdb"
)

//compression returns the compression used for a file, from its name.
func compression(name string) string {
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".gz"):
		return "gz"
	case strings.HasSuffix(strings.ToLower(name), ".zst"):
		return "zst"
	}
	return ""
}

//zstd.Decoder doesn't implement io.ReadCloser, as its Close
//method doesn't return anything.
type zstdrc struct {
	*zstd.Decoder
}

func (z zstdrc) Close() error {
	z.Decoder.Close()
	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (n nopWriteCloser) Close() error { return nil }

//Read!

//PDBR reads frames from a PDB file.
type PDBR struct {
	f        *os.File
	dec      io.ReadCloser
	h        *bufio.Reader
	codec    *pdb.Codec
	filename string
	natoms   int
	next     int //index of the next frame to be read
	readable bool
}

//New opens the PDB file name for reading, with the given options (or the default ones
//if o is nil).
func New(name string, o *pdb.Options) (*PDBR, error) {
	codec, err := pdb.New(o)
	if err != nil {
		return nil, newError("can't build the codec", name, "New", err)
	}
	P := &PDBR{codec: codec, filename: name, natoms: -1}
	if err := P.open(); err != nil {
		return nil, errDecorate(err, "New")
	}
	return P, nil
}

func (P *PDBR) open() error {
	var err error
	P.f, err = os.Open(P.filename)
	if err != nil {
		return newError(UnableToOpen, P.filename, "open", err)
	}
	intermediate := bufio.NewReader(P.f)
	switch compression(P.filename) {
	case "gz":
		P.dec, err = gzip.NewReader(intermediate)
	case "zst":
		var z *zstd.Decoder
		z, err = zstd.NewReader(intermediate)
		if err == nil {
			P.dec = zstdrc{z}
		}
	default:
		P.dec = io.NopCloser(intermediate)
	}
	if err != nil {
		P.f.Close()
		return newError("can't decompress the file", P.filename, "open", err)
	}
	P.h = bufio.NewReader(P.dec)
	P.next = 0
	P.readable = true
	return nil
}

//Readable returns true if the handle is readable (if it is possible to call Next on it)
func (P *PDBR) Readable() bool {
	return P.readable
}

//Len returns the number of atoms in the last frame read, or -1 if no frame
//has been read.
func (P *PDBR) Len() int {
	return P.natoms
}

//group reads the records up to and including the next END or ENDMDL record.
//Groups without ATOM or HETATM records (such as an END after an ENDMDL) are skipped.
//It returns io.EOF if the file ends before finding any atom.
func (P *PDBR) group() ([]string, error) {
	var recs []string
	atoms := false
	for {
		line, err := P.h.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if line != "" {
			line = strings.TrimRight(line, "\r\n")
			recs = append(recs, line)
			switch name := pdb.RecordName(line); {
			case name == "ATOM" || name == "HETATM":
				atoms = true
			case pdb.IsTerminator(line) && atoms:
				return recs, nil
			case pdb.IsTerminator(line):
				recs = recs[:0]
			}
		}
		if err == io.EOF {
			if atoms {
				return recs, nil
			}
			return nil, io.EOF
		}
	}
}

//Next returns the next frame in the file. At the end of the file
//it returns an error that implements chem.LastFrameError.
func (P *PDBR) Next() (*chem.Frame, error) {
	if !P.readable {
		return nil, newError(TrajUnIniRead, P.filename, "Next", nil)
	}
	recs, err := P.group()
	if err == io.EOF {
		P.Close()
		return nil, newlastFrameError(P.filename, "Next")
	}
	if err != nil {
		return nil, newError(ReadError, P.filename, "Next", err)
	}
	F, err := P.codec.Decode(recs)
	if err != nil {
		return nil, newError(fmt.Sprintf("%s %d", ReadError, P.next), P.filename, "Next", err)
	}
	F.SetStep(P.next)
	P.next++
	P.natoms = F.Len()
	return F, nil
}

//ReadStep returns the frame with index step, counting from 0. Going back
//to a frame already read re-opens the file.
func (P *PDBR) ReadStep(step int) (*chem.Frame, error) {
	if step < 0 {
		return nil, newError(fmt.Sprintf("invalid step %d", step), P.filename, "ReadStep", nil)
	}
	if step < P.next || !P.readable {
		P.Close()
		if err := P.open(); err != nil {
			return nil, errDecorate(err, "ReadStep")
		}
	}
	for P.next < step {
		_, err := P.group()
		if err == io.EOF {
			P.Close()
			return nil, newlastFrameError(P.filename, "ReadStep")
		}
		if err != nil {
			return nil, newError(ReadError, P.filename, "ReadStep", err)
		}
		P.next++
	}
	F, err := P.Next()
	return F, errDecorate(err, "ReadStep")
}

//Close closes the file, and marks the handle as unreadable.
func (P *PDBR) Close() {
	if !P.readable {
		return
	}
	P.dec.Close()
	P.f.Close()
	P.readable = false
}

//Write!

//PDBW writes frames to a PDB file.
type PDBW struct {
	f         *os.File
	h         io.WriteCloser
	buf       *bufio.Writer
	codec     *pdb.Codec
	filename  string
	frames    int
	writeable bool
}

//NewWriter opens name for writing frames, with the given options (or the default ones if
//o is nil). If appendTo is true, the frames are added at the end of an existing file.
func NewWriter(name string, appendTo bool, o *pdb.Options) (*PDBW, error) {
	codec, err := pdb.New(o)
	if err != nil {
		return nil, newError("can't build the codec", name, "NewWriter", err)
	}
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if appendTo {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	P := &PDBW{codec: codec, filename: name}
	P.f, err = os.OpenFile(name, flags, 0644)
	if err != nil {
		return nil, newError(UnableToOpen, name, "NewWriter", err)
	}
	switch compression(name) {
	case "gz":
		P.h = gzip.NewWriter(P.f)
	case "zst":
		P.h, err = zstd.NewWriter(P.f)
	default:
		P.h = nopWriteCloser{P.f}
	}
	if err != nil {
		P.f.Close()
		return nil, newError("can't compress the file", name, "NewWriter", err)
	}
	P.buf = bufio.NewWriter(P.h)
	P.writeable = true
	return P, nil
}

//WNext writes a frame. If the frame can't be encoded, nothing is written.
func (P *PDBW) WNext(F *chem.Frame) error {
	if !P.writeable {
		return newError(TrajUnIniWrite, P.filename, "WNext", nil)
	}
	if F == nil {
		return newError(NilFrame, P.filename, "WNext", nil)
	}
	if err := P.codec.Write(P.buf, F); err != nil {
		return newError(fmt.Sprintf("can't write frame %d", P.frames), P.filename, "WNext", err)
	}
	P.frames++
	return nil
}

//Len returns the number of frames written so far.
func (P *PDBW) Len() int {
	return P.frames
}

//Close flushes everything to the file and closes it.
func (P *PDBW) Close() error {
	if P == nil || !P.writeable {
		return nil
	}
	P.writeable = false
	err := P.buf.Flush()
	if err2 := P.h.Close(); err == nil {
		err = err2
	}
	if err2 := P.f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return newError("can't close the file", P.filename, "Close", err)
	}
	return nil
}
