// Package otp loads the OTP source tables (genop.tab, bif.tab, atoms.tab)
// into one in-memory model for code generation.
//
// This package contains:
//   - Release: per-release constants and line-layout selection
//   - AtomTable: interned atoms with stable numeric ids
//   - Genop and Bif loaders
//   - Tables: the aggregated model
package otp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors surfaced by the table loaders. A parse failure means the selected
// Release does not match the input files, so the whole load aborts.
var (
	ErrMalformedBifLine = errors.New("otp: malformed bif line")
	ErrInvalidArity     = errors.New("otp: invalid arity")
)

// bifLayout selects how one bif.tab line is decoded.
type bifLayout int

const (
	// layoutAtomArity: "atom arity [cname]" (OTP 19 and earlier)
	layoutAtomArity bifLayout = iota
	// layoutModFunc: "kind module:function/arity [cname]" (OTP 20+)
	layoutModFunc
)

// Release describes the parsing profile for one OTP source release:
// the opcode range, the table file locations, and the bif.tab layout.
type Release struct {
	Name      string
	MinOpcode int
	MaxOpcode int
	AtomsTab  string
	BifTab    string
	GenopTab  string

	layout bifLayout
}

// OTP19 returns the release profile for OTP 19 tables.
func OTP19() Release {
	return Release{
		Name:      "otp19",
		MinOpcode: 1,
		MaxOpcode: 158,
		AtomsTab:  "atoms.tab",
		BifTab:    "otp19/bif.tab",
		GenopTab:  "otp19/genop.tab",
		layout:    layoutAtomArity,
	}
}

// OTP20 returns the release profile for OTP 20 tables.
func OTP20() Release {
	return Release{
		Name:      "otp20",
		MinOpcode: 1,
		MaxOpcode: 159,
		AtomsTab:  "atoms.tab",
		BifTab:    "otp20/bif.tab",
		GenopTab:  "otp20/genop.tab",
		layout:    layoutModFunc,
	}
}

// ReleaseByName resolves a release name like "otp19" or "otp20".
func ReleaseByName(name string) (Release, bool) {
	switch name {
	case "otp19":
		return OTP19(), true
	case "otp20":
		return OTP20(), true
	}
	return Release{}, false
}

// ParseBifLine decodes one bif.tab line according to this release's layout.
func (r Release) ParseBifLine(line string) (Bif, error) {
	switch r.layout {
	case layoutModFunc:
		return parseBifModFunc(line)
	default:
		return parseBifAtomArity(line)
	}
}

// parseBifAtomArity decodes "atom arity [cname]".
func parseBifAtomArity(line string) (Bif, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Bif{}, fmt.Errorf("%w: %q", ErrMalformedBifLine, line)
	}

	arity, err := strconv.Atoi(fields[1])
	if err != nil {
		return Bif{}, fmt.Errorf("%w: %q in %q", ErrInvalidArity, fields[1], line)
	}

	cname := fields[0]
	if len(fields) >= 3 {
		cname = fields[2]
	}

	return Bif{
		Atom:  fields[0],
		Arity: arity,
		CName: cname,
	}, nil
}

// parseBifModFunc decodes "kind module:function/arity [cname]". The second
// token splits on the first ':' into module and function/arity, and that
// fragment splits on the last '/' into function name and arity.
func parseBifModFunc(line string) (Bif, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Bif{}, fmt.Errorf("%w: %q", ErrMalformedBifLine, line)
	}

	mod, funArity, ok := strings.Cut(fields[1], ":")
	if !ok {
		return Bif{}, fmt.Errorf("%w: missing module in %q", ErrMalformedBifLine, line)
	}
	slash := strings.LastIndex(funArity, "/")
	if slash < 0 {
		return Bif{}, fmt.Errorf("%w: missing arity in %q", ErrMalformedBifLine, line)
	}
	fun := funArity[:slash]

	arity, err := strconv.Atoi(funArity[slash+1:])
	if err != nil {
		return Bif{}, fmt.Errorf("%w: %q in %q", ErrInvalidArity, funArity[slash+1:], line)
	}

	cname := fun
	if len(fields) >= 3 {
		cname = fields[2]
	}

	return Bif{
		Atom:    fun,
		Mod:     mod,
		Arity:   arity,
		CName:   cname,
		BifType: fields[0],
	}, nil
}
