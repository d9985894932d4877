package otp

import (
	"fmt"
	"os"
	"path/filepath"
)

// ImplementedOpsTab is the allow-list of operations the emulator actually
// implements. It lives next to atoms.tab and is shared by all releases.
const ImplementedOpsTab = "implemented_ops.tab"

// Tables is the aggregated model the generators consume: the opcode map,
// the atom table, the sorted bif list and the implemented-ops allow-list.
// Load fills it in one pass; afterwards it is read-only.
type Tables struct {
	Release Release

	// Ops maps opcode number to instruction.
	Ops map[int]Genop

	// Atoms holds every interned atom: the plain atoms file first,
	// then one atom per bif line, in file order.
	Atoms *AtomTable

	// Bifs is sorted by (atom, arity).
	Bifs []Bif

	// ImplementedOps is kept opaque and in file order.
	ImplementedOps []string
}

// Load reads all table files for a release from dir and builds the model.
// Any read or parse failure aborts the load; there is no partial model.
func Load(rel Release, dir string) (*Tables, error) {
	t := &Tables{
		Release: rel,
		Atoms:   NewAtomTable(),
	}

	implemented, err := readTab(dir, ImplementedOpsTab)
	if err != nil {
		return nil, err
	}
	t.ImplementedOps = filterComments(implemented)

	genops, err := readTab(dir, rel.GenopTab)
	if err != nil {
		return nil, err
	}
	t.Ops, err = parseGenops(genops)
	if err != nil {
		return nil, err
	}

	atoms, err := readTab(dir, rel.AtomsTab)
	if err != nil {
		return nil, err
	}
	seedAtoms(atoms, t.Atoms)

	bifs, err := readTab(dir, rel.BifTab)
	if err != nil {
		return nil, err
	}
	t.Bifs, err = loadBifs(bifs, rel, t.Atoms)
	if err != nil {
		return nil, err
	}

	return t, nil
}

func readTab(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", path, err)
	}
	return string(data), nil
}
