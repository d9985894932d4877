package otp

import (
	"fmt"
	"sort"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode uses canonical options so two snapshots of the same model
// are byte-identical.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("otp: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// snapshot is the on-disk form of a loaded model. Generators can consume
// a snapshot instead of reparsing the table files.
type snapshot struct {
	Release        string
	Ops            []Genop
	Atoms          []Atom
	Bifs           []Bif
	ImplementedOps []string
}

// MarshalSnapshot serializes a loaded model to CBOR bytes. The opcode map
// is flattened in opcode order, atoms in id order.
func MarshalSnapshot(t *Tables) ([]byte, error) {
	s := snapshot{
		Release:        t.Release.Name,
		Atoms:          t.Atoms.All(),
		Bifs:           t.Bifs,
		ImplementedOps: t.ImplementedOps,
	}

	opcodes := make([]int, 0, len(t.Ops))
	for op := range t.Ops {
		opcodes = append(opcodes, op)
	}
	sort.Ints(opcodes)
	for _, op := range opcodes {
		s.Ops = append(s.Ops, t.Ops[op])
	}

	return cborEncMode.Marshal(&s)
}

// UnmarshalSnapshot deserializes a model from CBOR bytes. Atom ids are
// re-registered in snapshot order, so they come back unchanged.
func UnmarshalSnapshot(data []byte) (*Tables, error) {
	var s snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("otp: unmarshal snapshot: %w", err)
	}

	rel, ok := ReleaseByName(s.Release)
	if !ok {
		return nil, fmt.Errorf("otp: snapshot for unknown release %q", s.Release)
	}

	t := &Tables{
		Release:        rel,
		Ops:            make(map[int]Genop, len(s.Ops)),
		Atoms:          NewAtomTable(),
		Bifs:           s.Bifs,
		ImplementedOps: s.ImplementedOps,
	}
	for _, op := range s.Ops {
		t.Ops[op.Opcode] = op
	}
	for _, a := range s.Atoms {
		if id := t.Atoms.Register(a.Text, a.CName); id != a.ID {
			return nil, fmt.Errorf("otp: snapshot atom %q has id %d, reassigned %d", a.Text, a.ID, id)
		}
	}

	return t, nil
}
