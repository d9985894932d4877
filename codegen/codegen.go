// Package codegen emits Go source from a loaded table model: opcode
// constants and metadata, atom id constants with the interner seed list,
// and the sorted bif registration table.
package codegen

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/dave/jennifer/jen"

	"github.com/chazu/beamgen/otp"
)

// Generated file names, keyed to the generator that produces them.
const (
	GenopFile = "gen_op.go"
	AtomFile  = "gen_atoms.go"
	BifFile   = "gen_bif.go"
)

// Generate produces all generated files for a model, keyed by file name.
func Generate(t *otp.Tables, pkg string) (map[string]string, error) {
	out := make(map[string]string, 3)
	for name, gen := range map[string]func(*otp.Tables, string) (string, error){
		GenopFile: GenerateGenops,
		AtomFile:  GenerateAtoms,
		BifFile:   GenerateBifs,
	} {
		code, err := gen(t, pkg)
		if err != nil {
			return nil, fmt.Errorf("codegen: %s: %w", name, err)
		}
		out[name] = code
	}
	return out, nil
}

// GenerateGenops emits the opcode constants, the opcode metadata table and
// the implemented-ops list, in opcode order.
func GenerateGenops(t *otp.Tables, pkg string) (string, error) {
	f := newFile(pkg)

	f.Comment("Opcode range for " + t.Release.Name + ".")
	f.Const().Defs(
		jen.Id("MinOpcode").Op("=").Lit(t.Release.MinOpcode),
		jen.Id("MaxOpcode").Op("=").Lit(t.Release.MaxOpcode),
	)
	f.Line()

	opcodes := make([]int, 0, len(t.Ops))
	for op := range t.Ops {
		opcodes = append(opcodes, op)
	}
	sort.Ints(opcodes)

	var defs []jen.Code
	for _, op := range opcodes {
		defs = append(defs, jen.Id("Opcode"+EnumName(t.Ops[op].Name)).Op("=").Lit(op))
	}
	f.Const().Defs(defs...)
	f.Line()

	f.Comment("GenopInfo describes one instruction from genop.tab.")
	f.Type().Id("GenopInfo").Struct(
		jen.Id("Name").String(),
		jen.Id("Arity").Int(),
	)
	f.Line()

	genops := jen.Dict{}
	for _, op := range opcodes {
		g := t.Ops[op]
		genops[jen.Lit(op)] = jen.Values(jen.Lit(g.Name), jen.Lit(g.Arity))
	}
	f.Var().Id("Genops").Op("=").Map(jen.Int()).Id("GenopInfo").Values(genops)
	f.Line()

	implemented := make([]jen.Code, 0, len(t.ImplementedOps))
	for _, op := range t.ImplementedOps {
		implemented = append(implemented, jen.Lit(op))
	}
	f.Comment("ImplementedOps lists the operations the emulator implements.")
	f.Var().Id("ImplementedOps").Op("=").Index().String().Values(implemented...)

	return render(f)
}

// GenerateAtoms emits one Q_ constant per atom plus the seed list used to
// preload the runtime atom table in id order.
func GenerateAtoms(t *otp.Tables, pkg string) (string, error) {
	f := newFile(pkg)

	var defs []jen.Code
	seen := make(map[string]bool)
	for _, a := range t.Atoms.All() {
		name := "Q_" + a.CName
		if !isIdentifier(a.CName) || seen[name] {
			continue
		}
		seen[name] = true
		defs = append(defs, jen.Id(name).Op("=").Lit(a.ID))
	}
	f.Comment("Atom ids, assigned in table load order starting at 1.")
	f.Const().Defs(defs...)
	f.Line()

	var seed []jen.Code
	for _, a := range t.Atoms.All() {
		seed = append(seed, jen.Lit(a.Text))
	}
	f.Comment("AtomSeed preloads the runtime atom table. Index i holds atom id i+1.")
	f.Var().Id("AtomSeed").Op("=").Index().String().Values(seed...)

	return render(f)
}

// GenerateBifs emits the bif registration table, sorted by (atom, arity).
func GenerateBifs(t *otp.Tables, pkg string) (string, error) {
	f := newFile(pkg)

	f.Comment("BifEntry describes one built-in function from bif.tab.")
	f.Type().Id("BifEntry").Struct(
		jen.Id("Atom").String(),
		jen.Id("Mod").String(),
		jen.Id("Arity").Int(),
		jen.Id("CName").String(),
		jen.Id("Kind").String(),
	)
	f.Line()

	var entries []jen.Code
	for _, b := range t.Bifs {
		entries = append(entries, jen.Values(
			jen.Lit(b.Atom), jen.Lit(b.Mod), jen.Lit(b.Arity),
			jen.Lit(CFunName(b.CName)), jen.Lit(b.BifType),
		))
	}
	f.Var().Id("Bifs").Op("=").Index().Id("BifEntry").Values(entries...)

	return render(f)
}

func newFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by beamgen. DO NOT EDIT.")
	return f
}

func render(f *jen.File) (string, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
