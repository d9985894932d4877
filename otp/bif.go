package otp

import (
	"sort"
	"strings"
)

// Bif is one built-in function from bif.tab. Mod and BifType are only
// present in the OTP 20+ layout; CName falls back to the atom name when
// the source line carries no override column.
type Bif struct {
	Atom    string
	Mod     string
	Arity   int
	CName   string
	BifType string // "", or "bif" / "ubif" (no heap) / "gcbif" (uses heap)
}

// filterComments drops blank lines and # comment lines, preserving order.
func filterComments(text string) []string {
	var out []string
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		out = append(out, ln)
	}
	return out
}

// isPrintable reports whether s consists only of ASCII letters, digits
// and underscores, i.e. can become an identifier by upcasing alone.
func isPrintable(s string) bool {
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}

// loadBifs parses bif.tab text via the release layout and registers one
// atom per line into the table. The atoms file must already be seeded so
// plain atoms win the lower ids. The returned slice is sorted by
// (atom, arity); equal pairs keep their file order.
func loadBifs(text string, rel Release, atoms *AtomTable) ([]Bif, error) {
	var bifs []Bif
	for _, ln := range filterComments(text) {
		bif, err := rel.ParseBifLine(ln)
		if err != nil {
			return nil, err
		}
		bifs = append(bifs, bif)

		// The interned atom is the raw first token of the line, not the
		// parsed atom name. Operator atoms like '+' can't be upcased
		// into an identifier, so they borrow the bif's cname.
		tok := strings.Fields(ln)[0]
		if isPrintable(tok) {
			atoms.Register(tok, strings.ToUpper(tok))
		} else {
			atoms.Register(tok, bif.CName)
		}
	}

	sort.SliceStable(bifs, func(i, j int) bool {
		if bifs[i].Atom != bifs[j].Atom {
			return bifs[i].Atom < bifs[j].Atom
		}
		return bifs[i].Arity < bifs[j].Arity
	})
	return bifs, nil
}

// seedAtoms registers every entry of the plain atoms file, in file order,
// with its upper-cased text as cname.
func seedAtoms(text string, atoms *AtomTable) {
	for _, ln := range filterComments(text) {
		atoms.Register(ln, strings.ToUpper(ln))
	}
}
