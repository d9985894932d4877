package otp

import "sync"

// ---------------------------------------------------------------------------
// AtomTable: Interned atoms
// ---------------------------------------------------------------------------

// Atom is one interned atom. Text is the interning key, CName the
// identifier-safe name used in generated code, ID the stable numeric id
// embedded in generated constants.
type Atom struct {
	Text  string
	CName string
	ID    int
}

// AtomTable interns atom strings to unique IDs.
// IDs start at 1 and are assigned in first-registration order, so feeding
// atoms in a stable order makes regeneration deterministic.
type AtomTable struct {
	mu      sync.RWMutex
	byText  map[string]int // text -> ID
	ordered []Atom         // insertion order; ordered[id-1] is the record
	nextID  int
}

// NewAtomTable creates a new empty atom table.
func NewAtomTable() *AtomTable {
	return &AtomTable{
		byText: make(map[string]int),
		nextID: 1,
	}
}

// Register returns the ID for an atom, creating a new one if needed.
// Re-registering existing text is a no-op that keeps the original ID
// and CName.
func (at *AtomTable) Register(text, cname string) int {
	// Fast path: read-only lookup
	at.mu.RLock()
	if id, ok := at.byText[text]; ok {
		at.mu.RUnlock()
		return id
	}
	at.mu.RUnlock()

	// Slow path: need to add new atom
	at.mu.Lock()
	defer at.mu.Unlock()

	// Double-check after acquiring write lock
	if id, ok := at.byText[text]; ok {
		return id
	}

	id := at.nextID
	at.nextID++
	at.byText[text] = id
	at.ordered = append(at.ordered, Atom{Text: text, CName: cname, ID: id})
	return id
}

// Lookup returns the ID for an atom text, or 0 and false if not found.
func (at *AtomTable) Lookup(text string) (int, bool) {
	at.mu.RLock()
	defer at.mu.RUnlock()
	id, ok := at.byText[text]
	return id, ok
}

// ByID returns the atom record for an ID, or false if the ID was never
// assigned.
func (at *AtomTable) ByID(id int) (Atom, bool) {
	at.mu.RLock()
	defer at.mu.RUnlock()

	if id < 1 || id > len(at.ordered) {
		return Atom{}, false
	}
	return at.ordered[id-1], true
}

// Len returns the number of interned atoms.
func (at *AtomTable) Len() int {
	at.mu.RLock()
	defer at.mu.RUnlock()
	return len(at.ordered)
}

// All returns all atom records in ID order.
func (at *AtomTable) All() []Atom {
	at.mu.RLock()
	defer at.mu.RUnlock()

	result := make([]Atom, len(at.ordered))
	copy(result, at.ordered)
	return result
}
