package gddoc

// Database is an append-only, insertion-ordered symbol table. Every symbol
// is addressable both by its fully-qualified key and by the stable index at
// which it was inserted. Indices never change: there is no deletion and no
// compaction, so ParentIndex and Members references stay valid for the
// Database's whole lifetime.
//
// A Database is populated in a single parse pass and read-only afterwards,
// except for SetMembers, the one-time forward patch a parser applies to a
// class after all of its children have been appended.
type Database struct {
	entries []*Symbol
	byKey   map[string]int
}

// NewDatabase returns an empty Database.
func NewDatabase() *Database {
	return &Database{byKey: make(map[string]int)}
}

// Insert appends the symbol and returns its index. Inserting a key that
// already exists overwrites the prior entry in place, preserving its index.
func (db *Database) Insert(sym *Symbol) int {
	if i, ok := db.byKey[sym.Key]; ok {
		db.entries[i] = sym
		return i
	}
	i := len(db.entries)
	db.entries = append(db.entries, sym)
	db.byKey[sym.Key] = i
	return i
}

// LookupExact returns the symbol stored under key. Returns ENOTFOUND if the
// key is absent. No fuzzy or prefix matching.
func (db *Database) LookupExact(key string) (*Symbol, error) {
	i, ok := db.byKey[key]
	if !ok {
		return nil, Errorf(ENOTFOUND, "symbol %q not found", key)
	}
	return db.entries[i], nil
}

// At returns the symbol at index i. Panics if i is out of range, as indices
// are only ever produced by Insert.
func (db *Database) At(i int) *Symbol {
	return db.entries[i]
}

// Len returns the number of symbols.
func (db *Database) Len() int {
	return len(db.entries)
}

// SetMembers attaches member indices to the symbol at index i.
func (db *Database) SetMembers(i int, members []int) {
	db.entries[i].Members = members
}

// Each calls fn for every symbol in insertion order.
func (db *Database) Each(fn func(i int, sym *Symbol) error) error {
	for i, sym := range db.entries {
		if err := fn(i, sym); err != nil {
			return err
		}
	}
	return nil
}
