package gddoc

// SymbolKind identifies what a symbol documents.
type SymbolKind int

// Symbol kinds. Classes, builtin classes and global functions are top-level;
// everything else is a member of a class.
const (
	KindBuiltinClass SymbolKind = iota
	KindClass
	KindMethod
	KindProperty
	KindConstant
	KindEnumValue
	KindGlobalFunction
	KindOperator
	KindSignal
)

// String returns the display name of the kind.
func (k SymbolKind) String() string {
	switch k {
	case KindBuiltinClass:
		return "Builtin Class"
	case KindClass:
		return "Class"
	case KindMethod:
		return "Method"
	case KindProperty:
		return "Property"
	case KindConstant:
		return "Constant"
	case KindEnumValue:
		return "Enum Value"
	case KindGlobalFunction:
		return "Global Function"
	case KindOperator:
		return "Operator"
	case KindSignal:
		return "Signal"
	}
	return "Unknown"
}

// Symbol represents one documentable entity: a class, a class member, or a
// global function. Symbols are plain value data owned by the Database that
// holds them; cross-references are expressed as indices into the Database's
// insertion order, never as pointers.
type Symbol struct {
	// Fully-qualified key: "<Class>.<Member>" for members, bare name for
	// top-level symbols. Unique within one Database.
	Key string

	// Short local name. Equals Key for top-level symbols.
	Name string

	Kind SymbolKind

	// Index of the owning top-level symbol in the Database. Nil for
	// top-level symbols.
	ParentIndex *int

	// Rendered Markdown, already converted from the source markup.
	Brief       string
	Description string

	// Free-form display fragment appended to the name, e.g. ": int" for a
	// typed property. Format depends on Kind.
	Signature string

	// Indices of this symbol's members in the Database, in render order.
	// Nil for symbols that own no members.
	Members []int
}

// TopLevel reports whether the symbol has no owning parent.
func (s *Symbol) TopLevel() bool {
	return s.ParentIndex == nil
}

// Validate returns an error if the symbol contains invalid fields.
func (s *Symbol) Validate() error {
	if s.Key == "" {
		return Errorf(EINVALID, "symbol key required")
	}
	if s.Name == "" {
		return Errorf(EINVALID, "symbol name required")
	}
	return nil
}
