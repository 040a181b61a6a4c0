package gddoc

import "strings"

// memberSections fixes the order in which member buckets are rendered.
// This is presentation policy, independent of insertion order, and cached
// files depend on it being stable.
var memberSections = []struct {
	title string
	kind  SymbolKind
}{
	{"Properties", KindProperty},
	{"Methods", KindMethod},
	{"Signals", KindSignal},
	{"Constants", KindConstant},
	{"Enums", KindEnumValue},
}

// RenderSymbol produces the canonical Markdown document for a symbol.
// The output is a pure function of the symbol, its parent's name, and the
// members referenced by its Members indices.
func RenderSymbol(db *Database, sym *Symbol) string {
	var b strings.Builder

	b.WriteString("# ")
	b.WriteString(sym.Key)
	b.WriteString(sym.Signature)
	b.WriteString("\n")

	if sym.ParentIndex != nil {
		b.WriteString("\n**Parent**: ")
		b.WriteString(db.At(*sym.ParentIndex).Name)
		b.WriteString("\n")
	}

	if sym.Brief != "" {
		b.WriteString("\n")
		b.WriteString(sym.Brief)
		b.WriteString("\n")
	}

	if sym.Description != "" {
		b.WriteString("\n## Description\n\n")
		b.WriteString(sym.Description)
		b.WriteString("\n")
	}

	for _, section := range memberSections {
		lines := memberLines(db, sym.Members, section.kind)
		if len(lines) == 0 {
			continue
		}
		b.WriteString("\n## ")
		b.WriteString(section.title)
		b.WriteString("\n\n")
		for _, line := range lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// memberLines filters members by kind, preserving relative order.
func memberLines(db *Database, members []int, kind SymbolKind) []string {
	var lines []string
	for _, i := range members {
		m := db.At(i)
		if m.Kind != kind {
			continue
		}
		line := "- **" + m.Name + m.Signature + "**"
		if m.Brief != "" {
			line += " - " + m.Brief
		}
		lines = append(lines, line)
	}
	return lines
}
