// Package apijson builds a symbol database from the engine's structured API
// description (the extension_api.json document). It walks the document as a
// token stream without materializing a parse tree, recognizes a fixed key
// vocabulary at each nesting level, and skips everything else wholesale so
// additions to the source schema never break parsing.
package apijson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gddoc/gddoc"
)

// Ensure Parser implements gddoc.Parser at compile time.
var _ gddoc.Parser = (*Parser)(nil)

// Parser streams an API description document into a gddoc.Database.
type Parser struct {
	converter gddoc.Converter
}

// NewParser creates a Parser. Description fields are passed through conv
// before they are stored.
func NewParser(conv gddoc.Converter) *Parser {
	return &Parser{converter: conv}
}

// Parse consumes the whole document and returns the populated database.
// Syntax errors and premature end-of-input surface as EINVALIDJSON; all
// other errors propagate unchanged.
func (p *Parser) Parse(r io.Reader) (*gddoc.Database, error) {
	db := gddoc.NewDatabase()
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return nil, err
		}

		switch key {
		case "builtin_classes":
			err = p.parseClassArray(dec, db, gddoc.KindBuiltinClass)
		case "classes":
			err = p.parseClassArray(dec, db, gddoc.KindClass)
		case "utility_functions":
			err = p.parseUtilityFunctions(dec, db)
		default:
			// Version headers, size tables, global enums and whatever
			// future dumps add: consume and discard.
			err = skipValue(dec)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}

	return db, nil
}

// classBuffer accumulates a class's members while its body is being scanned.
// The class record itself is only committed once the body ends, so members
// cannot record their parent index until then.
type classBuffer struct {
	name    string
	brief   string
	desc    string
	methods []*gddoc.Symbol
	props   []*gddoc.Symbol
	signals []*gddoc.Symbol
	consts  []*gddoc.Symbol
	enums   []*gddoc.Symbol
}

func (p *Parser) parseClassArray(dec *json.Decoder, db *gddoc.Database, kind gddoc.SymbolKind) error {
	if err := expectDelim(dec, '['); err != nil {
		return err
	}
	for dec.More() {
		if err := p.parseClass(dec, db, kind); err != nil {
			return err
		}
	}
	return expectDelim(dec, ']')
}

func (p *Parser) parseClass(dec *json.Decoder, db *gddoc.Database, kind gddoc.SymbolKind) error {
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}

	var buf classBuffer
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return err
		}

		switch key {
		case "name":
			buf.name, err = stringToken(dec)
		case "methods":
			buf.methods, err = p.parseMemberArray(dec, gddoc.KindMethod)
		case "properties":
			buf.props, err = p.parseMemberArray(dec, gddoc.KindProperty)
		case "signals":
			buf.signals, err = p.parseMemberArray(dec, gddoc.KindSignal)
		case "constants":
			buf.consts, err = p.parseMemberArray(dec, gddoc.KindConstant)
		case "enums":
			buf.enums, err = p.parseMemberArray(dec, gddoc.KindEnumValue)
		case "description":
			buf.desc, err = p.convertedString(dec)
		case "brief_description":
			buf.brief, err = p.convertedString(dec)
		default:
			err = skipValue(dec)
		}
		if err != nil {
			return err
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return err
	}

	if buf.name == "" {
		panic("apijson: class object without a name")
	}
	commitClass(db, kind, &buf)
	return nil
}

// commitClass flattens a buffered class into the database: the class record
// first (fixing its index), then every member with that index as parent and
// "<Class>.<Member>" as key, then the collected member indices patched back
// onto the class. Member order is methods, properties, signals, constants,
// enums.
func commitClass(db *gddoc.Database, kind gddoc.SymbolKind, buf *classBuffer) {
	classIdx := db.Insert(&gddoc.Symbol{
		Key:         buf.name,
		Name:        buf.name,
		Kind:        kind,
		Brief:       buf.brief,
		Description: buf.desc,
	})

	var members []int
	for _, group := range [][]*gddoc.Symbol{buf.methods, buf.props, buf.signals, buf.consts, buf.enums} {
		for _, m := range group {
			parent := classIdx
			m.ParentIndex = &parent
			m.Key = buf.name + "." + m.Name
			members = append(members, db.Insert(m))
		}
	}
	if len(members) > 0 {
		db.SetMembers(classIdx, members)
	}
}

func (p *Parser) parseUtilityFunctions(dec *json.Decoder, db *gddoc.Database) error {
	if err := expectDelim(dec, '['); err != nil {
		return err
	}
	for dec.More() {
		fn, err := p.parseMember(dec, gddoc.KindGlobalFunction)
		if err != nil {
			return err
		}
		fn.Key = fn.Name
		db.Insert(fn)
	}
	return expectDelim(dec, ']')
}

func (p *Parser) parseMemberArray(dec *json.Decoder, kind gddoc.SymbolKind) ([]*gddoc.Symbol, error) {
	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}
	var members []*gddoc.Symbol
	for dec.More() {
		m, err := p.parseMember(dec, kind)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, expectDelim(dec, ']')
}

// parseMember parses one member object. Only "name" is modeled for every
// kind, plus "type" for properties; return types, hashes, default values,
// vararg flags and the rest are skipped.
func (p *Parser) parseMember(dec *json.Decoder, kind gddoc.SymbolKind) (*gddoc.Symbol, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	m := &gddoc.Symbol{Kind: kind}
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return nil, err
		}

		switch {
		case key == "name":
			m.Name, err = stringToken(dec)
		case key == "type" && kind == gddoc.KindProperty:
			var typ string
			if typ, err = stringToken(dec); err == nil {
				m.Signature = ": " + typ
			}
		default:
			err = skipValue(dec)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}

	if m.Name == "" {
		panic("apijson: member object without a name")
	}
	return m, nil
}

// convertedString reads a string value and runs it through the markup
// converter before returning it.
func (p *Parser) convertedString(dec *json.Decoder) (string, error) {
	raw, err := stringToken(dec)
	if err != nil {
		return "", err
	}
	return p.converter.Convert(raw)
}

// skipValue consumes exactly one value, scalar or composite, discarding it.
// The decoder validates delimiter matching, so depth counting is safe.
func skipValue(dec *json.Decoder) error {
	depth := 0
	for {
		t, err := dec.Token()
		if err != nil {
			return syntaxError(err)
		}
		if d, ok := t.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
		if depth == 0 {
			return nil
		}
	}
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	t, err := dec.Token()
	if err != nil {
		return syntaxError(err)
	}
	if d, ok := t.(json.Delim); !ok || d != want {
		return gddoc.Errorf(gddoc.EINVALIDJSON, "unexpected token %v, want %v", t, want)
	}
	return nil
}

func stringToken(dec *json.Decoder) (string, error) {
	t, err := dec.Token()
	if err != nil {
		return "", syntaxError(err)
	}
	s, ok := t.(string)
	if !ok {
		return "", gddoc.Errorf(gddoc.EINVALIDJSON, "unexpected token %v, want string", t)
	}
	return s, nil
}

// syntaxError re-signals token-stream syntax errors and premature
// end-of-input as EINVALIDJSON. Everything else propagates unchanged.
func syntaxError(err error) error {
	var syn *json.SyntaxError
	if errors.As(err, &syn) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return gddoc.Errorf(gddoc.EINVALIDJSON, "malformed API description: %s", errMessage(err))
	}
	return err
}

func errMessage(err error) string {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return "unexpected end of input"
	}
	return fmt.Sprintf("%v", err)
}
