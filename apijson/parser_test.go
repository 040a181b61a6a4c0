package apijson_test

import (
	"strings"
	"testing"

	"github.com/gddoc/gddoc"
	"github.com/gddoc/gddoc/apijson"
	"github.com/gddoc/gddoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, doc string) *gddoc.Database {
	t.Helper()

	p := apijson.NewParser(mock.PassthroughConverter())
	db, err := p.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return db
}

func TestParser_MinimalClass(t *testing.T) {
	t.Parallel()

	db := parse(t, `{"classes": [{"name": "X"}]}`)

	require.Equal(t, 1, db.Len())
	sym, err := db.LookupExact("X")
	require.NoError(t, err)
	assert.Equal(t, "X", sym.Key)
	assert.Equal(t, "X", sym.Name)
	assert.Equal(t, gddoc.KindClass, sym.Kind)
	assert.Nil(t, sym.ParentIndex)
	assert.Nil(t, sym.Members)
}

func TestParser_BuiltinClassKind(t *testing.T) {
	t.Parallel()

	db := parse(t, `{"builtin_classes": [{"name": "Vector2"}]}`)

	sym, err := db.LookupExact("Vector2")
	require.NoError(t, err)
	assert.Equal(t, gddoc.KindBuiltinClass, sym.Kind)
}

func TestParser_ClassMembers(t *testing.T) {
	t.Parallel()

	db := parse(t, `{
		"classes": [{
			"name": "C",
			"methods": [{"name": "m1"}, {"name": "m2"}]
		}]
	}`)

	require.Equal(t, 3, db.Len())

	class, err := db.LookupExact("C")
	require.NoError(t, err)
	require.Len(t, class.Members, 2)

	m1 := db.At(class.Members[0])
	m2 := db.At(class.Members[1])
	assert.Equal(t, "m1", m1.Name)
	assert.Equal(t, "m2", m2.Name)
	assert.Equal(t, "C.m1", m1.Key)
	assert.Equal(t, "C.m2", m2.Key)

	for _, m := range []*gddoc.Symbol{m1, m2} {
		require.NotNil(t, m.ParentIndex)
		assert.Equal(t, "C", db.At(*m.ParentIndex).Key)
		assert.Equal(t, gddoc.KindMethod, m.Kind)
	}

	_, err = db.LookupExact("C.m1")
	require.NoError(t, err)
	_, err = db.LookupExact("C.m2")
	require.NoError(t, err)
}

func TestParser_MemberKindsAndOrder(t *testing.T) {
	t.Parallel()

	// Source order differs from commit order: the parser commits members
	// in the fixed order methods, properties, signals, constants, enums.
	db := parse(t, `{
		"classes": [{
			"name": "C",
			"enums": [{"name": "Mode"}],
			"signals": [{"name": "changed"}],
			"properties": [{"name": "size", "type": "int"}],
			"constants": [{"name": "MAX"}],
			"methods": [{"name": "run"}]
		}]
	}`)

	class, err := db.LookupExact("C")
	require.NoError(t, err)
	require.Len(t, class.Members, 5)

	var names []string
	var kinds []gddoc.SymbolKind
	for _, i := range class.Members {
		names = append(names, db.At(i).Name)
		kinds = append(kinds, db.At(i).Kind)
	}
	assert.Equal(t, []string{"run", "size", "changed", "MAX", "Mode"}, names)
	assert.Equal(t, []gddoc.SymbolKind{
		gddoc.KindMethod,
		gddoc.KindProperty,
		gddoc.KindSignal,
		gddoc.KindConstant,
		gddoc.KindEnumValue,
	}, kinds)
}

func TestParser_PropertyTypeSignature(t *testing.T) {
	t.Parallel()

	db := parse(t, `{
		"classes": [{
			"name": "C",
			"properties": [{"name": "position", "type": "Vector2"}]
		}]
	}`)

	sym, err := db.LookupExact("C.position")
	require.NoError(t, err)
	assert.Equal(t, ": Vector2", sym.Signature)
}

func TestParser_UtilityFunctions(t *testing.T) {
	t.Parallel()

	db := parse(t, `{"utility_functions": [{"name": "clampf", "return_type": "float"}]}`)

	sym, err := db.LookupExact("clampf")
	require.NoError(t, err)
	assert.Equal(t, "clampf", sym.Key)
	assert.Equal(t, gddoc.KindGlobalFunction, sym.Kind)
	assert.Nil(t, sym.ParentIndex)
}

func TestParser_Descriptions(t *testing.T) {
	t.Parallel()

	var converted []string
	conv := &mock.Converter{ConvertFn: func(markup string) (string, error) {
		converted = append(converted, markup)
		return "md:" + markup, nil
	}}

	p := apijson.NewParser(conv)
	db, err := p.Parse(strings.NewReader(`{
		"classes": [{
			"name": "C",
			"brief_description": "short",
			"description": "long"
		}]
	}`))
	require.NoError(t, err)

	sym, err := db.LookupExact("C")
	require.NoError(t, err)
	assert.Equal(t, "md:short", sym.Brief)
	assert.Equal(t, "md:long", sym.Description)
	assert.ElementsMatch(t, []string{"short", "long"}, converted)
}

func TestParser_ConverterErrorPropagates(t *testing.T) {
	t.Parallel()

	conv := &mock.Converter{ConvertFn: func(markup string) (string, error) {
		return "", gddoc.Errorf(gddoc.EINVALID, "bad markup")
	}}

	p := apijson.NewParser(conv)
	_, err := p.Parse(strings.NewReader(`{"classes": [{"name": "C", "description": "x"}]}`))

	require.Error(t, err)
	assert.Equal(t, gddoc.EINVALID, gddoc.ErrorCode(err))
}

func TestParser_SkipsUnknownKeys(t *testing.T) {
	t.Parallel()

	// The same document with and without unrecognized keys must produce
	// identical databases.
	noisy := parse(t, `{
		"header": {"version_major": 4, "version_minor": 5},
		"builtin_class_sizes": [{"build_configuration": "float_64", "sizes": [1, 2, 3]}],
		"classes": [{
			"name": "C",
			"is_refcounted": true,
			"inherits": "Object",
			"methods": [{
				"name": "run",
				"is_vararg": false,
				"hash": 3218959716,
				"return_value": {"type": "int"},
				"arguments": [{"name": "a", "type": "float"}]
			}]
		}],
		"singletons": [{"name": "Engine", "type": "Engine"}],
		"global_enums": [{"name": "Side", "values": [{"name": "SIDE_LEFT", "value": 0}]}]
	}`)
	clean := parse(t, `{"classes": [{"name": "C", "methods": [{"name": "run"}]}]}`)

	require.Equal(t, clean.Len(), noisy.Len())
	err := clean.Each(func(i int, want *gddoc.Symbol) error {
		assert.Equal(t, want, noisy.At(i))
		return nil
	})
	require.NoError(t, err)
}

func TestParser_Idempotent(t *testing.T) {
	t.Parallel()

	doc := `{
		"classes": [{
			"name": "C",
			"brief_description": "short",
			"methods": [{"name": "run"}],
			"properties": [{"name": "size", "type": "int"}]
		}],
		"utility_functions": [{"name": "clampf"}]
	}`

	first := parse(t, doc)
	second := parse(t, doc)

	require.Equal(t, first.Len(), second.Len())
	err := first.Each(func(i int, want *gddoc.Symbol) error {
		assert.Equal(t, want, second.At(i))
		return nil
	})
	require.NoError(t, err)
}

func TestParser_MultipleClasses(t *testing.T) {
	t.Parallel()

	db := parse(t, `{
		"classes": [
			{"name": "A", "methods": [{"name": "m"}]},
			{"name": "B", "methods": [{"name": "m"}]}
		]
	}`)

	a, err := db.LookupExact("A.m")
	require.NoError(t, err)
	b, err := db.LookupExact("B.m")
	require.NoError(t, err)
	assert.Equal(t, "A", db.At(*a.ParentIndex).Key)
	assert.Equal(t, "B", db.At(*b.ParentIndex).Key)
}

func TestParser_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty input", doc: ``},
		{name: "truncated object", doc: `{"classes": [{"name": "X"`},
		{name: "bare garbage", doc: `not json`},
		{name: "root is an array", doc: `[]`},
		{name: "classes is not an array", doc: `{"classes": 42}`},
		{name: "trailing garbage inside", doc: `{"classes": [{]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := apijson.NewParser(mock.PassthroughConverter())
			_, err := p.Parse(strings.NewReader(tt.doc))

			require.Error(t, err)
			assert.Equal(t, gddoc.EINVALIDJSON, gddoc.ErrorCode(err))
		})
	}
}

func TestParser_MemberWithoutNamePanics(t *testing.T) {
	t.Parallel()

	p := apijson.NewParser(mock.PassthroughConverter())

	assert.Panics(t, func() {
		_, _ = p.Parse(strings.NewReader(`{"classes": [{"name": "C", "methods": [{"hash": 1}]}]}`))
	})
}
