package parser

import (
	"fmt"

	"github.com/samber/lo"
)

// LabelEntry binds an identifier to its 64-bit meaning: a ROM address
// for `name:` definitions, a literal value for `name=` definitions.
type LabelEntry struct {
	Name  string
	Value uint64
}

// LabelTable is an ordered list of label bindings. Lookup is a linear
// first-match scan, so the built-in entries inserted at construction
// take precedence over later user definitions of the same name.
type LabelTable struct {
	entries []LabelEntry
}

// builtinLabels are always present: the channel selectors and the
// register indices, usable anywhere a word operand is expected.
var builtinLabels = []LabelEntry{
	{"cst", 3},
	{"mem", 0},
	{"inp", 1},
	{"out", 2},
	{"mch", 0},
	{"mar", 1},
	{"mdr", 2},
	{"acc", 3},
	{"dat", 4},
	{"cea", 5},
	{"csp", 6},
}

// NewLabelTable creates a label table seeded with the built-in entries
func NewLabelTable() *LabelTable {
	t := &LabelTable{entries: make([]LabelEntry, 0, len(builtinLabels)+16)}
	t.entries = append(t.entries, builtinLabels...)
	return t
}

// Define appends a binding to the table
func (t *LabelTable) Define(name string, value uint64) {
	t.entries = append(t.entries, LabelEntry{Name: name, Value: value})
}

// Lookup returns the first binding for name in insertion order
func (t *LabelTable) Lookup(name string) (uint64, bool) {
	entry, ok := lo.Find(t.entries, func(e LabelEntry) bool {
		return e.Name == name
	})
	return entry.Value, ok
}

// Len returns the number of bindings, built-ins included
func (t *LabelTable) Len() int {
	return len(t.entries)
}

// BuildLabels runs the definition pass over the token stream. Every
// LABEL_DEFINITION token is validated and bound: `name:` to the
// token's own ROM address, `name=` to the decoded value of the next
// token. The trailing ':' or '=' is stripped from the token text so
// later lookups match the bare identifier.
func BuildLabels(tokens []Token, table *LabelTable, errs *ErrorList) {
	for i := range tokens {
		tok := &tokens[i]
		if tok.Kind != TokenLabelDef {
			continue
		}

		marker := tok.Text[len(tok.Text)-1]
		name := tok.Text[:len(tok.Text)-1]

		for _, ch := range []byte(name) {
			if !isLabelChar(ch) {
				errs.AddError(NewError(tok.Pos, ErrorBadLabelChar,
					fmt.Sprintf("illegal character %q in label %q", ch, name)))
			}
		}

		switch marker {
		case ':':
			table.Define(name, tok.Addr)
		case '=':
			if i+1 >= len(tokens) {
				errs.AddError(NewError(tok.Pos, ErrorMissingValue,
					fmt.Sprintf("missing value after %q", name)))
				break
			}
			next := tokens[i+1]
			if next.Kind == TokenString {
				errs.AddError(NewError(tok.Pos, ErrorStringValue,
					fmt.Sprintf("label %q cannot be assigned a string", name)))
				break
			}
			table.Define(name, DecodeLiteral(next, errs))
		}

		tok.Text = name
	}
}

func isLabelChar(ch byte) bool {
	return ch >= '0' && ch <= '9' ||
		ch >= 'A' && ch <= 'Z' ||
		ch >= 'a' && ch <= 'z' ||
		ch == '_'
}
