package parser

import (
	"fmt"
)

// EmitWords resolves the token stream against the label table and
// produces the flat ROM word sequence. Label-definition tokens emit
// nothing; an unresolved label is reported and skipped so that the
// rest of the program still surfaces its diagnostics.
func EmitWords(tokens []Token, table *LabelTable, errs *ErrorList) []uint64 {
	words := make([]uint64, 0, len(tokens))

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenInstruction:
			m, _ := LookupMnemonic(tok.Text)
			words = append(words, m.Opcode)

		case TokenLabel:
			value, ok := table.Lookup(tok.Text)
			if !ok {
				errs.AddError(NewError(tok.Pos, ErrorUndefinedLabel,
					fmt.Sprintf("unrecognised label %q", tok.Text)))
				continue
			}
			words = append(words, value)

		case TokenLabelDef:
			// Defines only, occupies no ROM

		case TokenString:
			for _, ch := range []byte(ProcessEscapes(StringPayload(tok.Text))) {
				words = append(words, uint64(ch))
			}

		case TokenBinary, TokenHex, TokenOctal, TokenDecimal:
			words = append(words, DecodeLiteral(tok, errs))
		}
	}

	return words
}
