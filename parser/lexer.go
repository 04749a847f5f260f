package parser

import (
	"fmt"
	"strings"
)

// TokenKind represents the type of a token
type TokenKind int

const (
	TokenInstruction TokenKind = iota
	TokenLabelDef
	TokenLabel
	TokenString
	TokenBinary
	TokenHex
	TokenOctal
	TokenDecimal
)

var tokenKindNames = map[TokenKind]string{
	TokenInstruction: "INSTRUCTION",
	TokenLabelDef:    "LABEL_DEFINITION",
	TokenLabel:       "LABEL",
	TokenString:      "STRING",
	TokenBinary:      "BINARY",
	TokenHex:         "HEXADECIMAL",
	TokenOctal:       "OCTAL",
	TokenDecimal:     "DECIMAL",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

// Token represents one lexical token. Addr is the ROM word offset at
// which emission for this token will begin: strings occupy one word
// per character, label definitions occupy none, everything else one.
type Token struct {
	Kind TokenKind
	Text string
	Pos  Position
	Addr uint64
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %s, word %d", t.Kind, t.Text, t.Pos, t.Addr)
}

// Lexer tokenizes Fox assembly source code
type Lexer struct {
	input    string
	filename string
	errors   *ErrorList

	line int
	addr uint64
	owed int // operand words still expected by the last instruction
}

// NewLexer creates a new lexer for the given input
func NewLexer(input, filename string) *Lexer {
	return &Lexer{
		input:    input,
		filename: filename,
		errors:   &ErrorList{},
		line:     1,
	}
}

// Errors returns the error list
func (l *Lexer) Errors() *ErrorList {
	return l.errors
}

// FinalAddr returns the address cursor after the last token.
// Only meaningful once Tokenize has run.
func (l *Lexer) FinalAddr() uint64 {
	return l.addr
}

// Tokenize splits the entire input into tokens. Tokens are delimited
// by runs of whitespace and comments; a bracketed literal captures
// every byte verbatim until its unescaped closing bracket.
func (l *Lexer) Tokenize() []Token {
	var (
		tokens    []Token
		buf       strings.Builder
		startLine int
		inComment bool
		inLiteral bool
	)

	closeToken := func() {
		if buf.Len() == 0 {
			return
		}
		text := buf.String()
		buf.Reset()
		tokens = append(tokens, l.emitToken(text, startLine))
	}

	for i := 0; i < len(l.input); i++ {
		ch := l.input[i]

		if inComment {
			if ch == '\n' {
				inComment = false
				l.line++
			}
			continue
		}

		if inLiteral {
			if ch == ']' && l.input[i-1] != '\\' {
				inLiteral = false
			}
			if ch == '\n' {
				l.line++
			}
			buf.WriteByte(ch)
			continue
		}

		switch ch {
		case ';':
			closeToken()
			inComment = true
		case '\n', ' ', '\t':
			closeToken()
			if ch == '\n' {
				l.line++
			}
		case '[':
			if buf.Len() == 0 {
				startLine = l.line
			}
			inLiteral = true
			buf.WriteByte(ch)
		default:
			if buf.Len() == 0 {
				startLine = l.line
			}
			buf.WriteByte(ch)
		}
	}
	closeToken()

	return tokens
}

// emitToken classifies a completed token text and advances the
// address cursor and operand bookkeeping.
func (l *Lexer) emitToken(text string, startLine int) Token {
	pos := Position{Filename: l.filename, Line: startLine}
	kind := l.classify(text, pos)

	tok := Token{
		Kind: kind,
		Text: text,
		Pos:  pos,
		Addr: l.addr,
	}

	switch kind {
	case TokenLabelDef:
		// Emits nothing, cursor unchanged
	case TokenString:
		l.addr += uint64(len(ProcessEscapes(StringPayload(text))))
	default:
		l.addr++
	}

	if kind == TokenInstruction {
		m, _ := LookupMnemonic(text)
		l.owed = m.Operands
	} else if kind != TokenLabelDef && l.owed > 0 {
		l.owed--
	}

	return tok
}

// classify determines the token kind from its closing text
func (l *Lexer) classify(text string, pos Position) TokenKind {
	n := len(text)

	// Bracketed literal: the character after the closing bracket
	// selects the payload interpretation.
	if n >= 2 && text[n-2] == ']' {
		switch text[n-1] {
		case 's':
			return TokenString
		case 'b':
			return TokenBinary
		case 'x':
			return TokenHex
		case 'o':
			return TokenOctal
		case 'd':
			return TokenDecimal
		default:
			l.errors.AddError(NewError(pos, ErrorBadSuffix,
				fmt.Sprintf("unrecognised raw-data type specifier %q", text[n-1])))
			return TokenLabel
		}
	}

	if text[n-1] == ':' || text[n-1] == '=' {
		return TokenLabelDef
	}

	if l.owed == 0 {
		if _, ok := LookupMnemonic(text); ok {
			return TokenInstruction
		}
	}

	return TokenLabel
}

// StringPayload returns the raw characters between the brackets of a
// bracketed literal token text.
func StringPayload(text string) string {
	open := strings.IndexByte(text, '[')
	end := strings.LastIndexByte(text, ']')
	if open < 0 || end <= open {
		return ""
	}
	return text[open+1 : end]
}
