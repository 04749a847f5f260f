package parser

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// WordSize is the size in bytes of one machine word in a ROM image
const WordSize = 8

// Assemble runs the full pipeline over source text: lex, label
// definition pass, emission. The returned error list carries every
// diagnostic raised along the way; callers must not write the ROM
// when it is non-empty.
func Assemble(source, filename string) ([]uint64, *ErrorList) {
	lexer := NewLexer(source, filename)
	tokens := lexer.Tokenize()
	errs := lexer.Errors()

	table := NewLabelTable()
	BuildLabels(tokens, table, errs)

	words := EmitWords(tokens, table, errs)
	return words, errs
}

// AssembleFile reads and assembles an assembly source file
func AssembleFile(path string) ([]uint64, *ErrorList, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided assembly file path
	if err != nil {
		return nil, nil, err
	}

	words, errs := Assemble(string(content), filepath.Base(path))
	return words, errs, nil
}

// WriteROM writes the word sequence as a packed little-endian ROM image
func WriteROM(path string, words []uint64) error {
	buf := make([]byte, len(words)*WordSize)
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[i*WordSize:], w)
	}

	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("failed to write ROM image: %w", err)
	}
	return nil
}
