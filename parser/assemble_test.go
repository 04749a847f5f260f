package parser_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/foxvm/fvm/parser"
)

func assemble(t *testing.T, source string) ([]uint64, *parser.ErrorList) {
	t.Helper()
	return parser.Assemble(source, "test.fa")
}

func TestAssemble_ImmediateHalt(t *testing.T) {
	words, errs := assemble(t, "fi")
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(words) != 1 || words[0] != 27 {
		t.Errorf("expected [27], got %v", words)
	}
}

func TestAssemble_LabelResolution(t *testing.T) {
	words, errs := assemble(t, "start: pl [5]d acc jm start fi")
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}

	expected := []uint64{0, 5, 3, 4, 0, 27}
	if len(words) != len(expected) {
		t.Fatalf("expected %d words, got %d", len(expected), len(words))
	}
	for i, want := range expected {
		if words[i] != want {
			t.Errorf("word %d: expected %d, got %d", i, want, words[i])
		}
	}
}

func TestAssemble_StringEmission(t *testing.T) {
	words, errs := assemble(t, "msg: [Hi\\n]s fi")
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}

	expected := []uint64{'H', 'i', 0x0A, 27}
	if len(words) != len(expected) {
		t.Fatalf("expected %d words, got %d", len(expected), len(words))
	}
	for i, want := range expected {
		if words[i] != want {
			t.Errorf("word %d: expected %d, got %d", i, want, words[i])
		}
	}
}

func TestAssemble_CallstackProgram(t *testing.T) {
	words, errs := assemble(t, "cl sub fi sub: pl [42]d acc rt")
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}

	expected := []uint64{25, 3, 27, 0, 42, 3, 26}
	for i, want := range expected {
		if words[i] != want {
			t.Errorf("word %d: expected %d, got %d", i, want, words[i])
		}
	}
}

func TestAssemble_ValueLabel(t *testing.T) {
	words, errs := assemble(t, "width= [16]d pl width acc fi")
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}

	// The value literal itself occupies ROM, then pl 16 acc, fi
	expected := []uint64{16, 0, 16, 3, 27}
	if len(words) != len(expected) {
		t.Fatalf("expected %d words, got %v", len(expected), words)
	}
	for i, want := range expected {
		if words[i] != want {
			t.Errorf("word %d: expected %d, got %d", i, want, words[i])
		}
	}
}

func TestAssemble_UnknownLabel(t *testing.T) {
	words, errs := assemble(t, "jm nowhere fi")
	if !errs.HasErrors() {
		t.Fatal("expected an error for unknown label")
	}
	if errs.Errors[0].Kind != parser.ErrorUndefinedLabel {
		t.Errorf("expected ErrorUndefinedLabel, got %v", errs.Errors[0].Kind)
	}
	// The unresolved label emits nothing; assembly still finishes
	expected := []uint64{4, 27}
	if len(words) != len(expected) {
		t.Fatalf("expected %d words, got %v", len(expected), words)
	}
}

func TestAssemble_ErrorsAccumulate(t *testing.T) {
	_, errs := assemble(t, "jm nowhere [9z]d [3]q fi")
	if len(errs.Errors) < 3 {
		t.Errorf("expected at least 3 accumulated errors, got %d: %v", len(errs.Errors), errs)
	}
}

func TestWriteROM_PackedWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.fb")
	words := []uint64{27, 0x4142}

	if err := parser.WriteROM(path, words); err != nil {
		t.Fatalf("WriteROM failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading ROM back: %v", err)
	}
	if len(data) != 2*parser.WordSize {
		t.Fatalf("expected %d bytes, got %d", 2*parser.WordSize, len(data))
	}
	if got := binary.LittleEndian.Uint64(data); got != 27 {
		t.Errorf("word 0: expected 27, got %d", got)
	}
	if got := binary.LittleEndian.Uint64(data[8:]); got != 0x4142 {
		t.Errorf("word 1: expected 0x4142, got %x", got)
	}
}

func TestAssembleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.fa")
	if err := os.WriteFile(path, []byte("fi"), 0644); err != nil {
		t.Fatal(err)
	}

	words, errs, err := parser.AssembleFile(path)
	if err != nil {
		t.Fatalf("AssembleFile failed: %v", err)
	}
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(words) != 1 || words[0] != 27 {
		t.Errorf("expected [27], got %v", words)
	}

	if _, _, err := parser.AssembleFile(filepath.Join(t.TempDir(), "missing.fa")); err == nil {
		t.Error("expected an error for a missing input file")
	}
}
