package parser

// Mnemonic describes one entry in the instruction mnemonic table:
// the opcode word emitted for it and the number of operand words it
// expects to follow in the source.
type Mnemonic struct {
	Opcode   uint64
	Operands int
}

// mnemonics is the 28-entry instruction table. Operand words are
// emitted as separate tokens immediately after the instruction.
var mnemonics = map[string]Mnemonic{
	"pl": {0, 2},
	"mv": {1, 2},
	"st": {2, 0},
	"ld": {3, 0},
	"jm": {4, 1},
	"js": {5, 1},
	"jc": {6, 1},
	"a+": {7, 0},
	"a-": {8, 0},
	"a!": {9, 0},
	"ai": {10, 0},
	"ad": {11, 0},
	"a*": {12, 0},
	"a/": {13, 0},
	"a&": {14, 0},
	"a|": {15, 0},
	"a^": {16, 0},
	"al": {17, 0},
	"ar": {18, 0},
	"gt": {19, 0},
	"lt": {20, 0},
	"ge": {21, 0},
	"le": {22, 0},
	"eq": {23, 0},
	"ne": {24, 0},
	"cl": {25, 1},
	"rt": {26, 0},
	"fi": {27, 0},
}

// LookupMnemonic returns the table entry for an instruction name
func LookupMnemonic(name string) (Mnemonic, bool) {
	m, ok := mnemonics[name]
	return m, ok
}
