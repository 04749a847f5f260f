package vm

// Opcode values. Every word fetched at CEA must be one of these or an
// operand word consumed by the preceding opcode.
const (
	OpPlace      = 0  // pl v r
	OpMove       = 1  // mv rs rd
	OpStore      = 2  // st
	OpLoad       = 3  // ld
	OpJump       = 4  // jm a
	OpJumpSet    = 5  // js a
	OpJumpClear  = 6  // jc a
	OpAdd        = 7  // a+
	OpSub        = 8  // a-
	OpNot        = 9  // a!
	OpInc        = 10 // ai
	OpDec        = 11 // ad
	OpMul        = 12 // a*
	OpDiv        = 13 // a/
	OpAnd        = 14 // a&
	OpOr         = 15 // a|
	OpXor        = 16 // a^
	OpShiftL     = 17 // al
	OpShiftR     = 18 // ar
	OpGreater    = 19 // gt
	OpLess       = 20 // lt
	OpGreaterEq  = 21 // ge
	OpLessEq     = 22 // le
	OpEqual      = 23 // eq
	OpNotEqual   = 24 // ne
	OpCall       = 25 // cl a
	OpReturn     = 26 // rt
	OpHalt       = 27 // fi
)

var opcodeNames = [28]string{
	"pl", "mv", "st", "ld", "jm", "js", "jc",
	"a+", "a-", "a!", "ai", "ad", "a*", "a/",
	"a&", "a|", "a^", "al", "ar",
	"gt", "lt", "ge", "le", "eq", "ne",
	"cl", "rt", "fi",
}

// OpcodeName returns the mnemonic for an opcode word
func OpcodeName(op uint64) string {
	if op < uint64(len(opcodeNames)) {
		return opcodeNames[op]
	}
	return "??"
}

// Register file indices
const (
	RegMCH = 0 // memory channel selector
	RegMAR = 1 // memory address register
	RegMDR = 2 // memory data register
	RegACC = 3 // accumulator
	RegDAT = 4 // data operand for accumulator ops
	RegCEA = 5 // current execution address
	RegCSP = 6 // callstack pointer

	NumRegisters = 7
)

var registerNames = [NumRegisters]string{
	"mch", "mar", "mdr", "acc", "dat", "cea", "csp",
}

// RegisterName returns the name of a register index
func RegisterName(reg int) string {
	if reg >= 0 && reg < NumRegisters {
		return registerNames[reg]
	}
	return "??"
}

// Memory channels selected by MCH
const (
	ChanMem    = 0 // main memory
	ChanInput  = 1 // byte input
	ChanOutput = 2 // byte output
	ChanStack  = 3 // callstack
)

// WordBytes is the size of one machine word in a ROM image
const WordBytes = 8

// EmptyStack is the CSP value when no callstack frames are live:
// the arithmetic predecessor of zero.
const EmptyStack = ^uint64(0)

// EOFWord is the value loaded into MDR when byte input is exhausted
const EOFWord = ^uint64(0)
