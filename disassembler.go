package zlox

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zlox-lang/zlox/ascii"
)

type DisasmToken int

const (
	DisasmToken_None DisasmToken = iota
	DisasmToken_Offset
	DisasmToken_Operator
	DisasmToken_Operand
	DisasmToken_Literal
)

// disasmTheme is a map from the tokens available for pretty printing
// a chunk to an ASCII color.
var disasmTheme = map[DisasmToken]string{
	DisasmToken_None:     ascii.Reset,
	DisasmToken_Offset:   ascii.DefaultTheme.Offset,
	DisasmToken_Operator: ascii.DefaultTheme.Operator,
	DisasmToken_Operand:  ascii.DefaultTheme.Operand,
	DisasmToken_Literal:  ascii.DefaultTheme.Literal,
}

type disasmFormatFunc func(input string, token DisasmToken) string

// Disassemble renders the chunk's bytecode one instruction per line,
// with operand indices resolved against the constant and varname
// pools.
func (c *Chunk) Disassemble() string {
	return c.disassemble(func(input string, _ DisasmToken) string {
		return input
	})
}

// HighlightDisassemble is Disassemble with terminal colors.
func (c *Chunk) HighlightDisassemble() string {
	return c.disassemble(func(input string, token DisasmToken) string {
		return disasmTheme[token] + input + disasmTheme[DisasmToken_None]
	})
}

func (c *Chunk) disassemble(format disasmFormatFunc) string {
	var s strings.Builder
	for offset := 0; offset < len(c.code); {
		offset = c.writeInstruction(&s, format, offset)
	}
	return s.String()
}

// writeInstruction renders the instruction at offset and returns the
// offset of the next one.
func (c *Chunk) writeInstruction(s *strings.Builder, format disasmFormatFunc, offset int) int {
	op := c.code[offset]
	s.WriteString(format(fmt.Sprintf("%06d  ", offset), DisasmToken_Offset))
	s.WriteString(format(fmt.Sprintf("%-16s", opNames[op]), DisasmToken_Operator))
	offset++

	switch op {
	case opGetConst:
		idx := c.code[offset]
		offset++
		s.WriteString(format(fmt.Sprintf("%3d", idx), DisasmToken_Operand))
		s.WriteString(format(fmt.Sprintf("  ; %s", quoteValue(c.constants[idx])), DisasmToken_Literal))

	case opDeclareGlobal, opSetGlobal, opGetGlobal:
		idx := c.code[offset]
		offset++
		s.WriteString(format(fmt.Sprintf("%3d", idx), DisasmToken_Operand))
		s.WriteString(format(fmt.Sprintf("  ; %s", c.varnames[idx]), DisasmToken_Literal))

	case opSetLocal, opGetLocal:
		slot := c.code[offset]
		offset++
		s.WriteString(format(fmt.Sprintf("%3d", slot), DisasmToken_Operand))
	}

	s.WriteRune('\n')
	return offset
}

// quoteValue renders a constant the way it reads in source: strings
// quoted, everything else as printed.
func quoteValue(v Value) string {
	if v.IsString() {
		return strconv.Quote(v.AsObject().Text())
	}
	return v.String()
}

// DumpTokens renders a scanned token stream one token per line, for
// the --debug dump.
func DumpTokens(source []byte, tokens []Token) string {
	var s strings.Builder
	for _, tok := range tokens {
		fmt.Fprintf(&s, "%4d  %-12s", tok.Line, tok.Type)
		if tok.Length > 0 {
			fmt.Fprintf(&s, " %s", tok.Lexeme(source))
		}
		s.WriteRune('\n')
	}
	return s.String()
}
