package zlox

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Interpret runs a whole program: it scans source, compiles the token
// stream into a chunk, and executes the chunk, writing every `print`
// to out.  The configuration object toggles the debug dumps and the
// compile-only disassembly mode; when it carries a source path, error
// messages are prefixed with it.
func Interpret(source []byte, out io.Writer, cfg *Config) error {
	err := interpret(source, out, cfg)
	if err != nil {
		if path := cfg.GetString("source.path"); path != "" {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return err
}

func interpret(source []byte, out io.Writer, cfg *Config) error {
	ctx := NewContext()
	ctx.SetDebug(cfg.GetBool("debug"))

	tokens, err := NewScanner(source).Scan()
	if err != nil {
		return err
	}
	if ctx.Debug() {
		fmt.Fprint(os.Stderr, DumpTokens(source, tokens))
	}

	chunk, err := Compile(source, tokens, ctx)
	if err != nil {
		return err
	}
	if ctx.Debug() {
		fmt.Fprint(os.Stderr, chunk.HighlightDisassemble())
	}

	if cfg.GetBool("disassemble") {
		_, err := io.WriteString(out, chunk.Disassemble())
		return err
	}

	vm := NewVM(chunk, ctx, out)
	if err := vm.Run(); err != nil {
		if ctx.Debug() && errors.Is(err, ErrStackNotEmpty) {
			vm.StackDump(os.Stderr)
		}
		return err
	}
	return nil
}
