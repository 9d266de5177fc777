package zlox

import (
	"fmt"
	"io"
)

// NOTE: changing the order of these variants will break chunk ABI
const (
	opExit byte = iota
	opPop
	opPrint
	opGetConst
	opDeclareGlobal
	opSetGlobal
	opGetGlobal
	opSetLocal
	opGetLocal
	opAdd
	opSubtract
	opMultiply
	opDivide
	opNegate
	opLessThan
	opGreaterThan
	opEquals
)

var opNames = map[byte]string{
	opExit:          "exit",
	opPop:           "pop",
	opPrint:         "print",
	opGetConst:      "get_const",
	opDeclareGlobal: "declare_global",
	opSetGlobal:     "set_global",
	opGetGlobal:     "get_global",
	opSetLocal:      "set_local",
	opGetLocal:      "get_local",
	opAdd:           "add",
	opSubtract:      "subtract",
	opMultiply:      "multiply",
	opDivide:        "divide",
	opNegate:        "negate",
	opLessThan:      "less_than",
	opGreaterThan:   "greater_than",
	opEquals:        "equals",
}

// VM executes one chunk.  It owns the operand stack and the globals
// table; the globals table borrows its keys from the chunk's varname
// pool, so the VM must be torn down before the chunk is.
type VM struct {
	chunk   *Chunk
	ctx     *Context
	out     io.Writer
	stack   []Value
	globals *Table
	ip      int
}

func NewVM(chunk *Chunk, ctx *Context, out io.Writer) *VM {
	return &VM{chunk: chunk, ctx: ctx, out: out, globals: NewTable()}
}

func (vm *VM) push(v Value) { vm.stack = append(vm.stack, v) }

func (vm *VM) pop() Value {
	v := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return v
}

// peek reads n values below the top without popping.  The arithmetic
// handlers use it to type-check operands before touching the stack.
func (vm *VM) peek(n int) Value { return vm.stack[len(vm.stack)-1-n] }

// fetch reads the byte under the instruction pointer and advances.
// Opcodes and their operands come through the same primitive.
func (vm *VM) fetch() byte {
	b := vm.chunk.code[vm.ip]
	vm.ip++
	return b
}

// Run executes the chunk until its exit instruction.  Any error stops
// execution immediately and leaves the VM unusable.
func (vm *VM) Run() error {
	for {
		switch op := vm.fetch(); op {
		case opExit:
			if len(vm.stack) != 0 {
				return fmt.Errorf("%w: %d values left", ErrStackNotEmpty, len(vm.stack))
			}
			return nil

		case opPop:
			vm.pop()

		case opPrint:
			if _, err := fmt.Fprintf(vm.out, "%s\n", vm.pop()); err != nil {
				return err
			}

		case opGetConst:
			vm.push(vm.chunk.Constant(vm.fetch()))

		case opDeclareGlobal:
			vm.globals.Insert(vm.chunk.VarName(vm.fetch()), vm.pop())

		case opSetGlobal:
			name := vm.chunk.VarName(vm.fetch())
			if !vm.globals.Has(name) {
				return fmt.Errorf("%w: %s", ErrUndeclaredVariable, name)
			}
			// Assignment is an expression: the value stays on the
			// stack as its result.
			vm.globals.Insert(name, vm.peek(0))

		case opGetGlobal:
			name := vm.chunk.VarName(vm.fetch())
			v, ok := vm.globals.Find(name)
			if !ok {
				return fmt.Errorf("%w: %s", ErrUndeclaredVariable, name)
			}
			vm.push(v)

		case opSetLocal:
			// The slot is the local's home position on this same
			// stack; the assigned value stays on top.
			vm.stack[vm.fetch()] = vm.peek(0)

		case opGetLocal:
			vm.push(vm.stack[vm.fetch()])

		case opAdd:
			if err := vm.add(); err != nil {
				return err
			}

		case opSubtract, opMultiply, opDivide:
			a, b, err := vm.numberOperands(op)
			if err != nil {
				return err
			}
			switch op {
			case opSubtract:
				vm.push(NewNumber(a - b))
			case opMultiply:
				vm.push(NewNumber(a * b))
			default:
				vm.push(NewNumber(a / b))
			}

		case opNegate:
			if !vm.peek(0).IsNumber() {
				return fmt.Errorf("%w: operand of `-` must be a number, got %s",
					ErrTypeMismatch, vm.peek(0).Kind())
			}
			vm.push(NewNumber(-vm.pop().AsNumber()))

		case opLessThan, opGreaterThan:
			a, b, err := vm.numberOperands(op)
			if err != nil {
				return err
			}
			if op == opLessThan {
				vm.push(NewBoolean(a < b))
			} else {
				vm.push(NewBoolean(a > b))
			}

		case opEquals:
			b := vm.pop()
			a := vm.pop()
			vm.push(NewBoolean(a.Equals(b)))

		default:
			return fmt.Errorf("unknown opcode 0x%02x at offset %d", op, vm.ip-1)
		}
	}
}

// add handles the one polymorphic operator: numbers add, strings
// concatenate.  The concatenation result goes through the interning
// table so equality on it stays an identity comparison.
func (vm *VM) add() error {
	a, b := vm.peek(1), vm.peek(0)
	switch {
	case a.IsNumber() && b.IsNumber():
		vm.pop()
		vm.pop()
		vm.push(NewNumber(a.AsNumber() + b.AsNumber()))
		return nil
	case a.IsString() && b.IsString():
		vm.pop()
		vm.pop()
		obj := vm.ctx.Intern(a.AsObject().Text() + b.AsObject().Text())
		vm.push(NewObject(obj))
		return nil
	default:
		return fmt.Errorf("%w: operands of `+` must be two numbers or two strings, got %s and %s",
			ErrTypeMismatch, a.Kind(), b.Kind())
	}
}

func (vm *VM) numberOperands(op byte) (float32, float32, error) {
	a, b := vm.peek(1), vm.peek(0)
	if !a.IsNumber() || !b.IsNumber() {
		return 0, 0, fmt.Errorf("%w: operands of `%s` must be numbers, got %s and %s",
			ErrTypeMismatch, opNames[op], a.Kind(), b.Kind())
	}
	vm.pop()
	vm.pop()
	return a.AsNumber(), b.AsNumber(), nil
}

// StackDump writes the operand stack bottom to top, one value per
// line.  The CLI prints it under --debug when execution ends with a
// non-empty stack.
func (vm *VM) StackDump(w io.Writer) {
	fmt.Fprintf(w, "stack (%d values, %d objects live):\n", len(vm.stack), vm.ctx.ObjectCount())
	for i, v := range vm.stack {
		fmt.Fprintf(w, "  [%03d] %s %s\n", i, v.Kind(), v)
	}
}
