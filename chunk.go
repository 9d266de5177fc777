package zlox

// poolLimit caps the constant and varname pools: operands are a
// single byte, so indices above 255 cannot be encoded.
const poolLimit = 256

// Chunk is a unit of compiled output: the bytecode stream, the
// constant pool it indexes, and the pool of variable names referenced
// by the global-access instructions.  The VM's globals table borrows
// its keys from the varname pool, so a chunk must outlive any VM
// running it.
type Chunk struct {
	code      []byte
	constants []Value
	varnames  []string
}

func NewChunk() *Chunk { return &Chunk{} }

func (c *Chunk) write(bytes ...byte) {
	c.code = append(c.code, bytes...)
}

// AddConstant appends v to the constant pool and returns its index.
func (c *Chunk) AddConstant(v Value) (byte, error) {
	if len(c.constants) >= poolLimit {
		return 0, ErrTooManyConstants
	}
	c.constants = append(c.constants, v)
	return byte(len(c.constants) - 1), nil
}

// AddVarName appends name to the varname pool and returns its index.
func (c *Chunk) AddVarName(name string) (byte, error) {
	if len(c.varnames) >= poolLimit {
		return 0, ErrTooManyGlobals
	}
	c.varnames = append(c.varnames, name)
	return byte(len(c.varnames) - 1), nil
}

func (c *Chunk) Code() []byte { return c.code }
func (c *Chunk) Constant(i byte) Value { return c.constants[i] }
func (c *Chunk) VarName(i byte) string { return c.varnames[i] }
