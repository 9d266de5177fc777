package zlox

// Context is the shared state threaded through the compiler and the
// VM.  It owns every heap object either of them allocates, and the
// interning table that canonicalizes string storage.  The context
// must outlive any chunk compiled against it and any VM executing
// such a chunk.
type Context struct {
	objects []*Obj
	strings *Table
	debug   bool
}

func NewContext() *Context {
	return &Context{strings: NewTable()}
}

func (c *Context) SetDebug(v bool) { c.debug = v }
func (c *Context) Debug() bool     { return c.debug }

// Intern returns the canonical string object for text.  The first
// request for a given byte sequence allocates an object and registers
// it; every later request with byte-equal text returns the same
// pointer.  That makes `==` on strings a pointer comparison.
func (c *Context) Intern(text string) *Obj {
	if v, ok := c.strings.Find(text); ok {
		return v.AsObject()
	}
	obj := &Obj{kind: ObjString, str: text}
	c.objects = append(c.objects, obj)
	c.strings.Insert(text, NewObject(obj))
	return obj
}

// ObjectCount returns how many heap objects the context has
// allocated.  The debug dump reports it.
func (c *Context) ObjectCount() int { return len(c.objects) }
