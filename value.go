package zlox

import "strconv"

// ValueKind enumerates the variants a Value can hold.
type ValueKind int

const (
	ValueNumber ValueKind = iota
	ValueBoolean
	ValueNil
	ValueObject
)

var valueKindNames = map[ValueKind]string{
	ValueNumber:  "number",
	ValueBoolean: "boolean",
	ValueNil:     "nil",
	ValueObject:  "object",
}

func (k ValueKind) String() string { return valueKindNames[k] }

// Value is the tagged representation every expression evaluates to.
// Values are plain structs and are copied freely; the object arm
// carries a pointer to storage owned by the Context.
type Value struct {
	kind ValueKind
	num  float32
	b    bool
	obj  *Obj
}

func NewNumber(n float32) Value { return Value{kind: ValueNumber, num: n} }
func NewBoolean(b bool) Value { return Value{kind: ValueBoolean, b: b} }
func NewNil() Value { return Value{kind: ValueNil} }
func NewObject(obj *Obj) Value { return Value{kind: ValueObject, obj: obj} }

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNumber() bool  { return v.kind == ValueNumber }
func (v Value) IsBoolean() bool { return v.kind == ValueBoolean }
func (v Value) IsNil() bool     { return v.kind == ValueNil }
func (v Value) IsObject() bool  { return v.kind == ValueObject }

func (v Value) IsString() bool {
	return v.kind == ValueObject && v.obj.kind == ObjString
}

func (v Value) AsNumber() float32 { return v.num }
func (v Value) AsBoolean() bool   { return v.b }
func (v Value) AsObject() *Obj    { return v.obj }

// String renders the value the way the `print` statement writes it:
// numbers in their shortest round-trip decimal form, booleans as
// true/false, nil as nil, and strings as their raw bytes.
func (v Value) String() string {
	switch v.kind {
	case ValueNumber:
		return strconv.FormatFloat(float64(v.num), 'g', -1, 32)
	case ValueBoolean:
		return strconv.FormatBool(v.b)
	case ValueNil:
		return "nil"
	case ValueObject:
		return v.obj.Text()
	default:
		return "<invalid>"
	}
}

// Equals implements the language's `==` operator.  Values of
// different kinds are never equal.  Strings compare by object
// identity, which is sound because the Context interns every string
// it hands out.
func (v Value) Equals(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case ValueNumber:
		return v.num == o.num
	case ValueBoolean:
		return v.b == o.b
	case ValueNil:
		return true
	case ValueObject:
		return v.obj == o.obj
	default:
		return false
	}
}

// ObjKind enumerates the heap object variants.  Strings are the only
// kind the language currently allocates.
type ObjKind int

const (
	ObjString ObjKind = iota
)

// Obj is a heap-allocated object.  Every Obj is registered with the
// Context that allocated it and lives until the Context goes away.
type Obj struct {
	kind ObjKind
	str  string
}

func (o *Obj) Kind() ObjKind { return o.kind }

// Text returns the string payload of a string object.
func (o *Obj) Text() string { return o.str }
