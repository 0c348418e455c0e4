package sizer

// Value is the capability interface for anything that can present its own
// shape to a Visitor. Implementations call back into the visitor exactly once
// per sub-value, depth-first and left-to-right, and forward any error the
// visitor returns without recovering from it.
type Value interface {
	Describe(v Visitor) error
}

// Visitor enumerates the closed set of value shapes. Every shape a Value may
// take has exactly one callback here, so the compiler verifies that an
// implementation covers all of them; there is no "unknown shape" escape
// hatch at runtime.
//
// 128-bit integers have no native Go representation and are passed as two
// 64-bit halves, most significant first.
type Visitor interface {
	// Fixed-width leaves.
	Bool(v bool) error
	Int8(v int8) error
	Int16(v int16) error
	Int32(v int32) error
	Int64(v int64) error
	Int128(hi int64, lo uint64) error
	Uint8(v uint8) error
	Uint16(v uint16) error
	Uint32(v uint32) error
	Uint64(v uint64) error
	Uint128(hi, lo uint64) error
	Float32(v float32) error
	Float64(v float64) error
	Char(v rune) error

	// Variable-width leaves.
	String(v string) error
	Bytes(v []byte) error

	// Option.
	None() error
	Some(v Value) error

	// Unit shapes.
	Unit() error
	UnitStruct(name string) error
	UnitVariant(name string, index uint32, variant string) error

	// Newtype shapes, wrapping exactly one value.
	NewtypeStruct(name string, v Value) error
	NewtypeVariant(name string, index uint32, variant string, v Value) error

	// Composite openers. The returned sub-visitor receives the children in
	// the producer's own order. A length of -1 means the producer cannot
	// cheaply know the count up front.
	Seq(length int) (SeqVisitor, error)
	Tuple(length int) (SeqVisitor, error)
	TupleStruct(name string, length int) (SeqVisitor, error)
	TupleVariant(name string, index uint32, variant string, length int) (SeqVisitor, error)
	Map(length int) (MapVisitor, error)
	Struct(name string, length int) (StructVisitor, error)
	StructVariant(name string, index uint32, variant string, length int) (StructVisitor, error)
}

// SeqVisitor receives the elements of a sequence, tuple, tuple struct or
// tuple variant.
type SeqVisitor interface {
	Element(v Value) error
	End() error
}

// MapVisitor receives the entries of a map, one Key/Value pair per entry.
// The entry order is whatever the producer enumerates; it need not be sorted.
type MapVisitor interface {
	Key(k Value) error
	Value(v Value) error
	End() error
}

// StructVisitor receives the fields of a struct or struct variant in
// declaration order.
type StructVisitor interface {
	Field(name string, v Value) error
	End() error
}
