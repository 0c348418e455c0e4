package sizer

import "golang.org/x/exp/constraints"

// valueFunc adapts a plain function to the Value interface, so constructors
// can close over their payload instead of declaring one struct per shape.
type valueFunc func(Visitor) error

func (f valueFunc) Describe(v Visitor) error { return f(v) }

// Entry is one key/value pair of a Map value.
type Entry struct {
	Key Value
	Val Value
}

// Field is one named field of a Struct or StructVariant value.
type Field struct {
	Name string
	Val  Value
}

// Leaf constructors, one per fixed-width shape.

func Bool(v bool) Value { return valueFunc(func(vis Visitor) error { return vis.Bool(v) }) }
func Int8(v int8) Value { return valueFunc(func(vis Visitor) error { return vis.Int8(v) }) }
func Int16(v int16) Value {
	return valueFunc(func(vis Visitor) error { return vis.Int16(v) })
}
func Int32(v int32) Value {
	return valueFunc(func(vis Visitor) error { return vis.Int32(v) })
}
func Int64(v int64) Value {
	return valueFunc(func(vis Visitor) error { return vis.Int64(v) })
}
func Uint8(v uint8) Value {
	return valueFunc(func(vis Visitor) error { return vis.Uint8(v) })
}
func Uint16(v uint16) Value {
	return valueFunc(func(vis Visitor) error { return vis.Uint16(v) })
}
func Uint32(v uint32) Value {
	return valueFunc(func(vis Visitor) error { return vis.Uint32(v) })
}
func Uint64(v uint64) Value {
	return valueFunc(func(vis Visitor) error { return vis.Uint64(v) })
}
func Float32(v float32) Value {
	return valueFunc(func(vis Visitor) error { return vis.Float32(v) })
}
func Float64(v float64) Value {
	return valueFunc(func(vis Visitor) error { return vis.Float64(v) })
}
func Char(v rune) Value { return valueFunc(func(vis Visitor) error { return vis.Char(v) }) }

// Int128 builds a 128-bit signed integer leaf from its 64-bit halves, most
// significant first. Uint128 is its unsigned counterpart.

func Int128(hi int64, lo uint64) Value {
	return valueFunc(func(vis Visitor) error { return vis.Int128(hi, lo) })
}

func Uint128(hi, lo uint64) Value {
	return valueFunc(func(vis Visitor) error { return vis.Uint128(hi, lo) })
}

// String builds a text leaf; its size contribution is the byte length of v.
func String(v string) Value {
	return valueFunc(func(vis Visitor) error { return vis.String(v) })
}

// Bytes builds a byte-blob leaf. The blob is not copied; the caller must not
// mutate it while a traversal is in flight.
func Bytes(v []byte) Value {
	return valueFunc(func(vis Visitor) error { return vis.Bytes(v) })
}

// None builds an absent option and Some a present one wrapping v.

func None() Value { return valueFunc(func(vis Visitor) error { return vis.None() }) }

func Some(v Value) Value {
	return valueFunc(func(vis Visitor) error { return vis.Some(v) })
}

// Unit shapes.

func Unit() Value { return valueFunc(func(vis Visitor) error { return vis.Unit() }) }

func UnitStruct(name string) Value {
	return valueFunc(func(vis Visitor) error { return vis.UnitStruct(name) })
}

func UnitVariant(name string, index uint32, variant string) Value {
	return valueFunc(func(vis Visitor) error { return vis.UnitVariant(name, index, variant) })
}

// Newtype shapes.

func NewtypeStruct(name string, v Value) Value {
	return valueFunc(func(vis Visitor) error { return vis.NewtypeStruct(name, v) })
}

func NewtypeVariant(name string, index uint32, variant string, v Value) Value {
	return valueFunc(func(vis Visitor) error { return vis.NewtypeVariant(name, index, variant, v) })
}

// Seq builds a sequence of the given elements, visited in order.
func Seq(items ...Value) Value {
	return valueFunc(func(vis Visitor) error {
		sv, err := vis.Seq(len(items))
		if err != nil {
			return err
		}
		return feedSeq(sv, items)
	})
}

// Tuple builds a fixed-arity tuple of the given elements.
func Tuple(items ...Value) Value {
	return valueFunc(func(vis Visitor) error {
		sv, err := vis.Tuple(len(items))
		if err != nil {
			return err
		}
		return feedSeq(sv, items)
	})
}

// TupleStruct builds a named tuple struct of the given elements.
func TupleStruct(name string, items ...Value) Value {
	return valueFunc(func(vis Visitor) error {
		sv, err := vis.TupleStruct(name, len(items))
		if err != nil {
			return err
		}
		return feedSeq(sv, items)
	})
}

// TupleVariant builds a tuple-carrying enum variant of the given elements.
func TupleVariant(name string, index uint32, variant string, items ...Value) Value {
	return valueFunc(func(vis Visitor) error {
		sv, err := vis.TupleVariant(name, index, variant, len(items))
		if err != nil {
			return err
		}
		return feedSeq(sv, items)
	})
}

// Map builds a map of the given entries, visited in the given order.
func Map(entries ...Entry) Value {
	return valueFunc(func(vis Visitor) error {
		mv, err := vis.Map(len(entries))
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := mv.Key(entry.Key); err != nil {
				return err
			}
			if err := mv.Value(entry.Val); err != nil {
				return err
			}
		}
		return mv.End()
	})
}

// Struct builds a named struct of the given fields, visited in declaration
// order.
func Struct(name string, fields ...Field) Value {
	return valueFunc(func(vis Visitor) error {
		sv, err := vis.Struct(name, len(fields))
		if err != nil {
			return err
		}
		return feedStruct(sv, fields)
	})
}

// StructVariant builds a struct-carrying enum variant of the given fields.
func StructVariant(name string, index uint32, variant string, fields ...Field) Value {
	return valueFunc(func(vis Visitor) error {
		sv, err := vis.StructVariant(name, index, variant, len(fields))
		if err != nil {
			return err
		}
		return feedStruct(sv, fields)
	})
}

// Nums builds a sequence from a slice of any fixed-width numeric type,
// dispatching each element to the shape of its width.
func Nums[T constraints.Integer | constraints.Float](vs []T) Value {
	items := make([]Value, len(vs))
	for i, v := range vs {
		items[i] = ValueOf(v)
	}
	return Seq(items...)
}

func feedSeq(sv SeqVisitor, items []Value) error {
	for _, item := range items {
		if err := sv.Element(item); err != nil {
			return err
		}
	}
	return sv.End()
}

func feedStruct(sv StructVisitor, fields []Field) error {
	for _, field := range fields {
		if err := sv.Field(field.Name, field.Val); err != nil {
			return err
		}
	}
	return sv.End()
}
