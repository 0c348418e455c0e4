package sizer

import (
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// layoutCache avoids the high performance cost of re-walking struct types
// with reflection on every call. Using a concurrent map makes it safe to
// share across goroutines; layouts are immutable once stored.
var layoutCache = xsync.NewMap[reflect.Type, *structLayout]()

// structLayout records the exported fields of a struct type in declaration
// order.
type structLayout struct {
	name   string
	fields []structField
}

type structField struct {
	name  string
	index int
}

var valueType = reflect.TypeOf((*Value)(nil)).Elem()

// Of computes a lower bound for the encoded size of any Go value. It is
// shorthand for Estimate(ValueOf(v)).
func Of(v any) (int, error) { return Estimate(ValueOf(v)) }

// ValueOf adapts an arbitrary Go value to the Value interface using
// reflection:
//
//   - booleans, fixed-width integers, floats, strings and []byte map to the
//     leaf of their width; platform-width int/uint/uintptr map by their
//     actual in-memory size
//   - other slices and arrays map to sequences, maps to maps, and structs to
//     structs over their exported fields in declaration order
//   - nil pointers and interfaces map to an absent option, non-nil ones to a
//     present option around the pointee
//   - a value that already implements Value describes itself
//
// Channels, funcs, complex numbers and unsafe pointers have no counterpart
// in the shape protocol; describing them fails with ErrUnsupportedType.
func ValueOf(v any) Value {
	if v == nil {
		return None()
	}
	if val, ok := v.(Value); ok {
		return val
	}
	return reflectValue{rv: reflect.ValueOf(v)}
}

type reflectValue struct{ rv reflect.Value }

func (r reflectValue) Describe(vis Visitor) error { return describeReflect(r.rv, vis) }

func describeReflect(rv reflect.Value, vis Visitor) error {
	if !rv.IsValid() {
		return vis.None()
	}

	// A nested value may implement Value itself; let it describe its own
	// shape instead of walking its representation.
	if rv.Type().Implements(valueType) {
		if (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && rv.IsNil() {
			return vis.None()
		}
		return rv.Interface().(Value).Describe(vis)
	}

	switch rv.Kind() {
	case reflect.Bool:
		return vis.Bool(rv.Bool())
	case reflect.Int8:
		return vis.Int8(int8(rv.Int()))
	case reflect.Int16:
		return vis.Int16(int16(rv.Int()))
	case reflect.Int32:
		return vis.Int32(int32(rv.Int()))
	case reflect.Int64:
		return vis.Int64(rv.Int())
	case reflect.Int:
		if rv.Type().Size() == 4 {
			return vis.Int32(int32(rv.Int()))
		}
		return vis.Int64(rv.Int())
	case reflect.Uint8:
		return vis.Uint8(uint8(rv.Uint()))
	case reflect.Uint16:
		return vis.Uint16(uint16(rv.Uint()))
	case reflect.Uint32:
		return vis.Uint32(uint32(rv.Uint()))
	case reflect.Uint64:
		return vis.Uint64(rv.Uint())
	case reflect.Uint, reflect.Uintptr:
		if rv.Type().Size() == 4 {
			return vis.Uint32(uint32(rv.Uint()))
		}
		return vis.Uint64(rv.Uint())
	case reflect.Float32:
		return vis.Float32(float32(rv.Float()))
	case reflect.Float64:
		return vis.Float64(rv.Float())
	case reflect.String:
		return vis.String(rv.String())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return vis.Bytes(rv.Bytes())
		}
		return describeSeq(rv, vis)
	case reflect.Array:
		return describeSeq(rv, vis)
	case reflect.Map:
		return describeMap(rv, vis)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return vis.None()
		}
		return vis.Some(reflectValue{rv: rv.Elem()})
	case reflect.Struct:
		return describeStruct(rv, vis)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Kind())
	}
}

func describeSeq(rv reflect.Value, vis Visitor) error {
	sv, err := vis.Seq(rv.Len())
	if err != nil {
		return err
	}
	for i := 0; i < rv.Len(); i++ {
		if err := sv.Element(reflectValue{rv: rv.Index(i)}); err != nil {
			return err
		}
	}
	return sv.End()
}

func describeMap(rv reflect.Value, vis Visitor) error {
	mv, err := vis.Map(rv.Len())
	if err != nil {
		return err
	}
	iter := rv.MapRange()
	for iter.Next() {
		if err := mv.Key(reflectValue{rv: iter.Key()}); err != nil {
			return err
		}
		if err := mv.Value(reflectValue{rv: iter.Value()}); err != nil {
			return err
		}
	}
	return mv.End()
}

func describeStruct(rv reflect.Value, vis Visitor) error {
	layout := layoutOf(rv.Type())
	sv, err := vis.Struct(layout.name, len(layout.fields))
	if err != nil {
		return err
	}
	for _, f := range layout.fields {
		if err := sv.Field(f.name, reflectValue{rv: rv.Field(f.index)}); err != nil {
			return err
		}
	}
	return sv.End()
}

// layoutOf returns the cached field layout for a struct type, computing and
// storing it on first use. Unexported fields are invisible to the protocol.
func layoutOf(t reflect.Type) *structLayout {
	if layout, ok := layoutCache.Load(t); ok {
		return layout
	}

	layout := &structLayout{name: t.Name()}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		layout.fields = append(layout.fields, structField{name: f.Name, index: i})
	}

	layoutCache.Store(t, layout)
	return layout
}
