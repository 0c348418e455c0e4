package sizer

// Estimator is a Visitor that computes a lower bound for the encoded size of
// the value it visits. Every fixed-width leaf contributes its width, strings
// and byte blobs contribute their byte length, and structural shapes
// (options, tuples, structs, maps, variants) contribute nothing of their own.
// The bound deliberately omits tag, discriminant and length-prefix overhead,
// so it never exceeds the true encoded size for any encoder that writes at
// least the payload bytes — and may be strictly less.
//
// The zero value is ready to use. One Estimator serves exactly one
// traversal; do not reuse an instance across independent top-level calls and
// do not share one between goroutines.
type Estimator struct {
	total int
}

// Statically assert that the estimator covers the full shape protocol.
var (
	_ Visitor       = (*Estimator)(nil)
	_ SeqVisitor    = (*Estimator)(nil)
	_ MapVisitor    = (*Estimator)(nil)
	_ StructVisitor = (*Estimator)(nil)
)

// Estimate computes a lower bound for the encoded size of v in bytes.
// Calling it twice on equal values yields equal totals, and the input is
// never mutated. If v fails while describing itself, the error is surfaced
// unchanged and the partial count is discarded.
func Estimate(v Value) (int, error) {
	var e Estimator
	if err := e.describe(v); err != nil {
		return 0, err
	}
	return e.Total(), nil
}

// Total returns the bytes accumulated so far.
func (e *Estimator) Total() int { return e.total }

// describe dispatches a child into the same accumulator, so nested
// composites never lose partial sums.
func (e *Estimator) describe(v Value) error {
	if v == nil {
		return ErrNilValue
	}
	return v.Describe(e)
}

// Fixed-width leaves contribute their width regardless of value.

func (e *Estimator) Bool(bool) error              { e.total++; return nil }
func (e *Estimator) Int8(int8) error              { e.total++; return nil }
func (e *Estimator) Int16(int16) error            { e.total += 2; return nil }
func (e *Estimator) Int32(int32) error            { e.total += 4; return nil }
func (e *Estimator) Int64(int64) error            { e.total += 8; return nil }
func (e *Estimator) Int128(int64, uint64) error   { e.total += 16; return nil }
func (e *Estimator) Uint8(uint8) error            { e.total++; return nil }
func (e *Estimator) Uint16(uint16) error          { e.total += 2; return nil }
func (e *Estimator) Uint32(uint32) error          { e.total += 4; return nil }
func (e *Estimator) Uint64(uint64) error          { e.total += 8; return nil }
func (e *Estimator) Uint128(uint64, uint64) error { e.total += 16; return nil }
func (e *Estimator) Float32(float32) error        { e.total += 4; return nil }
func (e *Estimator) Float64(float64) error        { e.total += 8; return nil }

// Char counts the in-memory width of a rune, which is a 4-byte Unicode
// scalar, not its UTF-8 length.
func (e *Estimator) Char(rune) error { e.total += 4; return nil }

// Variable-width leaves contribute their byte length. For strings that is
// the length of the encoded text, not the character count.

func (e *Estimator) String(v string) error { e.total += len(v); return nil }
func (e *Estimator) Bytes(v []byte) error  { e.total += len(v); return nil }

// Option: absence is free, presence costs exactly the wrapped value.

func (e *Estimator) None() error        { return nil }
func (e *Estimator) Some(v Value) error { return e.describe(v) }

// Unit shapes carry no payload.

func (e *Estimator) Unit() error                              { return nil }
func (e *Estimator) UnitStruct(string) error                  { return nil }
func (e *Estimator) UnitVariant(string, uint32, string) error { return nil }

// Newtype shapes cost exactly the wrapped value; names and variant tags are
// free.

func (e *Estimator) NewtypeStruct(_ string, v Value) error { return e.describe(v) }
func (e *Estimator) NewtypeVariant(_ string, _ uint32, _ string, v Value) error {
	return e.describe(v)
}

// Composite openers add nothing of their own: the estimator hands itself
// back as the sub-visitor so every child lands in the same accumulator.
// Declared lengths are ignored; only visited children count.

func (e *Estimator) Seq(int) (SeqVisitor, error)                 { return e, nil }
func (e *Estimator) Tuple(int) (SeqVisitor, error)               { return e, nil }
func (e *Estimator) TupleStruct(string, int) (SeqVisitor, error) { return e, nil }
func (e *Estimator) TupleVariant(string, uint32, string, int) (SeqVisitor, error) {
	return e, nil
}
func (e *Estimator) Map(int) (MapVisitor, error)               { return e, nil }
func (e *Estimator) Struct(string, int) (StructVisitor, error) { return e, nil }
func (e *Estimator) StructVariant(string, uint32, string, int) (StructVisitor, error) {
	return e, nil
}

func (e *Estimator) Element(v Value) error         { return e.describe(v) }
func (e *Estimator) Key(k Value) error             { return e.describe(k) }
func (e *Estimator) Value(v Value) error           { return e.describe(v) }
func (e *Estimator) Field(_ string, v Value) error { return e.describe(v) }
func (e *Estimator) End() error                    { return nil }
