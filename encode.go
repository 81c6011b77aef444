package onecode

import (
	stdencoding "encoding"
	"reflect"
	"sort"
	"strconv"

	"github.com/chaisql/onecode/internal/encoding"
	"github.com/cockroachdb/errors"
)

// Marshaler is implemented by types that encode themselves.
// MarshalOneCode must write exactly one value to the encoder.
type Marshaler interface {
	MarshalOneCode(*Encoder) error
}

// An Encoder appends 1code values to a buffer.
// The zero value is ready to use.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an encoder that appends to dst.
func NewEncoder(dst []byte) *Encoder {
	return &Encoder{buf: dst}
}

// Bytes returns the encoded data.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Encode writes v to the buffer. See the package documentation for
// the mapping between Go values and 1code.
func (e *Encoder) Encode(v any) error {
	if v == nil {
		e.WriteNull()
		return nil
	}

	return e.encodeValue(reflect.ValueOf(v))
}

func (e *Encoder) WriteNull() {
	e.buf = encoding.EncodeNull(e.buf)
}

func (e *Encoder) WriteBool(x bool) {
	e.buf = encoding.EncodeBoolean(e.buf, x)
}

func (e *Encoder) WriteInt(x int64) {
	e.buf = encoding.EncodeInteger(e.buf, x)
}

func (e *Encoder) WriteUint(x uint64) {
	e.buf = encoding.EncodeInteger(e.buf, x)
}

// WriteFloat writes x as an integer token holding its decimal representation.
// bitSize is 32 for float32 values, 64 otherwise.
func (e *Encoder) WriteFloat(x float64, bitSize int) {
	e.buf = encoding.EncodeFloat(e.buf, x, bitSize)
}

func (e *Encoder) WriteString(x string) {
	e.buf = encoding.EncodeText(e.buf, x)
}

// BeginList opens a list. Each element must be written with a single
// call to a Write or Encode method, then the list closed with EndList.
func (e *Encoder) BeginList() {
	e.buf = encoding.EncodeListStart(e.buf)
}

func (e *Encoder) EndList() {
	e.buf = encoding.EncodeEnd(e.buf)
}

// BeginDict opens a dictionary. Keys and values must be written alternately,
// then the dictionary closed with EndDict.
func (e *Encoder) BeginDict() {
	e.buf = encoding.EncodeDictStart(e.buf)
}

func (e *Encoder) EndDict() {
	e.buf = encoding.EncodeEnd(e.buf)
}

// WriteUnitVariant writes a variant without payload, as a bare string.
func (e *Encoder) WriteUnitVariant(name string) {
	e.WriteString(name)
}

// WriteNewtypeVariant writes a variant carrying a single value.
func (e *Encoder) WriteNewtypeVariant(name string, v any) error {
	e.BeginDict()
	e.WriteString(name)
	if err := e.Encode(v); err != nil {
		return err
	}
	e.EndDict()
	return nil
}

// BeginTupleVariant opens a variant whose payload is a list of values.
// It must be closed with EndTupleVariant.
func (e *Encoder) BeginTupleVariant(name string) {
	e.BeginDict()
	e.WriteString(name)
	e.BeginList()
}

func (e *Encoder) EndTupleVariant() {
	e.EndList()
	e.EndDict()
}

// BeginStructVariant opens a variant whose payload is a dictionary of fields.
// It must be closed with EndStructVariant.
func (e *Encoder) BeginStructVariant(name string) {
	e.BeginDict()
	e.WriteString(name)
	e.BeginDict()
}

func (e *Encoder) EndStructVariant() {
	e.EndDict()
	e.EndDict()
}

func (e *Encoder) encodeValue(v reflect.Value) error {
	if !v.IsValid() {
		e.WriteNull()
		return nil
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			e.WriteNull()
			return nil
		}
	case reflect.Interface:
		if v.IsNil() {
			e.WriteNull()
			return nil
		}
		return e.encodeValue(v.Elem())
	}

	if v.CanInterface() {
		if ok, err := e.encodeCapability(v.Interface(), v); ok {
			return err
		}
	}
	if v.Kind() != reflect.Pointer && !v.CanAddr() && v.CanInterface() && reflect.PointerTo(v.Type()).Implements(enumType) {
		// pointer receiver on a value that isn't addressable
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		v = p.Elem()
	}
	if v.Kind() != reflect.Pointer && v.CanAddr() && v.Addr().CanInterface() {
		if ok, err := e.encodeCapability(v.Addr().Interface(), v.Addr()); ok {
			return err
		}
	}

	return e.encodeKind(v)
}

// encodeCapability encodes x if it implements one of the interfaces
// that take precedence over reflection. It reports whether it did.
func (e *Encoder) encodeCapability(x any, v reflect.Value) (bool, error) {
	switch t := x.(type) {
	case Marshaler:
		return true, t.MarshalOneCode(e)
	case Enum:
		return true, e.encodeEnum(t, v)
	case stdencoding.TextMarshaler:
		text, err := t.MarshalText()
		if err != nil {
			return true, errors.WithStack(err)
		}
		e.WriteString(string(text))
		return true, nil
	}

	return false, nil
}

// encodeKind encodes v based on its kind only.
func (e *Encoder) encodeKind(v reflect.Value) error {
	switch v.Kind() {
	case reflect.Bool:
		e.WriteBool(v.Bool())
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.WriteInt(v.Int())
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		e.WriteUint(v.Uint())
		return nil
	case reflect.Float32:
		e.WriteFloat(v.Float(), 32)
		return nil
	case reflect.Float64:
		e.WriteFloat(v.Float(), 64)
		return nil
	case reflect.String:
		e.WriteString(v.String())
		return nil
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			e.WriteNull()
			return nil
		}
		return e.encodeValue(v.Elem())
	case reflect.Slice:
		if v.IsNil() {
			e.WriteNull()
			return nil
		}
		return e.encodeList(v)
	case reflect.Array:
		return e.encodeList(v)
	case reflect.Map:
		if v.IsNil() {
			e.WriteNull()
			return nil
		}
		return e.encodeMap(v)
	case reflect.Struct:
		// unit structs carry no data
		if v.NumField() == 0 {
			e.WriteNull()
			return nil
		}
		e.BeginDict()
		if err := e.encodeFields(v); err != nil {
			return err
		}
		e.EndDict()
		return nil
	}

	return NewErrUnsupportedType(v.Type(), "")
}

func (e *Encoder) encodeList(v reflect.Value) error {
	e.BeginList()
	l := v.Len()
	for i := 0; i < l; i++ {
		if err := e.encodeValue(v.Index(i)); err != nil {
			return err
		}
	}
	e.EndList()
	return nil
}

// encodeFields writes the name and value of each field of v,
// without the surrounding dictionary markers.
func (e *Encoder) encodeFields(v reflect.Value) error {
	for _, f := range structFields(v.Type()) {
		fv := v.FieldByIndex(f.index)
		if f.omitEmpty && fv.IsZero() {
			continue
		}

		e.WriteString(f.name)
		if err := e.encodeValue(fv); err != nil {
			return err
		}
	}

	return nil
}

// encodeMap writes the entries of a map sorted by key,
// the iteration order of Go maps being random.
func (e *Encoder) encodeMap(v reflect.Value) error {
	type entry struct {
		key   string
		value reflect.Value
	}

	entries := make([]entry, 0, v.Len())
	it := v.MapRange()
	for it.Next() {
		k, err := mapKey(it.Key())
		if err != nil {
			return err
		}
		entries = append(entries, entry{key: k, value: it.Value()})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})

	e.BeginDict()
	for _, ent := range entries {
		e.WriteString(ent.key)
		if err := e.encodeValue(ent.value); err != nil {
			return err
		}
	}
	e.EndDict()
	return nil
}

// mapKey converts a map key to the string written on the wire.
func mapKey(k reflect.Value) (string, error) {
	if k.Kind() == reflect.String {
		return k.String(), nil
	}

	if tm, ok := k.Interface().(stdencoding.TextMarshaler); ok {
		if k.Kind() == reflect.Pointer && k.IsNil() {
			return "", nil
		}
		text, err := tm.MarshalText()
		if err != nil {
			return "", errors.WithStack(err)
		}
		return string(text), nil
	}

	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10), nil
	}

	return "", NewErrUnsupportedType(k.Type(), "map keys must be strings, integers or implement encoding.TextMarshaler")
}
