package onecode

import (
	stdencoding "encoding"
	"reflect"
	"strconv"

	"github.com/chaisql/onecode/internal/encoding"
	"github.com/cockroachdb/errors"
)

// Unmarshaler is implemented by types that decode themselves.
// UnmarshalOneCode must consume exactly one value from the decoder.
type Unmarshaler interface {
	UnmarshalOneCode(*Decoder) error
}

// Kind is the kind of the next value in a 1code input.
type Kind = encoding.Kind

// List of value kinds.
const (
	KindInvalid = encoding.KindInvalid
	KindNull    = encoding.KindNull
	KindBool    = encoding.KindBool
	KindInt     = encoding.KindInt
	KindUint    = encoding.KindUint
	KindString  = encoding.KindString
	KindList    = encoding.KindList
	KindDict    = encoding.KindDict
)

// A Decoder reads 1code values from a string.
// Strings it returns are substrings of the input.
type Decoder struct {
	cur  *encoding.Cursor
	opts decodeOptions
}

// NewDecoder returns a decoder reading from s.
func NewDecoder(s string, opts ...DecodeOption) *Decoder {
	d := Decoder{
		cur: encoding.NewCursor(s),
	}
	for _, opt := range opts {
		opt(&d.opts)
	}

	return &d
}

// Offset returns the position of the next unread byte.
func (d *Decoder) Offset() int {
	return d.cur.Offset()
}

// Done reports whether the whole input has been consumed.
func (d *Decoder) Done() bool {
	return d.cur.Done()
}

// PeekKind returns the kind of the next value without consuming it.
func (d *Decoder) PeekKind() (Kind, error) {
	return d.cur.PeekKind()
}

func (d *Decoder) ReadNull() error {
	return d.cur.ParseNull()
}

func (d *Decoder) ReadBool() (bool, error) {
	return d.cur.ParseBool()
}

func (d *Decoder) ReadInt() (int64, error) {
	return encoding.ParseSigned[int64](d.cur)
}

func (d *Decoder) ReadUint() (uint64, error) {
	return encoding.ParseUnsigned[uint64](d.cur)
}

// ReadString reads a string. The returned string shares
// its memory with the input.
func (d *Decoder) ReadString() (string, error) {
	return d.cur.ParseText()
}

// BeginList consumes the start of a list. Elements must be read
// while NextElement returns true, then the list closed with EndList.
func (d *Decoder) BeginList() error {
	return d.cur.BeginList()
}

// NextElement reports whether the current list has more elements.
func (d *Decoder) NextElement() (bool, error) {
	return d.cur.NextElement()
}

func (d *Decoder) EndList() error {
	return d.cur.EndList()
}

// BeginDict consumes the start of a dictionary. Keys and values must be read
// while NextEntry returns true, then the dictionary closed with EndDict.
func (d *Decoder) BeginDict() error {
	return d.cur.BeginDict()
}

// NextEntry reports whether the current dictionary has more entries.
func (d *Decoder) NextEntry() (bool, error) {
	return d.cur.NextEntry()
}

func (d *Decoder) EndDict() error {
	return d.cur.EndDict()
}

// Skip consumes the next value, whatever its kind.
func (d *Decoder) Skip() error {
	return d.cur.Skip()
}

// BeginVariant consumes the start of an enum variant and returns its name.
// The payload must then be read, and the variant closed with EndVariant.
func (d *Decoder) BeginVariant() (string, error) {
	if err := d.cur.BeginDict(); err != nil {
		return "", err
	}

	return d.cur.ParseText()
}

func (d *Decoder) EndVariant() error {
	return d.cur.EndDict()
}

// Decode reads the next value and stores it in the value pointed to by v.
func (d *Decoder) Decode(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return NewErrUnsupportedType(reflect.TypeOf(v), "decoding requires a non-nil pointer")
	}

	return d.decodeValue(rv.Elem())
}

func (d *Decoder) decodeValue(v reflect.Value) error {
	switch v.Kind() {
	case reflect.Pointer:
		if d.cur.PeekNull() {
			v.SetZero()
			return d.cur.ParseNull()
		}
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return d.decodeValue(v.Elem())
	case reflect.Interface:
		return d.decodeInterface(v)
	}

	if v.CanAddr() && v.Addr().CanInterface() {
		switch t := v.Addr().Interface().(type) {
		case Unmarshaler:
			return t.UnmarshalOneCode(d)
		case Enum:
			return d.decodeEnum(v)
		case stdencoding.TextUnmarshaler:
			start := d.cur.Offset()
			s, err := d.cur.ParseText()
			if err != nil {
				return err
			}
			if err := t.UnmarshalText([]byte(s)); err != nil {
				return errorAt(errors.WithStack(err), start)
			}
			return nil
		}
	}

	return d.decodeKind(v)
}

func (d *Decoder) decodeInterface(v reflect.Value) error {
	if d.cur.PeekNull() {
		v.SetZero()
		return d.cur.ParseNull()
	}

	if v.NumMethod() == 0 {
		x, err := d.decodeAny(false)
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(x))
		return nil
	}

	if v.Type().Implements(enumType) {
		return d.decodeEnumInterface(v)
	}

	return NewErrUnsupportedType(v.Type(), "cannot decode into a non-empty interface")
}

// decodeKind decodes the next value into v based on its kind only.
func (d *Decoder) decodeKind(v reflect.Value) error {
	start := d.cur.Offset()

	switch v.Kind() {
	case reflect.Bool:
		x, err := d.cur.ParseBool()
		if err != nil {
			return err
		}
		v.SetBool(x)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		x, err := encoding.ParseSigned[int64](d.cur)
		if err != nil {
			return err
		}
		if v.OverflowInt(x) {
			return errors.Wrapf(errorAt(ErrExpectedInteger, start), "%d overflows %v", x, v.Type())
		}
		v.SetInt(x)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		x, err := encoding.ParseUnsigned[uint64](d.cur)
		if err != nil {
			return err
		}
		if v.OverflowUint(x) {
			return errors.Wrapf(errorAt(ErrExpectedInteger, start), "%d overflows %v", x, v.Type())
		}
		v.SetUint(x)
		return nil
	case reflect.Float32, reflect.Float64:
		return errors.Wrapf(errorAt(ErrUnsupportedOperation, start), "cannot decode into %v", v.Type())
	case reflect.String:
		x, err := d.cur.ParseText()
		if err != nil {
			return err
		}
		v.SetString(x)
		return nil
	case reflect.Pointer, reflect.Interface:
		return d.decodeValue(v)
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return errors.Wrapf(errorAt(ErrUnsupportedOperation, start), "cannot decode into %v", v.Type())
		}
		if d.cur.PeekNull() {
			v.SetZero()
			return d.cur.ParseNull()
		}
		return d.decodeSlice(v)
	case reflect.Array:
		return d.decodeArray(v)
	case reflect.Map:
		if d.cur.PeekNull() {
			v.SetZero()
			return d.cur.ParseNull()
		}
		return d.decodeMap(v)
	case reflect.Struct:
		if v.NumField() == 0 {
			return d.cur.ParseNull()
		}
		return d.decodeFields(v)
	}

	return NewErrUnsupportedType(v.Type(), "")
}

func (d *Decoder) decodeSlice(v reflect.Value) error {
	if err := d.cur.BeginList(); err != nil {
		return err
	}

	s := reflect.MakeSlice(v.Type(), 0, 0)
	for {
		more, err := d.cur.NextElement()
		if err != nil {
			return err
		}
		if !more {
			break
		}

		ev := reflect.New(v.Type().Elem()).Elem()
		if err := d.decodeValue(ev); err != nil {
			return err
		}
		s = reflect.Append(s, ev)
	}

	if err := d.cur.EndList(); err != nil {
		return err
	}

	v.Set(s)
	return nil
}

// decodeArray decodes a list into an array. Elements missing
// from the list are set to their zero value.
func (d *Decoder) decodeArray(v reflect.Value) error {
	if err := d.cur.BeginList(); err != nil {
		return err
	}

	n := v.Len()
	var i int
	for ; ; i++ {
		more, err := d.cur.NextElement()
		if err != nil {
			return err
		}
		if !more {
			break
		}
		if i >= n {
			return errors.Wrapf(errorAt(ErrExpectedListEnd, d.cur.Offset()), "too many elements for %v", v.Type())
		}

		if err := d.decodeValue(v.Index(i)); err != nil {
			return err
		}
	}

	for ; i < n; i++ {
		v.Index(i).SetZero()
	}

	return d.cur.EndList()
}

func (d *Decoder) decodeMap(v reflect.Value) error {
	if err := d.cur.BeginDict(); err != nil {
		return err
	}

	if v.IsNil() {
		v.Set(reflect.MakeMap(v.Type()))
	}

	kt, vt := v.Type().Key(), v.Type().Elem()
	for {
		more, err := d.cur.NextEntry()
		if err != nil {
			return err
		}
		if !more {
			break
		}

		k := reflect.New(kt).Elem()
		if err := d.decodeMapKey(k); err != nil {
			return err
		}

		ev := reflect.New(vt).Elem()
		if err := d.decodeValue(ev); err != nil {
			return err
		}
		v.SetMapIndex(k, ev)
	}

	return d.cur.EndDict()
}

// decodeMapKey decodes a map key. Keys are written as strings, but integer keys
// also accept integer tokens.
func (d *Decoder) decodeMapKey(k reflect.Value) error {
	start := d.cur.Offset()

	if k.Kind() == reflect.String {
		s, err := d.cur.ParseText()
		if err != nil {
			return err
		}
		k.SetString(s)
		return nil
	}

	if tu, ok := k.Addr().Interface().(stdencoding.TextUnmarshaler); ok {
		s, err := d.cur.ParseText()
		if err != nil {
			return err
		}
		if err := tu.UnmarshalText([]byte(s)); err != nil {
			return errorAt(errors.WithStack(err), start)
		}
		return nil
	}

	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
	default:
		return NewErrUnsupportedType(k.Type(), "map keys must be strings, integers or implement encoding.TextUnmarshaler")
	}

	kind, err := d.cur.PeekKind()
	if err != nil {
		return err
	}
	if kind != KindString {
		return d.decodeKind(k)
	}

	s, err := d.cur.ParseText()
	if err != nil {
		return err
	}

	if k.CanInt() {
		x, err := strconv.ParseInt(s, 10, 64)
		if err != nil || k.OverflowInt(x) {
			return errors.Wrapf(errorAt(ErrExpectedInteger, start), "invalid %v key %q", k.Type(), s)
		}
		k.SetInt(x)
		return nil
	}

	x, err := strconv.ParseUint(s, 10, 64)
	if err != nil || k.OverflowUint(x) {
		return errors.Wrapf(errorAt(ErrExpectedInteger, start), "invalid %v key %q", k.Type(), s)
	}
	k.SetUint(x)
	return nil
}

// decodeFields decodes a dictionary into the fields of v.
// Fields absent from the dictionary are left untouched.
func (d *Decoder) decodeFields(v reflect.Value) error {
	if err := d.cur.BeginDict(); err != nil {
		return err
	}

	fields := fieldsByName(structFields(v.Type()))
	for {
		more, err := d.cur.NextEntry()
		if err != nil {
			return err
		}
		if !more {
			break
		}

		start := d.cur.Offset()
		name, err := d.cur.ParseText()
		if err != nil {
			return err
		}

		f, ok := fields[name]
		if !ok {
			if d.opts.disallowUnknown {
				return errorAt(errors.WithStack(&UnknownFieldError{Struct: v.Type(), Name: name}), start)
			}
			if err := d.cur.Skip(); err != nil {
				return err
			}
			continue
		}

		if err := d.decodeValue(v.FieldByIndex(f.index)); err != nil {
			return err
		}
	}

	return d.cur.EndDict()
}

// decodeAny decodes the next value without knowing its type,
// based on the kind of its first token.
// If ordered is true, dictionaries are decoded into a *Dict, otherwise into a map[string]any.
func (d *Decoder) decodeAny(ordered bool) (any, error) {
	kind, err := d.cur.PeekKind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindNull:
		return nil, d.cur.ParseNull()
	case KindBool:
		return d.cur.ParseBool()
	case KindInt:
		return encoding.ParseSigned[int64](d.cur)
	case KindUint:
		return encoding.ParseUnsigned[uint64](d.cur)
	case KindString:
		return d.cur.ParseText()
	case KindList:
		return d.decodeAnyList(ordered)
	case KindDict:
		if ordered {
			var dict Dict
			if err := dict.UnmarshalOneCode(d); err != nil {
				return nil, err
			}
			return &dict, nil
		}
		return d.decodeAnyMap()
	}

	panic("unreachable")
}

func (d *Decoder) decodeAnyList(ordered bool) ([]any, error) {
	if err := d.cur.BeginList(); err != nil {
		return nil, err
	}

	l := []any{}
	for {
		more, err := d.cur.NextElement()
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}

		x, err := d.decodeAny(ordered)
		if err != nil {
			return nil, err
		}
		l = append(l, x)
	}

	return l, d.cur.EndList()
}

func (d *Decoder) decodeAnyMap() (map[string]any, error) {
	if err := d.cur.BeginDict(); err != nil {
		return nil, err
	}

	m := make(map[string]any)
	for {
		more, err := d.cur.NextEntry()
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}

		k, err := d.cur.ParseText()
		if err != nil {
			return nil, err
		}

		x, err := d.decodeAny(false)
		if err != nil {
			return nil, err
		}
		m[k] = x
	}

	return m, d.cur.EndDict()
}
