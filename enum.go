package onecode

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// VariantKind describes the payload carried by an enum variant.
type VariantKind uint8

const (
	// UnitVariant carries no payload. It is encoded as a bare string
	// holding the variant name: 4:Unit.
	//
	// Unit variants are encode-only: decoding them is not supported
	// and always fails.
	UnitVariant VariantKind = iota

	// NewtypeVariant carries exactly one value: the single exported field
	// of the variant struct, or the variant itself if it is not a struct.
	// It is encoded as a dictionary with one entry: d7:Newtypei1ee.
	NewtypeVariant

	// TupleVariant carries the exported fields of the variant struct, in order,
	// encoded as a list: d5:Tupleli1ei2eee.
	TupleVariant

	// StructVariant carries the exported fields of the variant struct,
	// encoded as a dictionary: d6:Structd1:ai1eee.
	StructVariant
)

func (k VariantKind) String() string {
	switch k {
	case UnitVariant:
		return "unit"
	case NewtypeVariant:
		return "newtype"
	case TupleVariant:
		return "tuple"
	case StructVariant:
		return "struct"
	}

	return "unknown"
}

// An Enum is one named alternative of a sum type.
// Sum types are usually modeled as an interface implemented by
// one Go type per variant:
//
//	type Shape interface{ onecode.Enum }
//
//	type Circle struct{ Radius uint32 }
//
//	func (Circle) OneCodeVariant() (string, onecode.VariantKind) {
//		return "Circle", onecode.NewtypeVariant
//	}
//
// To decode into the interface, the variants must be registered with the
// WithVariants option. Decoding into a concrete variant type only checks the name.
// OneCodeVariant may have a pointer receiver: variants passed by value are
// still encoded as enums.
type Enum interface {
	OneCodeVariant() (name string, kind VariantKind)
}

var enumType = reflect.TypeOf((*Enum)(nil)).Elem()

// variantOf returns the name and kind of an enum variant type.
func variantOf(t reflect.Type) (string, VariantKind) {
	return reflect.New(t).Interface().(Enum).OneCodeVariant()
}

func (e *Encoder) encodeEnum(x Enum, v reflect.Value) error {
	name, kind := x.OneCodeVariant()
	v = reflect.Indirect(v)

	switch kind {
	case UnitVariant:
		e.WriteUnitVariant(name)
		return nil
	case NewtypeVariant:
		e.BeginDict()
		e.WriteString(name)
		if err := e.encodeNewtypePayload(v); err != nil {
			return err
		}
		e.EndDict()
		return nil
	case TupleVariant:
		if v.Kind() != reflect.Struct {
			return NewErrUnsupportedType(v.Type(), "tuple variants must be structs")
		}
		e.BeginTupleVariant(name)
		for _, f := range structFields(v.Type()) {
			if err := e.encodeValue(v.FieldByIndex(f.index)); err != nil {
				return err
			}
		}
		e.EndTupleVariant()
		return nil
	case StructVariant:
		if v.Kind() != reflect.Struct {
			return NewErrUnsupportedType(v.Type(), "struct variants must be structs")
		}
		e.BeginStructVariant(name)
		if err := e.encodeFields(v); err != nil {
			return err
		}
		e.EndStructVariant()
		return nil
	}

	return NewErrUnsupportedType(v.Type(), "unknown variant kind "+kind.String())
}

func (e *Encoder) encodeNewtypePayload(v reflect.Value) error {
	if v.Kind() != reflect.Struct {
		// the variant is the payload itself,
		// skip the Enum check to avoid encoding it again as an enum
		return e.encodeKind(v)
	}

	fields := structFields(v.Type())
	if len(fields) != 1 {
		return NewErrUnsupportedType(v.Type(), "newtype variants must have exactly one field")
	}

	return e.encodeValue(v.FieldByIndex(fields[0].index))
}

// decodeEnum decodes an enum variant into v, whose type is the variant type itself.
func (d *Decoder) decodeEnum(v reflect.Value) error {
	if err := d.cur.BeginDict(); err != nil {
		return err
	}

	start := d.cur.Offset()
	name, err := d.cur.ParseText()
	if err != nil {
		return err
	}

	want, kind := variantOf(v.Type())
	if name != want {
		return errors.Wrapf(errors.WithStack(&UnknownVariantError{Enum: v.Type(), Name: name}), "offset %d", start)
	}

	if err := d.decodeVariantPayload(v, name, kind); err != nil {
		return err
	}

	return d.cur.EndDict()
}

// decodeEnumInterface decodes an enum variant into v, whose type is an interface
// implemented by variants registered with WithVariants.
func (d *Decoder) decodeEnumInterface(v reflect.Value) error {
	if err := d.cur.BeginDict(); err != nil {
		return err
	}

	start := d.cur.Offset()
	name, err := d.cur.ParseText()
	if err != nil {
		return err
	}

	var nv reflect.Value
	for _, t := range d.opts.variants[name] {
		if t.Implements(v.Type()) {
			nv = reflect.New(t).Elem()
			break
		}
		if reflect.PointerTo(t).Implements(v.Type()) {
			nv = reflect.New(t)
			break
		}
	}
	if !nv.IsValid() {
		return errors.Wrapf(errors.WithStack(&UnknownVariantError{Enum: v.Type(), Name: name}), "offset %d", start)
	}

	target := reflect.Indirect(nv)
	_, kind := variantOf(target.Type())
	if err := d.decodeVariantPayload(target, name, kind); err != nil {
		return err
	}

	v.Set(nv)
	return d.cur.EndDict()
}

func (d *Decoder) decodeVariantPayload(v reflect.Value, name string, kind VariantKind) error {
	switch kind {
	case UnitVariant:
		return errors.Wrapf(ErrUnsupportedOperation, "cannot decode unit variant %q", name)
	case NewtypeVariant:
		if v.Kind() != reflect.Struct {
			return d.decodeKind(v)
		}

		fields := structFields(v.Type())
		if len(fields) != 1 {
			return NewErrUnsupportedType(v.Type(), "newtype variants must have exactly one field")
		}
		return d.decodeValue(v.FieldByIndex(fields[0].index))
	case TupleVariant:
		if v.Kind() != reflect.Struct {
			return NewErrUnsupportedType(v.Type(), "tuple variants must be structs")
		}
		return d.decodeTuple(v)
	case StructVariant:
		if v.Kind() != reflect.Struct {
			return NewErrUnsupportedType(v.Type(), "struct variants must be structs")
		}
		return d.decodeFields(v)
	}

	return NewErrUnsupportedType(v.Type(), "unknown variant kind "+kind.String())
}

// decodeTuple decodes a list into the fields of v, in order.
func (d *Decoder) decodeTuple(v reflect.Value) error {
	if err := d.cur.BeginList(); err != nil {
		return err
	}

	for _, f := range structFields(v.Type()) {
		more, err := d.cur.NextElement()
		if err != nil {
			return err
		}
		if !more {
			return errors.Errorf("offset %d: missing tuple element for field %q of %v", d.cur.Offset(), f.name, v.Type())
		}

		if err := d.decodeValue(v.FieldByIndex(f.index)); err != nil {
			return err
		}
	}

	return d.cur.EndList()
}
