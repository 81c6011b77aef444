package onecode

import (
	"fmt"
	"reflect"

	"github.com/chaisql/onecode/internal/encoding"
	"github.com/cockroachdb/errors"
)

// Errors returned by the decoder. They are wrapped with the offset of the faulty byte,
// use errors.Is to compare them.
var (
	// ErrEndOfInput is returned when the input ends in the middle of a value.
	ErrEndOfInput = encoding.ErrEndOfInput

	// ErrTrailingCharacters is returned when the input contains data after the top-level value.
	ErrTrailingCharacters = encoding.ErrTrailingCharacters

	// ErrSyntax is returned when the first byte of a value doesn't start any known token.
	ErrSyntax = encoding.ErrSyntax

	ErrExpectedBoolean       = encoding.ErrExpectedBoolean
	ErrExpectedInteger       = encoding.ErrExpectedInteger
	ErrExpectedString        = encoding.ErrExpectedString
	ErrExpectedList          = encoding.ErrExpectedList
	ErrExpectedListEnd       = encoding.ErrExpectedListEnd
	ErrExpectedDictionary    = encoding.ErrExpectedDictionary
	ErrExpectedDictionaryEnd = encoding.ErrExpectedDictionaryEnd
	ErrExpectedNull          = encoding.ErrExpectedNull

	// ErrUnsupportedOperation is returned when decoding into a floating point number,
	// into a byte slice, or when decoding a unit enum variant.
	ErrUnsupportedOperation = encoding.ErrUnsupportedOperation
)

// ErrUnsupportedType is returned when a Go type cannot be mapped to 1code.
type ErrUnsupportedType struct {
	Type reflect.Type
	Msg  string
}

func NewErrUnsupportedType(t reflect.Type, msg string) error {
	return errors.WithStack(&ErrUnsupportedType{
		Type: t,
		Msg:  msg,
	})
}

func (e *ErrUnsupportedType) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("unsupported type %v", e.Type)
	}
	return fmt.Sprintf("unsupported type %v. %s", e.Type, e.Msg)
}

// UnknownFieldError is returned when a dictionary contains a key that doesn't match
// any field of the target struct and unknown fields are disallowed.
type UnknownFieldError struct {
	Struct reflect.Type
	Name   string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q for %v", e.Name, e.Struct)
}

// UnknownVariantError is returned when a variant name doesn't match the target enum.
type UnknownVariantError struct {
	Enum reflect.Type
	Name string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown variant %q for %v", e.Name, e.Enum)
}

func errorAt(err error, off int) error {
	return errors.Wrapf(err, "offset %d", off)
}
