package encoding

import "github.com/cockroachdb/errors"

// Errors returned while reading tokens.
// They are wrapped with the offset at which they occurred,
// use errors.Is to compare them.
var (
	ErrEndOfInput         = errors.New("unexpected end of input")
	ErrTrailingCharacters = errors.New("trailing characters")
	ErrSyntax             = errors.New("syntax error")

	ErrExpectedBoolean       = errors.New("expected boolean")
	ErrExpectedInteger       = errors.New("expected integer")
	ErrExpectedString        = errors.New("expected string")
	ErrExpectedList          = errors.New("expected list")
	ErrExpectedListEnd       = errors.New("expected list end")
	ErrExpectedDictionary    = errors.New("expected dictionary")
	ErrExpectedDictionaryEnd = errors.New("expected dictionary end")
	ErrExpectedNull          = errors.New("expected null")

	// ErrUnsupportedOperation is returned for decoding operations the format
	// doesn't support: floating point targets, raw byte buffers and unit enum variants.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

func errorAt(err error, off int) error {
	return errors.Wrapf(err, "offset %d", off)
}
