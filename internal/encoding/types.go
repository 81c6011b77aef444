package encoding

import "fmt"

// Markers used to encode values.
// Every token starts with one of them, except strings
// which start with the decimal length of their content.
const (
	NullMarker  byte = 'N'
	TrueMarker  byte = 'T'
	FalseMarker byte = 'F'

	// Integers and floats: i<digits>e
	IntMarker    byte = 'i'
	NegativeSign byte = '-'

	// Strings: <length>:<bytes>
	LengthSeparator byte = ':'

	// Containers
	ListMarker byte = 'l'
	DictMarker byte = 'd'

	// Closes integers, lists and dictionaries.
	EndMarker byte = 'e'
)

// Kind is the kind of the next token, as inferred from
// its first byte (and the second one for integers).
type Kind uint8

// List of token kinds.
const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	// KindInt denotes a negative integer, i.e. an integer
	// whose digits are preceded by a minus sign.
	KindInt
	// KindUint denotes a non-negative integer.
	KindUint
	KindString
	KindList
	KindDict
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInt:
		return "signed integer"
	case KindUint:
		return "unsigned integer"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindDict:
		return "dictionary"
	}

	return fmt.Sprintf("invalid kind %d", uint8(k))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
