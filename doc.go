/*
Package onecode implements 1code, a compact text encoding inspired by bencode.

1code encodes booleans, integers, strings, lists and dictionaries using a small set of
marker bytes. Values are self-delimiting: a decoder always knows where a value ends without
any lookahead beyond the next byte, and strings are length-prefixed so they are never escaped.

Grammar

	value  := "N" | bool | int | string | list | dict
	bool   := "T" | "F"
	int    := "i" ["-"] digit+ "e"
	string := length ":" byte{length}
	length := digit+
	list   := "l" value* "e"
	dict   := "d" (value value)* "e"

For example, the Go value

	struct {
		Name string
		Tags []string
		Age  *int
	}{Name: "kiwi", Tags: []string{"green"}}

is encoded as

	d4:name4:kiwi4:tagsl5:greene3:ageNe

Go values

Marshal and Unmarshal map Go values to 1code as follows:

	bool                           T or F
	int, int8, ..., uint64         i<decimal>e
	float32, float64               i<decimal>e, encode only
	string                         <length>:<bytes>
	nil pointer, slice, map        N
	struct{}                       N
	slice, array                   l<elements>e
	map                            d<key><value>...e, keys sorted
	struct                         d<field name><value>...e
	encoding.TextMarshaler         <length>:<text>

Struct fields are exported fields, named after the lowercased Go field name.
The "onecode" struct tag overrides the name, "-" skips the field and the "omitempty"
option skips zero values:

	type User struct {
		ID    uint64 `onecode:"user_id"`
		Email string `onecode:",omitempty"`
		Cache []byte `onecode:"-"`
	}

Map keys are always written as strings. Integer keys are written in decimal.

Floats are written using the integer token with a decimal point, i.e. 1.5 is encoded as i1.5e.
Such tokens are rejected by the decoder: decoding into a float returns ErrUnsupportedOperation.
The same goes for byte slices, which are encoded as lists of integers.

Decoding into an empty interface infers the type of the value from its first bytes:
nil, bool, int64 for negative integers, uint64 for other integers, string, []any
and map[string]any. Use Dict to preserve the order of dictionary entries.
Dictionary keys must be strings on this path: a key holding any other value,
as in di1e1:ae, fails with ErrExpectedString even though the grammar allows it.
Decode into a map with integer keys to read such dictionaries.

Enums

Sum types are modeled with an interface implemented by one type per variant,
each implementing Enum. Variants are encoded as a dictionary with a single
entry mapping the variant name to its payload:

	unit      4:Unit
	newtype   d7:Newtypei1ee
	tuple     d5:Tupleli1ei2eee
	struct    d6:Structd1:ai1eee

Unit variants can be encoded but not decoded.

Custom encoding

Types implementing Marshaler and Unmarshaler drive the Encoder and Decoder themselves.
Strings returned by the Decoder are substrings of the input: UnmarshalString never copies them.
*/
package onecode
