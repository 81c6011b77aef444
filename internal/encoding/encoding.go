// Package encoding implements the token grammar of the 1code format.
//
//	value  := "N" | bool | int | string | list | dict
//	bool   := "T" | "F"
//	int    := "i" ["-"] digit+ "e"
//	string := length ":" byte{length}
//	list   := "l" value* "e"
//	dict   := "d" (value value)* "e"
//
// Writers append a single token to a destination buffer.
// Reading is done through a Cursor.
package encoding

func EncodeNull(dst []byte) []byte {
	return append(dst, NullMarker)
}

func EncodeBoolean(dst []byte, x bool) []byte {
	if x {
		return append(dst, TrueMarker)
	}

	return append(dst, FalseMarker)
}

// EncodeListStart opens a list. Elements must be appended
// by the caller, then the list closed with EncodeEnd.
func EncodeListStart(dst []byte) []byte {
	return append(dst, ListMarker)
}

// EncodeDictStart opens a dictionary. Keys and values must be appended
// alternately by the caller, then the dictionary closed with EncodeEnd.
func EncodeDictStart(dst []byte) []byte {
	return append(dst, DictMarker)
}

// EncodeEnd closes the innermost open list or dictionary.
func EncodeEnd(dst []byte) []byte {
	return append(dst, EndMarker)
}
