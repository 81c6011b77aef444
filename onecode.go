package onecode

// Marshal returns the 1code encoding of v.
func Marshal(v any) ([]byte, error) {
	var e Encoder
	if err := e.Encode(v); err != nil {
		return nil, err
	}

	return e.Bytes(), nil
}

// MarshalString is like Marshal but returns a string.
func MarshalString(v any) (string, error) {
	b, err := Marshal(v)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Unmarshal decodes data and stores the result in the value pointed to by v.
// The whole input must be consumed, otherwise ErrTrailingCharacters is returned.
// data is copied once: decoded strings never share memory with it.
func Unmarshal(data []byte, v any, opts ...DecodeOption) error {
	return UnmarshalString(string(data), v, opts...)
}

// UnmarshalString is like Unmarshal, except that decoded strings
// are substrings of s.
func UnmarshalString(s string, v any, opts ...DecodeOption) error {
	d := NewDecoder(s, opts...)
	if err := d.Decode(v); err != nil {
		return err
	}

	if !d.Done() {
		return errorAt(ErrTrailingCharacters, d.Offset())
	}

	return nil
}
