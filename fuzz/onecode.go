package fuzz

import (
	"bytes"

	"github.com/chaisql/onecode"
)

// FuzzUnmarshal is the go-fuzz entry point. Inputs that decode must
// be encoded back to a value that decodes to the same encoding.
func FuzzUnmarshal(data []byte) int {
	var v any
	if err := onecode.Unmarshal(data, &v); err != nil {
		return 0
	}

	enc, err := onecode.Marshal(v)
	if err != nil {
		panic(err)
	}

	var again any
	if err := onecode.Unmarshal(enc, &again); err != nil {
		panic(err)
	}

	enc2, err := onecode.Marshal(again)
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(enc, enc2) {
		panic("encoding is not stable")
	}

	return 1
}

// FuzzFromJSON checks that any JSON document accepted by FromJSON
// produces a valid encoding.
func FuzzFromJSON(data []byte) int {
	enc, err := onecode.FromJSON(data)
	if err != nil {
		return 0
	}

	var v any
	if err := onecode.Unmarshal(enc, &v); err != nil {
		// floats are encode-only
		return 0
	}

	return 1
}
