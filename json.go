package onecode

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
)

// FromJSON converts a JSON document to 1code.
// Object keys are written in the order of the document.
// Integral numbers are written as integers and must fit in an int64
// or a uint64. Other numbers are written as floats, which cannot be
// decoded back.
func FromJSON(data []byte) ([]byte, error) {
	value, dataType, end, err := jsonparser.Get(data)
	if err != nil {
		return nil, errors.Wrap(err, "invalid JSON")
	}

	if rest := bytes.TrimSpace(data[end:]); len(rest) > 0 {
		return nil, errorAt(ErrTrailingCharacters, len(data)-len(rest))
	}

	var e Encoder
	if err := e.writeJSONValue(dataType, value); err != nil {
		return nil, err
	}

	return e.Bytes(), nil
}

func (e *Encoder) writeJSONValue(dataType jsonparser.ValueType, data []byte) error {
	switch dataType {
	case jsonparser.Null:
		e.WriteNull()
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return err
		}
		e.WriteBool(b)
	case jsonparser.Number:
		if i, err := jsonparser.ParseInt(data); err == nil {
			e.WriteInt(i)
			return nil
		}
		if !bytes.ContainsAny(data, ".eE") {
			if data[0] == '-' {
				i, err := strconv.ParseInt(string(data), 10, 64)
				if err != nil {
					return errors.Wrapf(err, "integer %s out of range", data)
				}
				e.WriteInt(i)
				return nil
			}
			u, err := strconv.ParseUint(string(data), 10, 64)
			if err != nil {
				return errors.Wrapf(err, "integer %s out of range", data)
			}
			e.WriteUint(u)
			return nil
		}
		f, err := jsonparser.ParseFloat(data)
		if err != nil {
			return err
		}
		e.WriteFloat(f, 64)
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return err
		}
		e.WriteString(s)
	case jsonparser.Array:
		var err error
		e.BeginList()
		_, perr := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, verr error) {
			if err != nil {
				return
			}
			if verr != nil {
				err = verr
				return
			}
			err = e.writeJSONValue(dataType, value)
		})
		if err != nil {
			return err
		}
		if perr != nil {
			return perr
		}
		e.EndList()
	case jsonparser.Object:
		e.BeginDict()
		// keys are unescaped by ObjectEach
		err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, offset int) error {
			e.WriteString(string(key))
			return e.writeJSONValue(dataType, value)
		})
		if err != nil {
			return err
		}
		e.EndDict()
	default:
		return errors.Errorf("unsupported JSON type: %v", dataType)
	}

	return nil
}

// ToJSON converts a 1code document to JSON.
// Dictionary keys must be strings.
func ToJSON(data []byte) ([]byte, error) {
	d := NewDecoder(string(data))

	buf, err := d.appendJSON(nil)
	if err != nil {
		return nil, err
	}
	if !d.Done() {
		return nil, errorAt(ErrTrailingCharacters, d.Offset())
	}

	return buf, nil
}

func (d *Decoder) appendJSON(dst []byte) ([]byte, error) {
	kind, err := d.PeekKind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindNull:
		return append(dst, "null"...), d.ReadNull()
	case KindBool:
		b, err := d.ReadBool()
		return strconv.AppendBool(dst, b), err
	case KindInt:
		x, err := d.ReadInt()
		return strconv.AppendInt(dst, x, 10), err
	case KindUint:
		x, err := d.ReadUint()
		return strconv.AppendUint(dst, x, 10), err
	case KindString:
		s, err := d.ReadString()
		if err != nil {
			return nil, err
		}
		return appendJSONString(dst, s), nil
	case KindList:
		return d.appendJSONArray(dst)
	case KindDict:
		return d.appendJSONObject(dst)
	}

	panic("unreachable")
}

func (d *Decoder) appendJSONArray(dst []byte) ([]byte, error) {
	if err := d.BeginList(); err != nil {
		return nil, err
	}

	dst = append(dst, '[')
	for i := 0; ; i++ {
		more, err := d.NextElement()
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}

		if i > 0 {
			dst = append(dst, ',')
		}
		dst, err = d.appendJSON(dst)
		if err != nil {
			return nil, err
		}
	}

	return append(dst, ']'), d.EndList()
}

func (d *Decoder) appendJSONObject(dst []byte) ([]byte, error) {
	if err := d.BeginDict(); err != nil {
		return nil, err
	}

	dst = append(dst, '{')
	for i := 0; ; i++ {
		more, err := d.NextEntry()
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}

		if i > 0 {
			dst = append(dst, ',')
		}

		k, err := d.ReadString()
		if err != nil {
			return nil, err
		}
		dst = appendJSONString(dst, k)
		dst = append(dst, ':')

		dst, err = d.appendJSON(dst)
		if err != nil {
			return nil, err
		}
	}

	return append(dst, '}'), d.EndDict()
}

func appendJSONString(dst []byte, s string) []byte {
	// marshaling a string never fails
	b, _ := json.Marshal(s)
	return append(dst, b...)
}
