package encoding

import "strconv"

// EncodeText appends x prefixed by its length in bytes.
// The content is not escaped.
func EncodeText(dst []byte, x string) []byte {
	dst = strconv.AppendInt(dst, int64(len(x)), 10)
	dst = append(dst, LengthSeparator)
	return append(dst, x...)
}

// ParseText reads a string token. The returned string
// is a substring of the cursor input and is never copied.
func (c *Cursor) ParseText() (string, error) {
	start := c.off

	ch, err := c.next()
	if err != nil {
		return "", err
	}
	if !isDigit(ch) {
		return "", errorAt(ErrExpectedString, start)
	}

	const maxLen = int(^uint(0) >> 1)
	n := int(ch - '0')
	for {
		ch, err := c.next()
		if err != nil {
			return "", err
		}

		if ch == LengthSeparator {
			break
		}
		if !isDigit(ch) {
			return "", errorAt(ErrExpectedString, c.off-1)
		}

		d := int(ch - '0')
		if n > (maxLen-d)/10 {
			return "", errorAt(ErrExpectedString, start)
		}
		n = n*10 + d
	}

	if n > len(c.src)-c.off {
		return "", errorAt(ErrEndOfInput, len(c.src))
	}

	s := c.src[c.off : c.off+n]
	c.off += n
	return s, nil
}
