package encoding

// A Cursor reads tokens from an input string, one token at a time.
// After each successful call, the cursor points to the byte
// immediately following the token that was read.
// Strings returned by the cursor are substrings of the input.
type Cursor struct {
	src string
	off int
}

// NewCursor returns a cursor positioned at the beginning of src.
func NewCursor(src string) *Cursor {
	return &Cursor{src: src}
}

// Offset returns the position of the next unread byte.
func (c *Cursor) Offset() int {
	return c.off
}

// Done reports whether the whole input has been consumed.
func (c *Cursor) Done() bool {
	return c.off >= len(c.src)
}

func (c *Cursor) peek() (byte, error) {
	if c.off >= len(c.src) {
		return 0, errorAt(ErrEndOfInput, c.off)
	}

	return c.src[c.off], nil
}

func (c *Cursor) next() (byte, error) {
	ch, err := c.peek()
	if err != nil {
		return 0, err
	}

	c.off++
	return ch, nil
}

// expect consumes the next byte if it is equal to b,
// otherwise it returns the given error.
func (c *Cursor) expect(b byte, mismatch error) error {
	ch, err := c.peek()
	if err != nil {
		return err
	}
	if ch != b {
		return errorAt(mismatch, c.off)
	}

	c.off++
	return nil
}

// PeekKind returns the kind of the next token without consuming it.
// Only the first byte is inspected, except for integers where the
// byte following the marker determines the signedness.
func (c *Cursor) PeekKind() (Kind, error) {
	ch, err := c.peek()
	if err != nil {
		return KindInvalid, err
	}

	switch {
	case ch == NullMarker:
		return KindNull, nil
	case ch == TrueMarker, ch == FalseMarker:
		return KindBool, nil
	case isDigit(ch):
		return KindString, nil
	case ch == ListMarker:
		return KindList, nil
	case ch == DictMarker:
		return KindDict, nil
	case ch == IntMarker:
		if c.off+1 >= len(c.src) {
			return KindInvalid, errorAt(ErrEndOfInput, c.off+1)
		}
		switch next := c.src[c.off+1]; {
		case next == NegativeSign:
			return KindInt, nil
		case isDigit(next):
			return KindUint, nil
		}
		return KindInvalid, errorAt(ErrSyntax, c.off+1)
	}

	return KindInvalid, errorAt(ErrSyntax, c.off)
}

// PeekNull reports whether the next token is a null token.
// It returns false at the end of the input.
func (c *Cursor) PeekNull() bool {
	return c.off < len(c.src) && c.src[c.off] == NullMarker
}

func (c *Cursor) ParseNull() error {
	return c.expect(NullMarker, ErrExpectedNull)
}

func (c *Cursor) ParseBool() (bool, error) {
	ch, err := c.peek()
	if err != nil {
		return false, err
	}

	switch ch {
	case TrueMarker:
		c.off++
		return true, nil
	case FalseMarker:
		c.off++
		return false, nil
	}

	return false, errorAt(ErrExpectedBoolean, c.off)
}

// BeginList consumes the opening marker of a list.
func (c *Cursor) BeginList() error {
	return c.expect(ListMarker, ErrExpectedList)
}

// NextElement reports whether another element follows in the current list.
// Reaching the end of the input before the list is closed is an error.
func (c *Cursor) NextElement() (bool, error) {
	if c.off >= len(c.src) {
		return false, errorAt(ErrExpectedListEnd, c.off)
	}

	return c.src[c.off] != EndMarker, nil
}

// EndList consumes the closing marker of a list.
func (c *Cursor) EndList() error {
	if c.off >= len(c.src) || c.src[c.off] != EndMarker {
		return errorAt(ErrExpectedListEnd, c.off)
	}

	c.off++
	return nil
}

// BeginDict consumes the opening marker of a dictionary.
func (c *Cursor) BeginDict() error {
	return c.expect(DictMarker, ErrExpectedDictionary)
}

// NextEntry reports whether another key-value pair follows in the current dictionary.
// Reaching the end of the input before the dictionary is closed is an error.
func (c *Cursor) NextEntry() (bool, error) {
	if c.off >= len(c.src) {
		return false, errorAt(ErrExpectedDictionaryEnd, c.off)
	}

	return c.src[c.off] != EndMarker, nil
}

// EndDict consumes the closing marker of a dictionary.
func (c *Cursor) EndDict() error {
	if c.off >= len(c.src) || c.src[c.off] != EndMarker {
		return errorAt(ErrExpectedDictionaryEnd, c.off)
	}

	c.off++
	return nil
}
