package encoding

// Skip consumes the next token, whatever its kind.
// Integers are validated but never accumulated.
func (c *Cursor) Skip() error {
	k, err := c.PeekKind()
	if err != nil {
		return err
	}

	switch k {
	case KindNull:
		return c.ParseNull()
	case KindBool:
		_, err := c.ParseBool()
		return err
	case KindInt, KindUint:
		return c.skipInteger()
	case KindString:
		_, err := c.ParseText()
		return err
	case KindList:
		return c.SkipList()
	case KindDict:
		return c.SkipDict()
	}

	panic("unreachable")
}

func (c *Cursor) SkipList() error {
	if err := c.BeginList(); err != nil {
		return err
	}

	for {
		more, err := c.NextElement()
		if err != nil {
			return err
		}
		if !more {
			return c.EndList()
		}

		if err := c.Skip(); err != nil {
			return err
		}
	}
}

func (c *Cursor) SkipDict() error {
	if err := c.BeginDict(); err != nil {
		return err
	}

	for {
		more, err := c.NextEntry()
		if err != nil {
			return err
		}
		if !more {
			return c.EndDict()
		}

		// key
		if err := c.Skip(); err != nil {
			return err
		}
		// value
		if err := c.Skip(); err != nil {
			return err
		}
	}
}
