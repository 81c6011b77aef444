package encoding

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// EncodeInteger appends x in decimal form: i<digits>e.
func EncodeInteger[T constraints.Integer](dst []byte, x T) []byte {
	dst = append(dst, IntMarker)
	// non-negative values of any integer type fit in an uint64
	if x < 0 {
		dst = strconv.AppendInt(dst, int64(x), 10)
	} else {
		dst = strconv.AppendUint(dst, uint64(x), 10)
	}
	return append(dst, EndMarker)
}

// EncodeFloat appends x using the integer token with an embedded decimal point,
// i.e. 1.5 is encoded as i1.5e and 1.0 as i1e. The exponent notation is never used.
// Such tokens cannot be read back: floats are encode-only.
func EncodeFloat(dst []byte, x float64, bitSize int) []byte {
	dst = append(dst, IntMarker)
	switch {
	case math.IsNaN(x):
		dst = append(dst, "NaN"...)
	case math.IsInf(x, 1):
		dst = append(dst, "inf"...)
	case math.IsInf(x, -1):
		dst = append(dst, "-inf"...)
	default:
		dst = strconv.AppendFloat(dst, x, 'f', -1, bitSize)
	}
	return append(dst, EndMarker)
}

// ParseSigned reads an integer token into a signed integer of type T.
// Values that don't fit in T are rejected with ErrExpectedInteger.
func ParseSigned[T constraints.Signed](c *Cursor) (T, error) {
	start := c.off
	x, err := c.parseInt64()
	if err != nil {
		return 0, err
	}

	if int64(T(x)) != x {
		return 0, errors.Wrapf(errorAt(ErrExpectedInteger, start), "%d overflows %T", x, T(0))
	}

	return T(x), nil
}

// ParseUnsigned reads an integer token into an unsigned integer of type T.
// A minus sign is rejected with ErrExpectedInteger, as well as values that don't fit in T.
func ParseUnsigned[T constraints.Unsigned](c *Cursor) (T, error) {
	start := c.off
	x, err := c.parseUint64()
	if err != nil {
		return 0, err
	}

	if uint64(T(x)) != x {
		return 0, errors.Wrapf(errorAt(ErrExpectedInteger, start), "%d overflows %T", x, T(0))
	}

	return T(x), nil
}

func (c *Cursor) parseInt64() (int64, error) {
	if err := c.expect(IntMarker, ErrExpectedInteger); err != nil {
		return 0, err
	}

	start := c.off
	ch, err := c.peek()
	if err != nil {
		return 0, err
	}

	var neg bool
	if ch == NegativeSign {
		neg = true
		c.off++
	}

	var x int64
	var digits int
	for {
		ch, err := c.next()
		if err != nil {
			return 0, err
		}

		if ch == EndMarker && digits > 0 {
			return x, nil
		}
		if !isDigit(ch) {
			return 0, errorAt(ErrExpectedInteger, c.off-1)
		}

		// accumulate negative values downwards so that
		// math.MinInt64 can be represented
		d := int64(ch - '0')
		if neg {
			if x < (math.MinInt64+d)/10 {
				return 0, errors.Wrap(errorAt(ErrExpectedInteger, start), "overflows int64")
			}
			x = x*10 - d
		} else {
			if x > (math.MaxInt64-d)/10 {
				return 0, errors.Wrap(errorAt(ErrExpectedInteger, start), "overflows int64")
			}
			x = x*10 + d
		}
		digits++
	}
}

func (c *Cursor) parseUint64() (uint64, error) {
	if err := c.expect(IntMarker, ErrExpectedInteger); err != nil {
		return 0, err
	}

	start := c.off
	var x uint64
	var digits int
	for {
		ch, err := c.next()
		if err != nil {
			return 0, err
		}

		if ch == EndMarker && digits > 0 {
			return x, nil
		}
		if !isDigit(ch) {
			return 0, errorAt(ErrExpectedInteger, c.off-1)
		}

		d := uint64(ch - '0')
		if x > (math.MaxUint64-d)/10 {
			return 0, errors.Wrap(errorAt(ErrExpectedInteger, start), "overflows uint64")
		}
		x = x*10 + d
		digits++
	}
}

// skipInteger consumes an integer token without
// accumulating its value, so it never overflows.
func (c *Cursor) skipInteger() error {
	if err := c.expect(IntMarker, ErrExpectedInteger); err != nil {
		return err
	}

	if ch, err := c.peek(); err != nil {
		return err
	} else if ch == NegativeSign {
		c.off++
	}

	var digits int
	for {
		ch, err := c.next()
		if err != nil {
			return err
		}

		if ch == EndMarker && digits > 0 {
			return nil
		}
		if !isDigit(ch) {
			return errorAt(ErrExpectedInteger, c.off-1)
		}
		digits++
	}
}
