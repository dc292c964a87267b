package dn

import "strings"

// state is the position of the decomposer within a DN component.
type state int

const (
	stateKey state = iota
	stateValue
	stateKeyEscape
	stateKeyEscapeHex
	stateValueEscape
	stateValueEscapeHex
)

// String returns the state name, used in error messages.
func (s state) String() string {
	switch s {
	case stateKey:
		return "key"
	case stateValue:
		return "value"
	case stateKeyEscape:
		return "key escape"
	case stateKeyEscapeHex:
		return "key hex escape"
	case stateValueEscape:
		return "value escape"
	case stateValueEscapeHex:
		return "value hex escape"
	default:
		return "unknown"
	}
}

// Iterator walks the (key, value) pairs of a DN from left to right.
// Pairs are decoded lazily, one component per call to Next.
//
// An Iterator must not be shared between goroutines. Each call to
// DN.Iterator returns an independent cursor positioned at the start.
//
// Usage:
//
//	it := d.Iterator()
//	for it.Next() {
//	    p := it.Pair()
//	    ...
//	}
//	if err := it.Err(); err != nil {
//	    ...
//	}
type Iterator struct {
	dn   string
	pos  int
	pair Pair
	err  error
	done bool
}

func newIterator(s string) *Iterator {
	return &Iterator{dn: s}
}

// Next decodes the next pair. It returns false when the input is exhausted
// or a malformed escape was found; check Err to tell the two apart.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}

	var key, value strings.Builder
	st := stateKey
	var hi byte

	for it.pos < len(it.dn) {
		c := it.dn[it.pos]
		it.pos++

		switch st {
		case stateKey:
			switch c {
			case '\\':
				st = stateKeyEscape
			case '=':
				st = stateValue
			default:
				key.WriteByte(c)
			}

		case stateValue:
			switch c {
			case '\\':
				st = stateValueEscape
			case ',':
				it.pair = Pair{Key: key.String(), Value: value.String()}
				return true
			default:
				value.WriteByte(c)
			}

		case stateKeyEscape:
			if d, ok := unhex(c); ok {
				hi = d
				st = stateKeyEscapeHex
			} else {
				key.WriteByte(c)
				st = stateKey
			}

		case stateKeyEscapeHex:
			lo, ok := unhex(c)
			if !ok {
				return it.fail(it.pos-1, "invalid hex digit in "+st.String())
			}
			key.WriteByte(hi<<4 | lo)
			st = stateKey

		case stateValueEscape:
			if d, ok := unhex(c); ok {
				hi = d
				st = stateValueEscapeHex
			} else {
				value.WriteByte(c)
				st = stateValue
			}

		case stateValueEscapeHex:
			lo, ok := unhex(c)
			if !ok {
				return it.fail(it.pos-1, "invalid hex digit in "+st.String())
			}
			value.WriteByte(hi<<4 | lo)
			st = stateValue
		}
	}

	// A dangling backslash is dropped; a hex escape missing its second
	// digit is not.
	if st == stateKeyEscapeHex || st == stateValueEscapeHex {
		return it.fail(len(it.dn), "input ends inside "+st.String())
	}

	// Whatever is buffered forms the final pair, even when empty.
	it.done = true
	it.pair = Pair{Key: key.String(), Value: value.String()}
	return true
}

// Pair returns the pair decoded by the most recent call to Next.
func (it *Iterator) Pair() Pair {
	return it.pair
}

// Err returns the error that stopped iteration, if any.
func (it *Iterator) Err() error {
	return it.err
}

func (it *Iterator) fail(offset int, message string) bool {
	it.err = newSyntaxError(it.dn, offset, message)
	it.pair = Pair{}
	it.done = true
	return false
}

// unhex decodes a single hexadecimal digit.
func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
