package dn

import "strings"

// DN is an LDAP Distinguished Name held in its escaped string form.
//
// A DN is immutable once built and safe for concurrent use. The zero value
// is the empty DN.
type DN struct {
	dn string
}

// Pair is one attribute type/value component of a DN in raw, unescaped form.
type Pair struct {
	Key   string
	Value string
}

// String returns the pair as an escaped "type=value" RDN.
func (p Pair) String() string {
	return Escape(p.Key) + "=" + Escape(p.Value)
}

// New builds a DN from alternating attribute types and values, escaping
// each of them. When parts has odd length the last element is appended
// verbatim, which allows an already-escaped base DN to be used as suffix.
//
// Example:
//
//	New("cn", "Jam<m>y", "ou=Com\\,pany") -> "cn=Jam\<m\>y,ou=Com\,pany"
//	New("uid", "alice", "ou", "users")     -> "uid=alice,ou=users"
func New(parts ...string) DN {
	var b strings.Builder
	last := len(parts) - 1

	for i, part := range parts {
		if i%2 == 1 {
			b.WriteByte('=')
		} else if i != 0 {
			b.WriteByte(',')
		}

		if i == last && i%2 == 0 {
			b.WriteString(part)
		} else {
			b.WriteString(Escape(part))
		}
	}

	return DN{dn: b.String()}
}

// FromPairs builds a DN from decoded pairs.
func FromPairs(pairs []Pair) DN {
	parts := make([]string, 0, len(pairs)*2)
	for _, p := range pairs {
		parts = append(parts, p.Key, p.Value)
	}
	return New(parts...)
}

// Wrap returns a DN for a string that is already escaped. The string is
// not validated; use Parse when the input is untrusted.
func Wrap(escaped string) DN {
	return DN{dn: escaped}
}

// Parse wraps an escaped DN string after checking that it decomposes.
// The error wraps ErrMalformedDN.
func Parse(escaped string) (DN, error) {
	d := DN{dn: escaped}
	if err := d.Each(func(string, string) error { return nil }); err != nil {
		return DN{}, err
	}
	return d, nil
}

// MustParse is like Parse but panics on a malformed DN.
func MustParse(escaped string) DN {
	d, err := Parse(escaped)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the escaped DN.
func (d DN) String() string {
	return d.dn
}

// IsEmpty reports whether the DN is the empty string.
func (d DN) IsEmpty() bool {
	return d.dn == ""
}

// Equal reports whether two DNs have the same escaped representation.
func (d DN) Equal(other DN) bool {
	return d.dn == other.dn
}

// Iterator returns a fresh iterator over the DN's pairs.
func (d DN) Iterator() *Iterator {
	return newIterator(d.dn)
}

// Each calls fn for every pair in order. Iteration stops at the first
// error returned by fn or by decomposition.
func (d DN) Each(fn func(key, value string) error) error {
	it := d.Iterator()
	for it.Next() {
		p := it.Pair()
		if err := fn(p.Key, p.Value); err != nil {
			return err
		}
	}
	return it.Err()
}

// Pairs decomposes the DN into its unescaped pairs.
//
// Example:
//
//	"cn=Jam\<m\>y,ou=Com\,pany" -> [{cn Jam<m>y} {ou Com,pany}]
//
// The empty DN yields a single empty pair.
func (d DN) Pairs() ([]Pair, error) {
	var pairs []Pair
	it := d.Iterator()
	for it.Next() {
		pairs = append(pairs, it.Pair())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}

// Strings returns the pairs flattened as [key, value, key, value, ...],
// the form accepted by New.
func (d DN) Strings() ([]string, error) {
	var parts []string
	err := d.Each(func(key, value string) error {
		parts = append(parts, key, value)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return parts, nil
}

// RDN returns the leading pair of the DN.
//
// Example:
//
//	"uid=alice,ou=users,dc=example,dc=com" -> {uid alice}
func (d DN) RDN() (Pair, error) {
	it := d.Iterator()
	if !it.Next() {
		return Pair{}, it.Err()
	}
	return it.Pair(), nil
}

// Normalize decomposes the DN and rebuilds it, so that every component is
// escaped the way New escapes it. Check Normalizable first when the DN may
// contain multi-valued RDNs or hex-encoded values.
//
// Example:
//
//	"cn=Jam\3cm\3ey" -> "cn=Jam\<m\>y"
func (d DN) Normalize() (DN, error) {
	pairs, err := d.Pairs()
	if err != nil {
		return DN{}, err
	}
	return FromPairs(pairs), nil
}

// Normalizable reports whether Normalize keeps the meaning of the DN. It is
// false when the escaped string holds an unescaped '+' (a multi-valued RDN)
// or a value starting with an unescaped '#' (a hex-encoded BER value), since
// Normalize would escape both and turn them into literal text.
func (d DN) Normalizable() bool {
	valueStart := false
	for i := 0; i < len(d.dn); i++ {
		c := d.dn[i]
		if valueStart && c == '#' {
			return false
		}
		valueStart = false

		switch c {
		case '\\':
			i++
		case '+':
			return false
		case '=':
			valueStart = true
		}
	}
	return true
}

// MarshalText implements encoding.TextMarshaler.
func (d DN) MarshalText() ([]byte, error) {
	return []byte(d.dn), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text must be a
// well-formed escaped DN.
func (d *DN) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
