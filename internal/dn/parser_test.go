package dn

import (
	"errors"
	"testing"
)

func TestPairs(t *testing.T) {
	tests := []struct {
		name     string
		dn       string
		expected []Pair
	}{
		{
			name:     "empty DN",
			dn:       "",
			expected: []Pair{{"", ""}},
		},
		{
			name:     "no equals",
			dn:       "abc",
			expected: []Pair{{"abc", ""}},
		},
		{
			name:     "comma in key position",
			dn:       "a,b",
			expected: []Pair{{"a,b", ""}},
		},
		{
			name:     "single component",
			dn:       "dc=com",
			expected: []Pair{{"dc", "com"}},
		},
		{
			name: "simple DN",
			dn:   "uid=alice,ou=users,dc=example,dc=com",
			expected: []Pair{
				{"uid", "alice"},
				{"ou", "users"},
				{"dc", "example"},
				{"dc", "com"},
			},
		},
		{
			name:     "hex escapes",
			dn:       `cn=Jam\3cm\3ey`,
			expected: []Pair{{"cn", "Jam<m>y"}},
		},
		{
			name:     "uppercase hex escapes",
			dn:       `cn=Jam\3Cm\3Ey`,
			expected: []Pair{{"cn", "Jam<m>y"}},
		},
		{
			name:     "literal escapes",
			dn:       `cn=Jam\<m\>y,ou=Com\,pany`,
			expected: []Pair{{"cn", "Jam<m>y"}, {"ou", "Com,pany"}},
		},
		{
			name:     "escaped backslash",
			dn:       `cn=a\\b`,
			expected: []Pair{{"cn", `a\b`}},
		},
		{
			name:     "equals inside value",
			dn:       "cn=a=b",
			expected: []Pair{{"cn", "a=b"}},
		},
		{
			name:     "escaped equals in key",
			dn:       `weird\=key=v`,
			expected: []Pair{{"weird=key", "v"}},
		},
		{
			name:     "hex escape in key",
			dn:       `c\6e=x`,
			expected: []Pair{{"cn", "x"}},
		},
		{
			name:     "utf8 hex escape",
			dn:       `cn=Zo\c3\ab`,
			expected: []Pair{{"cn", "Zoë"}},
		},
		{
			name:     "raw utf8",
			dn:       "cn=Zoë,o=Ünal",
			expected: []Pair{{"cn", "Zoë"}, {"o", "Ünal"}},
		},
		{
			name:     "trailing comma yields empty final pair",
			dn:       "cn=a,",
			expected: []Pair{{"cn", "a"}, {"", ""}},
		},
		{
			name:     "empty value",
			dn:       "cn=,ou=x",
			expected: []Pair{{"cn", ""}, {"ou", "x"}},
		},
		{
			name:     "plus kept in value",
			dn:       "cn=a+sn=b",
			expected: []Pair{{"cn", "a+sn=b"}},
		},
		{
			name:     "dangling value backslash is dropped",
			dn:       `cn=a\`,
			expected: []Pair{{"cn", "a"}},
		},
		{
			name:     "dangling key backslash is dropped",
			dn:       `cn\`,
			expected: []Pair{{"cn", ""}},
		},
		{
			name:     "dangling backslash after comma",
			dn:       `cn=a,ou=b\`,
			expected: []Pair{{"cn", "a"}, {"ou", "b"}},
		},
		{
			name:     "spaces preserved",
			dn:       "cn=Smith\\, John , ou=users",
			expected: []Pair{{"cn", "Smith, John "}, {" ou", "users"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Wrap(tt.dn).Pairs()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(result) != len(tt.expected) {
				t.Fatalf("expected %d pairs, got %d: %q", len(tt.expected), len(result), result)
			}
			for i, p := range result {
				if p != tt.expected[i] {
					t.Errorf("pair %d: expected %q, got %q", i, tt.expected[i], p)
				}
			}
		})
	}
}

func TestPairsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		dn     string
		offset int
	}{
		{"truncated value hex escape", `cn=Jam\3`, 8},
		{"interrupted value hex escape", `cn=Jam\3zm`, 8},
		{"interrupted key hex escape", `c\6x=a`, 3},
		{"truncated key hex escape", `c\6`, 3},
		{"malformed in later component", `cn=a,ou=b\4`, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Wrap(tt.dn).Pairs()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrMalformedDN) {
				t.Errorf("expected ErrMalformedDN, got %v", err)
			}

			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("expected *SyntaxError, got %T", err)
			}
			if syntaxErr.Offset != tt.offset {
				t.Errorf("expected offset %d, got %d", tt.offset, syntaxErr.Offset)
			}
			if syntaxErr.DN != tt.dn {
				t.Errorf("expected DN %q, got %q", tt.dn, syntaxErr.DN)
			}
		})
	}
}

func TestIteratorIsLazy(t *testing.T) {
	// The malformed escape sits in the second component, so the first pair
	// must come out before the error is seen.
	it := Wrap(`cn=a,ou=b\zz\4`).Iterator()

	if !it.Next() {
		t.Fatalf("expected first pair, got error %v", it.Err())
	}
	if got := it.Pair(); got != (Pair{"cn", "a"}) {
		t.Errorf("expected {cn a}, got %q", got)
	}
	if it.Next() {
		t.Fatalf("expected failure on second pair, got %q", it.Pair())
	}
	if !errors.Is(it.Err(), ErrMalformedDN) {
		t.Errorf("expected ErrMalformedDN, got %v", it.Err())
	}
	if it.Next() {
		t.Error("Next after failure should return false")
	}
}

func TestIteratorRestartable(t *testing.T) {
	d := Wrap("uid=alice,ou=users")

	first := d.Iterator()
	if !first.Next() {
		t.Fatal("expected a pair")
	}

	second := d.Iterator()
	var keys []string
	for second.Next() {
		keys = append(keys, second.Pair().Key)
	}
	if second.Err() != nil {
		t.Fatalf("unexpected error: %v", second.Err())
	}
	if len(keys) != 2 || keys[0] != "uid" || keys[1] != "ou" {
		t.Errorf("expected [uid ou], got %q", keys)
	}

	// The first iterator keeps its own position.
	if !first.Next() || first.Pair().Key != "ou" {
		t.Errorf("expected first iterator to continue at ou, got %q", first.Pair())
	}
	if first.Next() {
		t.Error("expected first iterator to be exhausted")
	}
}

func TestIteratorExhausted(t *testing.T) {
	it := Wrap("").Iterator()

	if !it.Next() {
		t.Fatal("empty DN should yield one pair")
	}
	if it.Pair() != (Pair{}) {
		t.Errorf("expected empty pair, got %q", it.Pair())
	}
	if it.Next() {
		t.Error("expected iterator to be exhausted")
	}
	if it.Err() != nil {
		t.Errorf("unexpected error: %v", it.Err())
	}
}

func TestEach(t *testing.T) {
	var got []string
	err := Wrap(`cn=Jam\<m\>y,ou=Com\,pany`).Each(func(key, value string) error {
		got = append(got, key+"|"+value)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "cn|Jam<m>y" || got[1] != "ou|Com,pany" {
		t.Errorf("unexpected pairs: %q", got)
	}
}

func TestEachStopsOnCallbackError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0

	err := Wrap("a=1,b=2,c=3").Each(func(key, value string) error {
		calls++
		if key == "b" {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("expected stop error, got %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		st       state
		expected string
	}{
		{stateKey, "key"},
		{stateValue, "value"},
		{stateKeyEscape, "key escape"},
		{stateKeyEscapeHex, "key hex escape"},
		{stateValueEscape, "value escape"},
		{stateValueEscapeHex, "value hex escape"},
		{state(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.st.String(); got != tt.expected {
			t.Errorf("state(%d).String() = %q, want %q", tt.st, got, tt.expected)
		}
	}
}
