// Package dn builds and decomposes LDAP Distinguished Names.
//
// # Overview
//
// A DN identifies a directory entry through a comma separated chain of
// type=value components:
//
//	uid=alice,ou=users,dc=example,dc=com
//
// Characters with syntactic meaning must be escaped with a backslash when
// they appear inside a value:
//
//	,  =  +  <  >  #  ;  \  "
//
// Two hex digits after a backslash encode a single byte, so "\3c" and "\<"
// both decode to "<".
//
// # Building a DN
//
// New takes alternating attribute types and values and escapes them:
//
//	d := dn.New("cn", "Smith, John", "ou", "users")
//	d.String() // cn=Smith\, John,ou=users
//
// An odd number of arguments appends the last one verbatim, which is how an
// escaped base DN is attached:
//
//	d := dn.New("uid", "alice", "ou=users,dc=example,dc=com")
//
// Escaped strings coming from elsewhere are wrapped with Wrap or, when they
// need validating, Parse.
//
// # Decomposing a DN
//
// Pairs, Strings, Each and Iterator run a byte-level state machine over
// the escaped string and return unescaped components in order:
//
//	pairs, err := dn.Wrap(`cn=Jam\3cm\3ey,ou=Com\,pany`).Pairs()
//	// [{cn Jam<m>y} {ou Com,pany}]
//
// A hex escape cut short by a non-hex character or by the end of input is
// reported as a *SyntaxError wrapping ErrMalformedDN. A lone backslash at
// the end of input is dropped.
//
// Multi-valued RDNs joined by "+" are not split; a "+" inside a value is
// kept as part of it.
package dn
