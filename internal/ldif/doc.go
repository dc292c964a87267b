// Package ldif reads and writes directory entries in LDIF (RFC 2849).
//
// Entries carry their DN as a dn.DN. The writer emits the DN's escaped
// string unchanged; LDIF only adds base64 transport encoding when the string
// is not a safe LDIF value:
//
//	entry := ldif.NewEntry(dn.New("cn", "Smith, John", "ou=users,dc=example,dc=com"))
//	entry.AddString("objectClass", "person")
//	err := ldif.NewWriter(os.Stdout).WriteEntry(entry)
//
// Output:
//
//	dn: cn=Smith\, John,ou=users,dc=example,dc=com
//	objectclass: person
//
// The reader unfolds continuation lines, skips comments and the version
// line, decodes "::" values and validates every DN:
//
//	entries, err := ldif.Parse(f)
//
// Change records and URL ("<") values are not supported.
package ldif
