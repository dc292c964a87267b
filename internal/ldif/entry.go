package ldif

import (
	"sort"
	"strings"

	"github.com/KilimcininKorOglu/obadn/internal/dn"
)

// Entry is a directory entry as it appears in an LDIF record.
type Entry struct {
	DN         dn.DN
	Attributes map[string][][]byte
}

// NewEntry creates an entry with no attributes.
func NewEntry(d dn.DN) *Entry {
	return &Entry{
		DN:         d,
		Attributes: make(map[string][][]byte),
	}
}

// AddValue appends a value to an attribute. Attribute names are case-insensitive
// and stored in lower case.
func (e *Entry) AddValue(attr string, value []byte) {
	attr = strings.ToLower(attr)
	e.Attributes[attr] = append(e.Attributes[attr], value)
}

// AddString appends a string value to an attribute.
func (e *Entry) AddString(attr, value string) {
	e.AddValue(attr, []byte(value))
}

// Values returns the values of an attribute.
func (e *Entry) Values(attr string) [][]byte {
	return e.Attributes[strings.ToLower(attr)]
}

// attributeNames returns attribute names in sorted order.
func (e *Entry) attributeNames() []string {
	names := make([]string, 0, len(e.Attributes))
	for name := range e.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
