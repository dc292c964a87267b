package ldif

import (
	"encoding/base64"
	"io"
)

// maxLineLength is the column at which long lines are folded.
const maxLineLength = 76

// Writer writes entries in LDIF format.
type Writer struct {
	w io.Writer
}

// NewWriter creates a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteEntry writes a single entry followed by an empty line.
//
// The DN is written exactly as returned by DN.String. It is already escaped
// and must not be escaped again; only the LDIF transport encoding (base64
// for unsafe strings) is applied.
func (w *Writer) WriteEntry(entry *Entry) error {
	if entry == nil || entry.DN.IsEmpty() {
		return ErrMissingDN
	}

	if err := w.writeAttr("dn", []byte(entry.DN.String())); err != nil {
		return err
	}

	for _, attr := range entry.attributeNames() {
		for _, value := range entry.Attributes[attr] {
			if err := w.writeAttr(attr, value); err != nil {
				return err
			}
		}
	}

	_, err := io.WriteString(w.w, "\n")
	return err
}

// writeAttr writes one "name: value" or "name:: base64" line.
func (w *Writer) writeAttr(name string, value []byte) error {
	if needsBase64Encoding(value) {
		return w.writeLine(name + ":: " + base64.StdEncoding.EncodeToString(value))
	}
	return w.writeLine(name + ": " + string(value))
}

// writeLine writes a line, folding it so that no physical line exceeds
// maxLineLength. Continuation lines start with a single space.
func (w *Writer) writeLine(line string) error {
	first := true
	for {
		limit := maxLineLength
		prefix := ""
		if !first {
			limit--
			prefix = " "
		}

		if len(line) <= limit {
			_, err := io.WriteString(w.w, prefix+line+"\n")
			return err
		}

		if _, err := io.WriteString(w.w, prefix+line[:limit]+"\n"); err != nil {
			return err
		}
		line = line[limit:]
		first = false
	}
}

// Write writes entries to w in LDIF format.
func Write(w io.Writer, entries []*Entry) error {
	lw := NewWriter(w)
	for _, entry := range entries {
		if err := lw.WriteEntry(entry); err != nil {
			return err
		}
	}
	return nil
}

// needsBase64Encoding checks if a value needs base64 encoding.
// According to RFC 2849, values need base64 encoding if they:
// - Start with a space, colon, or less-than sign
// - End with a space
// - Contain NUL, CR or LF
// - Contain bytes outside printable ASCII
func needsBase64Encoding(value []byte) bool {
	if len(value) == 0 {
		return false
	}

	first := value[0]
	if first == ' ' || first == ':' || first == '<' {
		return true
	}
	if value[len(value)-1] == ' ' {
		return true
	}

	for _, b := range value {
		if b < 0x20 || b > 0x7E {
			return true
		}
	}

	return false
}
