package ldif

import (
	"bufio"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KilimcininKorOglu/obadn/internal/dn"
)

// LDIF errors.
var (
	ErrInvalidLDIF   = errors.New("invalid LDIF format")
	ErrMissingDN     = errors.New("missing DN in LDIF entry")
	ErrInvalidBase64 = errors.New("invalid base64 encoding")
	ErrEmptyReader   = errors.New("empty reader")
)

// Reader reads entries from LDIF content one at a time.
type Reader struct {
	scanner *bufio.Scanner
	lineNo  int

	pending     string
	pendingLine int
	hasPending  bool
}

// maxLineSize bounds a single physical line, enough for unfolded base64
// values such as photos and certificates.
const maxLineSize = 16 << 20

// NewReader creates a Reader that reads from r.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{scanner: scanner}
}

// Next returns the next entry, or io.EOF when there are no more entries.
// Every DN is checked with dn.Parse, so a malformed DN produces an error
// that wraps dn.ErrMalformedDN.
func (r *Reader) Next() (*Entry, error) {
	var entry *Entry

	for {
		line, lineNo, ok, err := r.readLine()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLDIF, err)
		}
		if !ok {
			if entry != nil {
				return entry, nil
			}
			return nil, io.EOF
		}

		// Empty line marks end of entry
		if line == "" {
			if entry != nil {
				return entry, nil
			}
			continue
		}

		if line[0] == '#' {
			continue
		}

		name, value, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		if entry == nil {
			switch name {
			case "version":
				continue
			case "dn":
				if len(value) == 0 {
					return nil, fmt.Errorf("line %d: %w", lineNo, ErrMissingDN)
				}
				d, err := dn.Parse(string(value))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				entry = NewEntry(d)
			default:
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrMissingDN)
			}
			continue
		}

		if name == "dn" {
			return nil, fmt.Errorf("%w: line %d: dn inside entry %s", ErrInvalidLDIF, lineNo, entry.DN)
		}
		entry.AddValue(name, value)
	}
}

// readLine returns the next logical line, with continuation lines (those
// starting with a single space) unfolded.
func (r *Reader) readLine() (string, int, bool, error) {
	var line string
	var lineNo int

	if r.hasPending {
		line, lineNo = r.pending, r.pendingLine
		r.hasPending = false
	} else {
		if !r.scanner.Scan() {
			return "", 0, false, r.scanner.Err()
		}
		r.lineNo++
		line, lineNo = r.scanner.Text(), r.lineNo
	}

	for r.scanner.Scan() {
		r.lineNo++
		next := r.scanner.Text()
		if len(next) > 0 && next[0] == ' ' {
			line += next[1:]
			continue
		}
		r.pending, r.pendingLine, r.hasPending = next, r.lineNo, true
		break
	}

	return line, lineNo, true, r.scanner.Err()
}

// parseLine splits an attribute line into its lower-cased name and decoded value.
func parseLine(line string) (string, []byte, error) {
	colonIdx := strings.Index(line, ":")
	if colonIdx == -1 {
		return "", nil, fmt.Errorf("%w: missing colon in line: %s", ErrInvalidLDIF, line)
	}

	name := strings.ToLower(strings.TrimSpace(line[:colonIdx]))
	if name == "" {
		return "", nil, fmt.Errorf("%w: missing attribute name in line: %s", ErrInvalidLDIF, line)
	}
	rest := line[colonIdx+1:]

	switch {
	case strings.HasPrefix(rest, ":"):
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(rest[1:]))
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
		}
		return name, decoded, nil
	case strings.HasPrefix(rest, "<"):
		return "", nil, fmt.Errorf("%w: URL values are not supported: %s", ErrInvalidLDIF, name)
	default:
		return name, []byte(strings.TrimLeft(rest, " ")), nil
	}
}

// Parse reads all entries from r.
func Parse(r io.Reader) ([]*Entry, error) {
	if r == nil {
		return nil, ErrEmptyReader
	}

	lr := NewReader(r)
	var entries []*Entry
	for {
		entry, err := lr.Next()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
}
