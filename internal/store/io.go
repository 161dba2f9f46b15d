package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// lookupEncoding resolves an IANA charset name such as "UTF-8" or "ISO-8859-1".
func lookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("file encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("file encoding %q is not supported", name)
	}
	return enc, nil
}

// readLines reads path, decodes it from enc and splits it on eol. A trailing
// separator does not produce an empty final line. A missing file surfaces as
// os.ErrNotExist.
func readLines(path string, enc encoding.Encoding, eol string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := decode(b, enc)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(text) == 0 {
		return nil, nil
	}
	lines := strings.Split(string(text), eol)
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// decode converts b to UTF-8. UTF-8 input is passed through untouched so
// invalid bytes reach the line parser instead of becoming U+FFFD.
func decode(b []byte, enc encoding.Encoding) ([]byte, error) {
	if name, err := ianaindex.IANA.Name(enc); err == nil && name == "UTF-8" {
		return b, nil
	}
	return enc.NewDecoder().Bytes(b)
}

// writeLines overwrites path with every line followed by eol, encoded with enc.
// The file is truncated in place; a crash mid-write leaves it partially written.
func writeLines(path string, lines []string, enc encoding.Encoding, eol string, mode os.FileMode) error {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteString(eol)
	}
	b, err := enc.NewEncoder().Bytes([]byte(sb.String()))
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return os.WriteFile(path, b, mode)
}

// createFile creates an empty file at path unless one already exists.
func createFile(path string, mode os.FileMode) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if errors.Is(err, os.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, f.Close()
}
