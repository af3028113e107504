// ===== pkg/hosts/classify.go =====
package hosts

import (
	"bytes"
)

// leadingSpace is the ASCII whitespace stripped before a line is classified
const leadingSpace = " \t\r\v\f"

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\v', '\f', '\n':
		return true
	}
	return false
}

// splitLines splits buf on LF. A trailing LF does not produce an extra empty line.
func splitLines(buf []byte) [][]byte {
	if len(buf) == 0 {
		return nil
	}
	lines := bytes.Split(buf, []byte{'\n'})
	if len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// classify strips leading whitespace and reports whether what is left is a
// candidate record line. Blank lines and full-line comments are not.
func classify(raw []byte) (string, bool) {
	line := bytes.TrimLeft(raw, leadingSpace)
	if len(line) == 0 || line[0] == '#' {
		return "", false
	}
	return string(line), true
}
