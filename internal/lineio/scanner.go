package lineio

import (
	"bufio"
	"io"
)

// Scanner tokenizes a byte stream into lines. The newline delimiter is not
// part of the returned token; a final line without a trailing newline is
// still returned. Unlike bufio.Scanner there is no token size cap: lines
// grow with the stream.
type Scanner struct {
	r    *bufio.Reader
	line []byte
	err  error
	done bool
}

// NewScanner creates a Scanner over r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Scan advances to the next line. It returns false at end of stream or on a
// read error; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	line, err := s.r.ReadBytes('\n')
	if err != nil {
		s.done = true
		if err != io.EOF {
			s.err = err
			return false
		}
		// EOF: the last unterminated line is still a token.
		if len(line) == 0 {
			return false
		}
		s.line = line
		return true
	}

	s.line = line[:len(line)-1]
	return true
}

// Bytes returns the current line. The slice is only valid until the next
// call to Scan.
func (s *Scanner) Bytes() []byte {
	return s.line
}

// Text returns the current line as a string.
func (s *Scanner) Text() string {
	return string(s.line)
}

// Err returns the first non-EOF error encountered while scanning.
func (s *Scanner) Err() error {
	return s.err
}
