// Package tokenize splits text into the keys indexed by tstwords.
//
// A word is a run of grapheme clusters that start with a letter, a decimal
// digit or an underscore. Everything else separates words.
package tokenize

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"

	"tst"
)

// DefaultMaxLength is the number of symbols kept from a longer word.
const DefaultMaxLength = 50

// Option configures a Scanner.
type Option func(*Scanner)

// WithMaxLength truncates words to n symbols. n <= 0 keeps whole words.
func WithMaxLength(n int) Option {
	return func(s *Scanner) {
		s.maxLength = n
	}
}

// Scanner reads words from a stream, one key per call to Scan.
type Scanner struct {
	r         *bufio.Reader
	maxLength int
	pending   []tst.Key
	key       tst.Key
	err       error
	done      bool
}

// New returns a Scanner reading from r.
func New(r io.Reader, opts ...Option) *Scanner {
	s := &Scanner{
		r:         bufio.NewReader(r),
		maxLength: DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan advances to the next word. It returns false at the end of the input
// or after a read error, see Err.
func (s *Scanner) Scan() bool {
	for len(s.pending) == 0 {
		if s.done {
			s.key = nil
			return false
		}

		// words never span lines
		line, err := s.r.ReadString('\n')
		s.pending = s.split(line)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.err = err
			}
			s.done = true
		}
	}

	s.key, s.pending = s.pending[0], s.pending[1:]
	return true
}

// Key returns the word found by the last call to Scan.
func (s *Scanner) Key() tst.Key {
	return s.key
}

// Err returns the first non-EOF error met by the Scanner.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) split(line string) []tst.Key {
	var keys []tst.Key
	var word tst.Key

	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		runes := gr.Runes()
		if isWordSymbol(runes[0]) {
			word = append(word, runes...)
			continue
		}
		keys = s.appendWord(keys, word)
		word = nil
	}
	return s.appendWord(keys, word)
}

func (s *Scanner) appendWord(keys []tst.Key, word tst.Key) []tst.Key {
	if len(word) == 0 {
		return keys
	}
	if s.maxLength > 0 && len(word) > s.maxLength {
		word = word[:s.maxLength:s.maxLength]
	}
	return append(keys, word)
}

// isWordSymbol reports whether a grapheme cluster starting with r belongs
// to a word.
func isWordSymbol(r rune) bool {
	return r == '_' || unicode.In(r, unicode.L, unicode.Nl, unicode.Other_Alphabetic, unicode.Nd)
}

// Keys returns every word of s.
func Keys(s string, opts ...Option) []tst.Key {
	var keys []tst.Key
	sc := New(strings.NewReader(s), opts...)
	for sc.Scan() {
		keys = append(keys, sc.Key())
	}
	return keys
}
