package main

import (
	"bufio"
	"io"
)

const maxWordLen = 1 << 20

// Tokenizer splits a stream into words: maximal runs of ASCII letters, digits
// and apostrophes. Every other byte is a separator.
type Tokenizer struct {
	s *bufio.Scanner
}

func NewTokenizer(r io.Reader) *Tokenizer {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64), maxWordLen)
	s.Split(scanWords)
	return &Tokenizer{s: s}
}

// Next returns the next word, or false once the stream is exhausted.
func (t *Tokenizer) Next() (string, bool) {
	if !t.s.Scan() {
		return "", false
	}
	return t.s.Text(), true
}

// Err returns the first read error, if any.
func (t *Tokenizer) Err() error {
	return t.s.Err()
}

func isWordByte(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'A' && c <= 'Z' ||
		c >= 'a' && c <= 'z' ||
		c == '\''
}

func scanWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && !isWordByte(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if !isWordByte(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	// Request more data, keeping the partial word.
	return start, nil, nil
}
