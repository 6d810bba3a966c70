package util

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"os"
)

//*******************************************
// token reader
//*******************************************

// Reads whitespace separated tokens, newlines carry no meaning.
type TokenReader struct {
	scanner *bufio.Scanner
	count   int
}

func NewTokenReader(r io.Reader) *TokenReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	return &TokenReader{
		scanner: scanner,
	}
}

// Returns the next token, false at the end of input.
func (self *TokenReader) Next() (string, bool) {
	if !self.scanner.Scan() {
		return "", false
	}
	self.count += 1
	return self.scanner.Text(), true
}

// Reads up to len(buf) tokens into buf and returns how many were read.
func (self *TokenReader) ReadN(buf []string) int {
	for i := range buf {
		tok, ok := self.Next()
		if !ok {
			return i
		}
		buf[i] = tok
	}
	return len(buf)
}

// Number of tokens read so far.
func (self *TokenReader) Count() int {
	return self.count
}

func (self *TokenReader) Err() error {
	return self.scanner.Err()
}

//*******************************************
// json files
//*******************************************

func WriteJSONToFile[T any](value T, file string) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, data, 0o644)
}

func ReadJSONFromFile[T any](file string) (T, error) {
	var value T
	data, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		return value, errors.New("file not found: " + file)
	}
	if err != nil {
		return value, err
	}
	err = json.Unmarshal(data, &value)
	return value, err
}
