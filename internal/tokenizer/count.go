package tokenizer

import (
	"errors"
	"os"
)

// ErrNilCounter is returned when counting without a Counter.
var ErrNilCounter = errors.New("nil tokenizer counter")

// CountBytes estimates tokens for data. Bytes are counted as they are, including
// invalid UTF-8.
func CountBytes(counter Counter, data []byte) (int, error) {
	if counter == nil {
		return 0, ErrNilCounter
	}
	return counter.CountString(string(data))
}

// CountFile reads the file at path and estimates its token count.
//
// #nosec G304
func CountFile(counter Counter, path string) (int, error) {
	if counter == nil {
		return 0, ErrNilCounter
	}
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return 0, readErr
	}
	return CountBytes(counter, data)
}
