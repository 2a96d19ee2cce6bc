package utils

import (
	"io"
	"os"
	"unicode/utf8"
)

const (
	// sniffLength defines the maximum number of bytes read when detecting binary content.
	sniffLength = 8000
	// controlByteThreshold is the share of control bytes above which a sample is binary.
	controlByteThreshold = 0.30
)

// IsBinary reports whether the provided byte slice appears to contain binary data.
// A sample is binary when it holds a NUL byte, is not valid UTF-8, or is dominated
// by control bytes. A multibyte rune cut off at the end of the sample is tolerated.
func IsBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	controlBytes := 0
	for _, byteValue := range data {
		if byteValue == 0 {
			return true
		}
		if isControlByte(byteValue) {
			controlBytes++
		}
	}
	if !utf8.Valid(trimPartialRune(data)) {
		return true
	}
	return float64(controlBytes)/float64(len(data)) > controlByteThreshold
}

// IsFileBinary reads up to sniffLength bytes from the file at path and determines
// if the content appears to be binary.
//
// #nosec G304
func IsFileBinary(path string) (bool, error) {
	fileHandle, openError := os.Open(path)
	if openError != nil {
		return false, openError
	}
	defer fileHandle.Close()

	buffer := make([]byte, sniffLength)
	bytesRead, readError := io.ReadFull(fileHandle, buffer)
	if readError != nil && readError != io.EOF && readError != io.ErrUnexpectedEOF {
		return false, readError
	}
	return IsBinary(buffer[:bytesRead]), nil
}

// isControlByte reports bytes outside printable ASCII that text files do not normally carry.
// Tab, line feed, carriage return, form feed and escape are treated as text.
func isControlByte(byteValue byte) bool {
	switch byteValue {
	case '\t', '\n', '\r', '\f', 0x1b:
		return false
	}
	return byteValue < 0x20 || byteValue == 0x7f
}

// trimPartialRune drops an incomplete UTF-8 sequence at the end of a truncated sample.
func trimPartialRune(data []byte) []byte {
	lowerBound := len(data) - utf8.UTFMax
	if lowerBound < 0 {
		lowerBound = 0
	}
	for index := len(data) - 1; index >= lowerBound; index-- {
		if !utf8.RuneStart(data[index]) {
			continue
		}
		if !utf8.FullRune(data[index:]) {
			return data[:index]
		}
		return data
	}
	return data
}
