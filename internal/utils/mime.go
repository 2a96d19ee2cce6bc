package utils

import (
	"io"
	"net/http"
	"os"
)

// UnknownMimeType is reported when a file cannot be sniffed.
const UnknownMimeType = "application/octet-stream"

// DetectMimeType returns the MIME type of the file at filePath.
// It reads up to sniffLength bytes and uses http.DetectContentType.
// If the file cannot be read, UnknownMimeType is returned.
//
// #nosec G304
func DetectMimeType(filePath string) string {
	fileHandle, openError := os.Open(filePath)
	if openError != nil {
		return UnknownMimeType
	}
	defer fileHandle.Close()

	buffer := make([]byte, sniffLength)
	bytesRead, readError := io.ReadFull(fileHandle, buffer)
	if readError != nil && readError != io.EOF && readError != io.ErrUnexpectedEOF {
		return UnknownMimeType
	}

	return http.DetectContentType(buffer[:bytesRead])
}
