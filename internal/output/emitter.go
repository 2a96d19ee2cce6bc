// Package output writes bundle documents and the summary printed after a run.
package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/temirov/ctxbundle/internal/types"
	"github.com/temirov/ctxbundle/internal/utils"
)

const (
	openingTagFormat = "<%s>\n"
	closingTagFormat = "\n</%s>\n"

	errorInvalidTagFormat = "invalid tag name %q for %s"
	errorWriteEntryFormat = "writing entry %s: %w"
)

// ErrNilWriter is returned when an Emitter has no destination.
var ErrNilWriter = errors.New("output: emitter writer is nil")

// Emitter appends tagged file blocks to a document. It is not safe for concurrent use.
type Emitter struct {
	writer  io.Writer
	entries int
	bytes   int64
}

// NewEmitter returns an Emitter writing to writer.
func NewEmitter(writer io.Writer) *Emitter {
	return &Emitter{writer: writer}
}

// Emit writes "<tag>\n", the verbatim content, and "\n</tag>\n". The content is neither
// escaped nor re-encoded. Tag names outside [A-Za-z0-9._-] are rejected before anything is written.
func (emitter *Emitter) Emit(entry types.EmittedEntry) error {
	if emitter.writer == nil {
		return ErrNilWriter
	}
	if !utils.IsTagName(entry.TagName) {
		return fmt.Errorf(errorInvalidTagFormat, entry.TagName, entry.Path)
	}

	written, writeErr := fmt.Fprintf(emitter.writer, openingTagFormat, entry.TagName)
	emitter.bytes += int64(written)
	if writeErr != nil {
		return fmt.Errorf(errorWriteEntryFormat, entry.Path, writeErr)
	}
	emitter.entries++

	written, writeErr = emitter.writer.Write(entry.Content)
	emitter.bytes += int64(written)
	if writeErr != nil {
		return fmt.Errorf(errorWriteEntryFormat, entry.Path, writeErr)
	}

	written, writeErr = fmt.Fprintf(emitter.writer, closingTagFormat, entry.TagName)
	emitter.bytes += int64(written)
	if writeErr != nil {
		return fmt.Errorf(errorWriteEntryFormat, entry.Path, writeErr)
	}
	return nil
}

// Entries returns the number of opening tags written so far.
func (emitter *Emitter) Entries() int {
	return emitter.entries
}

// BytesWritten returns the size of the document produced so far.
func (emitter *Emitter) BytesWritten() int64 {
	return emitter.bytes
}
