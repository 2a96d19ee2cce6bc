// Package clipboard copies finished bundles to the system clipboard.
package clipboard

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct{}

// NewService constructs a clipboard Service.
func NewService() *Service {
	return &Service{}
}

// Copy writes text to the system clipboard.
func (service *Service) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	return clipboard.WriteAll(text)
}

// CopyFile copies the content of the bundle at path through copier.
//
// #nosec G304
func CopyFile(copier Copier, path string) error {
	content, readErr := os.ReadFile(path)
	if readErr != nil {
		return fmt.Errorf("read bundle %s for clipboard: %w", path, readErr)
	}
	if copyErr := copier.Copy(string(content)); copyErr != nil {
		return fmt.Errorf("copy bundle %s to clipboard: %w", path, copyErr)
	}
	return nil
}

var _ Copier = (*Service)(nil)
