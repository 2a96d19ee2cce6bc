package utils

import "strings"

const tagReplacementCharacter = '_'

// SanitizeTagName maps a file base name to a tag-safe identifier by replacing every
// character outside [A-Za-z0-9._-] with an underscore. Distinct names may collide.
func SanitizeTagName(baseName string) string {
	if baseName == "" {
		return string(tagReplacementCharacter)
	}
	var builder strings.Builder
	builder.Grow(len(baseName))
	for _, character := range baseName {
		if isTagCharacter(character) {
			builder.WriteRune(character)
			continue
		}
		builder.WriteRune(tagReplacementCharacter)
	}
	return builder.String()
}

// IsTagName reports whether name is non-empty and only holds tag-safe characters.
func IsTagName(name string) bool {
	if name == "" {
		return false
	}
	for _, character := range name {
		if !isTagCharacter(character) {
			return false
		}
	}
	return true
}

func isTagCharacter(character rune) bool {
	switch {
	case character >= 'a' && character <= 'z':
		return true
	case character >= 'A' && character <= 'Z':
		return true
	case character >= '0' && character <= '9':
		return true
	case character == '.', character == '_', character == '-':
		return true
	}
	return false
}
