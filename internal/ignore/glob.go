package ignore

import "unicode/utf8"

const (
	globAnyRun        = '*'
	globAnyCharacter  = '?'
	globClassOpen     = '['
	globClassClose    = ']'
	globClassRange    = '-'
	globEscape        = '\\'
	globNegateBang    = '!'
	globNegateCaret   = '^'
	invalidNextOffset = -1
)

// MatchGlob reports whether name matches the shell glob pattern. Unlike path.Match, a star
// also matches path separators, which mirrors the -path test of find(1):
//
//	*      any run of characters, including '/'
//	?      exactly one character
//	[abc]  one character from the class; ranges (a-z) and negation ([!x] or [^x]) are supported
//	\c     the literal character c
//
// An unterminated class is matched as a literal '['. The function never fails.
func MatchGlob(pattern, name string) bool {
	patternIndex, nameIndex := 0, 0
	restartPatternIndex, restartNameIndex := 0, invalidNextOffset

	for patternIndex < len(pattern) || nameIndex < len(name) {
		if patternIndex < len(pattern) {
			switch pattern[patternIndex] {
			case globAnyRun:
				restartPatternIndex = patternIndex
				restartNameIndex = nextRuneOffset(name, nameIndex)
				patternIndex++
				continue
			case globAnyCharacter:
				if nameIndex < len(name) {
					patternIndex++
					nameIndex = nextRuneOffset(name, nameIndex)
					continue
				}
			case globClassOpen:
				if nameIndex < len(name) {
					nameRune, nameWidth := utf8.DecodeRuneInString(name[nameIndex:])
					matched, classWidth, wellFormed := matchClass(pattern[patternIndex:], nameRune)
					if !wellFormed {
						if name[nameIndex] == globClassOpen {
							patternIndex++
							nameIndex++
							continue
						}
					} else if matched {
						patternIndex += classWidth
						nameIndex += nameWidth
						continue
					}
				}
			case globEscape:
				literalIndex := patternIndex + 1
				if literalIndex >= len(pattern) {
					literalIndex = patternIndex
				}
				literalRune, literalWidth := utf8.DecodeRuneInString(pattern[literalIndex:])
				if nameIndex < len(name) {
					nameRune, nameWidth := utf8.DecodeRuneInString(name[nameIndex:])
					if nameRune == literalRune {
						patternIndex = literalIndex + literalWidth
						nameIndex += nameWidth
						continue
					}
				}
			default:
				if nameIndex < len(name) && pattern[patternIndex] == name[nameIndex] {
					patternIndex++
					nameIndex++
					continue
				}
			}
		}
		if restartNameIndex != invalidNextOffset && restartNameIndex <= len(name) {
			patternIndex = restartPatternIndex
			nameIndex = restartNameIndex
			continue
		}
		return false
	}
	return true
}

// nextRuneOffset returns the offset just past the rune starting at offset, or
// invalidNextOffset when offset is already at the end of value.
func nextRuneOffset(value string, offset int) int {
	if offset >= len(value) {
		return invalidNextOffset
	}
	_, width := utf8.DecodeRuneInString(value[offset:])
	return offset + width
}

// matchClass evaluates the bracket expression at the start of pattern against candidate.
// It returns whether candidate is in the class, the byte width of the expression, and
// whether the expression is terminated.
func matchClass(pattern string, candidate rune) (bool, int, bool) {
	index := 1
	negated := false
	if index < len(pattern) && (pattern[index] == globNegateBang || pattern[index] == globNegateCaret) {
		negated = true
		index++
	}

	matched := false
	first := true
	for index < len(pattern) {
		if pattern[index] == globClassClose && !first {
			return matched != negated, index + 1, true
		}
		first = false

		low, width, ok := classRune(pattern, index)
		if !ok {
			return false, 0, false
		}
		index += width
		high := low
		if index+1 < len(pattern) && pattern[index] == globClassRange && pattern[index+1] != globClassClose {
			rangeEnd, rangeWidth, rangeOK := classRune(pattern, index+1)
			if !rangeOK {
				return false, 0, false
			}
			high = rangeEnd
			index += 1 + rangeWidth
		}
		if low <= candidate && candidate <= high {
			matched = true
		}
	}
	return false, 0, false
}

// classRune decodes one possibly escaped class member at offset.
func classRune(pattern string, offset int) (rune, int, bool) {
	if pattern[offset] == globEscape {
		if offset+1 >= len(pattern) {
			return 0, 0, false
		}
		value, width := utf8.DecodeRuneInString(pattern[offset+1:])
		return value, width + 1, true
	}
	value, width := utf8.DecodeRuneInString(pattern[offset:])
	return value, width, true
}
