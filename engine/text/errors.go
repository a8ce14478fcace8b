package text

import "errors"

var (
	// ErrCharacterNotInSet is returned when neither a rune nor the fallback
	// glyph is available.
	ErrCharacterNotInSet = errors.New("text: character not in glyph set")

	// ErrInvalidLineHeightNotSet is returned for '\n' without a line height.
	ErrInvalidLineHeightNotSet = errors.New("text: newline requires a line height")
)

// Fallback is drawn in place of runes the glyph set lacks.
const Fallback = '?'
