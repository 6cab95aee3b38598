package text

import "errors"

var (
	// ErrEmptyFontData indicates NewFontSource was called with no bytes.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize indicates a zero or negative font size.
	ErrInvalidSize = errors.New("text: invalid font size")
)
