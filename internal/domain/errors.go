package domain

import "errors"

var (
	// ErrUnknownFormat is returned when a transcode format name is not one
	// of the supported values.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrCellTooSmall is returned when punchcard cell dimensions cannot
	// hold the 2x3 Braille dot grid. Rendering into a smaller block would
	// silently drop dots and corrupt the physical pattern.
	ErrCellTooSmall = errors.New("punchcard cell too small: need width >= 2 and height >= 3")
)
