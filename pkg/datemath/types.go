package datemath

import "errors"

// ErrUnrecognizedDate is returned when input is neither an absolute layout
// nor a supported relative phrase.
var ErrUnrecognizedDate = errors.New("unrecognized date")

// absoluteLayouts are tried in order before relative phrases.
var absoluteLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
}
