// File: types.go
// Role: sentinel errors for the text and CSV readers, as package-level
// errors.New values wrapped with fmt.Errorf at the call site.
package siteio

import "errors"

var (
	// ErrMalformedHeader indicates the input never reached a [parts]
	// section.
	ErrMalformedHeader = errors.New("siteio: missing [parts] section")

	// ErrTruncatedParts indicates a parts row did not have the expected
	// number of fields.
	ErrTruncatedParts = errors.New("siteio: truncated parts row")

	// ErrBadField indicates a numeric field could not be parsed.
	ErrBadField = errors.New("siteio: unparseable field")

	// ErrBadStateFlag indicates a state field was not "0" or "1".
	ErrBadStateFlag = errors.New("siteio: state flag must be 0 or 1")
)

// partsFieldCount is the number of whitespace- or comma-delimited fields
// per site row: id, x, y, z (unused), mx, my, mz (unused), state.
const partsFieldCount = 8
