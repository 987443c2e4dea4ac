package domain

import "errors"

// Client rejections. These short-circuit ingestion before any write and must
// not be retried unmodified.
var (
	ErrBusNotAllowed           = errors.New("bus id not allowed")
	ErrMissingImage            = errors.New("no image uploaded")
	ErrMissingCoordinates      = errors.New("coordinates are required")
	ErrInvalidCoordinateFormat = errors.New("invalid coordinates format")
	ErrInvalidDate             = errors.New("invalid date format")
)

// ErrLocationNotFound means the bus has never ingested successfully since
// process start. It is not a client fault and not a system fault.
var ErrLocationNotFound = errors.New("location data not found")

// IsClientError reports whether err is a rejection caused by the request
// itself. Everything else surfacing from the pipeline is treated as a
// dependency failure, safe for the client to retry as-is.
func IsClientError(err error) bool {
	return errors.Is(err, ErrBusNotAllowed) ||
		errors.Is(err, ErrMissingImage) ||
		errors.Is(err, ErrMissingCoordinates) ||
		errors.Is(err, ErrInvalidCoordinateFormat) ||
		errors.Is(err, ErrInvalidDate)
}
