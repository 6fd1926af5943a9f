package utils

import "errors"

var (
	ErrCityNotFound            = errors.New("city not found")
	ErrPointOfInterestNotFound = errors.New("point of interest not found")
	ErrSaveFailed              = errors.New("save reported no changes")
	ErrDatabaseError           = errors.New("database error")
	ErrMissingBody             = errors.New("request body is required")
)

// ProblemMessage is the only detail clients get for server-side failures.
const ProblemMessage = "A problem happened while handling your request."
