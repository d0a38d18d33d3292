package measure

import "errors"

// ErrDuplicateMeasure is returned when a sink receives the same measure twice.
var ErrDuplicateMeasure = errors.New("measure already recorded")
