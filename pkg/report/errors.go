package report

import "errors"

// Sentinel errors returned by the report writer and reader.
var (
	// ErrInvalidRef is returned for component refs that are not positive.
	ErrInvalidRef = errors.New("component ref must be positive")

	// ErrInvalidUUID is returned when a uuid-keyed write has an empty uuid.
	ErrInvalidUUID = errors.New("component uuid must not be empty")

	// ErrAlreadyWritten is returned when a (domain, ref) pair or a component is written twice.
	ErrAlreadyWritten = errors.New("report entry already written")

	// ErrMetadataWritten is returned when metadata is written twice.
	ErrMetadataWritten = errors.New("report metadata already written")

	// ErrMetadataNotFound is returned when a report has no metadata file.
	ErrMetadataNotFound = errors.New("report metadata not found")

	// ErrComponentNotFound is returned when a component descriptor does not exist.
	ErrComponentNotFound = errors.New("component not found in report")

	// ErrCorruptReport is returned when an existing file cannot be decoded.
	ErrCorruptReport = errors.New("corrupt report file")

	// ErrUnsupportedVersion is returned for reports written in a newer format.
	ErrUnsupportedVersion = errors.New("unsupported report format version")
)
