package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Snapshot error codes (SNAPSHOT_*)
const (
	SnapshotEmptySource       ErrorCode = "SNAPSHOT_001"
	SnapshotInvariantViolated ErrorCode = "SNAPSHOT_002"
	SnapshotVersionNotFound   ErrorCode = "SNAPSHOT_003"
	SnapshotCaptureFailed     ErrorCode = "SNAPSHOT_004"
)

// Aggregation error codes (AGGREGATION_*)
const (
	AggregationNoSnapshot     ErrorCode = "AGGREGATION_001"
	AggregationKeyConflict    ErrorCode = "AGGREGATION_002"
	AggregationFailed         ErrorCode = "AGGREGATION_003"
	AggregationPeriodNotFound ErrorCode = "AGGREGATION_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidPeriod ErrorCode = "VALIDATION_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Snapshot errors
	SnapshotEmptySource:       "Staging store is empty; refusing to create an empty snapshot",
	SnapshotInvariantViolated: "Snapshot store violates the single-latest-version invariant",
	SnapshotVersionNotFound:   "Snapshot version not found",
	SnapshotCaptureFailed:     "Snapshot capture failed and was rolled back",

	// Aggregation errors
	AggregationNoSnapshot:     "No snapshot available; run the snapshot stage first",
	AggregationKeyConflict:    "Aggregate row already exists for this key",
	AggregationFailed:         "Aggregation failed and was rolled back",
	AggregationPeriodNotFound: "No aggregate data found for the requested period",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidPeriod: "Invalid year or month parameter",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
