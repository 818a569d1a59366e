package apierror

// Error type URIs following the urn:healthlog:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:healthlog:error:validation"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:healthlog:error:bad_request"

	// TypeInvalidUUID indicates an invalid UUID format in request (400)
	TypeInvalidUUID = "urn:healthlog:error:invalid_uuid"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:healthlog:error:not_found"

	// TypeConflict indicates a resource conflict (409)
	TypeConflict = "urn:healthlog:error:conflict"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:healthlog:error:internal"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation  = "Validation Error"
	TitleBadRequest  = "Bad Request"
	TitleInvalidUUID = "Invalid UUID Format"
	TitleNotFound    = "Resource Not Found"
	TitleConflict    = "Resource Conflict"
	TitleInternal    = "Internal Server Error"
)
