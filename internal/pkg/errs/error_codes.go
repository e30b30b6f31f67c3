/*
Package errs provides custom error types and application-level error code constants.

These error codes identify specific business or system errors both inside the
server and in the JSON envelopes returned to clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrFormParseFailed indicates failure to parse multipart or URL-encoded form data.
	ErrFormParseFailed = 1005

	// ErrRequestEntityTooLarge indicates that the request body size exceeded the server limit.
	ErrRequestEntityTooLarge = 1006

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1007

	// ErrValidationFailed indicates that a well-formed body failed field validation.
	// The message template takes the offending field name.
	ErrValidationFailed = 1008
)

// 2xxx: Chat and Message Errors
const (
	ErrChatNotFound          = 2101
	ErrNotGroupChat          = 2102
	ErrMembersLimitReached   = 2103
	ErrGroupTooSmall         = 2104
	ErrNotChatMember         = 2105
	ErrNotChatCreator        = 2106
	ErrMessageContentTooLong = 2201
)

// 3xxx: User, Session, and Friend Request Errors
const (
	ErrUnauthorized       = 3001
	ErrInvalidCredentials = 3002
	ErrUserAlreadyExists  = 3003
	ErrUserNotFound       = 3004
	ErrAlreadyLoggedIn    = 3005
	ErrAdminUnauthorized  = 3006

	ErrRequestAlreadySent = 3101
	ErrRequestNotFound    = 3102
	ErrRequestNotAllowed  = 3103
	ErrSelfRequest        = 3104
)

// 4xxx: File and Attachment Errors
const (
	ErrFileRequired      = 4001
	ErrFileSizeTooLarge  = 4002
	ErrFileTypeInvalid   = 4003
	ErrTooManyFiles      = 4004
	ErrFileStorageFailed = 4005
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000
)
