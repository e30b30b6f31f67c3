/*
Package errs provides custom error types and application-level error code constants.

This file maps every error code to its CustomError template: the client message and HTTP status.
*/
package errs

import "net/http"

// errorMap stores the CustomError template for every application error code.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:         {Code: ErrInvalidParams, Message: "Invalid request parameters.", Status: http.StatusBadRequest},
	ErrUnsupportedMediaType:  {Code: ErrUnsupportedMediaType, Message: "Unsupported request format.", Status: http.StatusUnsupportedMediaType},
	ErrInvalidJSONFormat:     {Code: ErrInvalidJSONFormat, Message: "Unsupported request format.", Status: http.StatusBadRequest},
	ErrExtraContentInBody:    {Code: ErrExtraContentInBody, Message: "Request contains unexpected data.", Status: http.StatusBadRequest},
	ErrFormParseFailed:       {Code: ErrFormParseFailed, Message: "Failed to process uploaded data.", Status: http.StatusBadRequest},
	ErrRequestEntityTooLarge: {Code: ErrRequestEntityTooLarge, Message: "Request size is too large.", Status: http.StatusRequestEntityTooLarge},
	ErrRateLimitExceeded:     {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},
	ErrValidationFailed:      {Code: ErrValidationFailed, Message: "Please check the field: %s.", Status: http.StatusBadRequest},

	// 2xxx: Chat and Message Errors
	ErrChatNotFound:          {Code: ErrChatNotFound, Message: "Chat not found.", Status: http.StatusNotFound},
	ErrNotGroupChat:          {Code: ErrNotGroupChat, Message: "This is not a group chat.", Status: http.StatusBadRequest},
	ErrMembersLimitReached:   {Code: ErrMembersLimitReached, Message: "Members limit reached.", Status: http.StatusBadRequest},
	ErrGroupTooSmall:         {Code: ErrGroupTooSmall, Message: "Group must have at least %d members.", Status: http.StatusBadRequest},
	ErrNotChatMember:         {Code: ErrNotChatMember, Message: "You are not a member of this chat.", Status: http.StatusForbidden},
	ErrNotChatCreator:        {Code: ErrNotChatCreator, Message: "Only the group creator can do this.", Status: http.StatusForbidden},
	ErrMessageContentTooLong: {Code: ErrMessageContentTooLong, Message: "Message is too long.", Status: http.StatusBadRequest},

	// 3xxx: User, Session, and Friend Request Errors
	ErrUnauthorized:       {Code: ErrUnauthorized, Message: "Please login to access.", Status: http.StatusUnauthorized},
	ErrInvalidCredentials: {Code: ErrInvalidCredentials, Message: "Incorrect username or password.", Status: http.StatusUnauthorized},
	ErrUserAlreadyExists:  {Code: ErrUserAlreadyExists, Message: "Username is already taken.", Status: http.StatusConflict},
	ErrUserNotFound:       {Code: ErrUserNotFound, Message: "User not found.", Status: http.StatusNotFound},
	ErrAlreadyLoggedIn:    {Code: ErrAlreadyLoggedIn, Message: "You are already signed in.", Status: http.StatusBadRequest},
	ErrAdminUnauthorized:  {Code: ErrAdminUnauthorized, Message: "Admin access only.", Status: http.StatusUnauthorized},
	ErrRequestAlreadySent: {Code: ErrRequestAlreadySent, Message: "Request already sent.", Status: http.StatusBadRequest},
	ErrRequestNotFound:    {Code: ErrRequestNotFound, Message: "Request not found.", Status: http.StatusNotFound},
	ErrRequestNotAllowed:  {Code: ErrRequestNotAllowed, Message: "You are not allowed to answer this request.", Status: http.StatusForbidden},
	ErrSelfRequest:        {Code: ErrSelfRequest, Message: "You cannot send a request to yourself.", Status: http.StatusBadRequest},

	// 4xxx: File and Attachment Errors
	ErrFileRequired:      {Code: ErrFileRequired, Message: "Please upload a file.", Status: http.StatusBadRequest},
	ErrFileSizeTooLarge:  {Code: ErrFileSizeTooLarge, Message: "File is too large.", Status: http.StatusRequestEntityTooLarge},
	ErrFileTypeInvalid:   {Code: ErrFileTypeInvalid, Message: "File type is not allowed.", Status: http.StatusUnsupportedMediaType},
	ErrTooManyFiles:      {Code: ErrTooManyFiles, Message: "You can upload at most %d files.", Status: http.StatusBadRequest},
	ErrFileStorageFailed: {Code: ErrFileStorageFailed, Message: "File upload failed. Please try again.", Status: http.StatusBadGateway},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
