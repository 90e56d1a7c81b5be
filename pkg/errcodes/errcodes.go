package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	MethodNotAllowed    failure.ErrorCode = "MethodNotAllowed"

	DatabaseError failure.ErrorCode = "DatabaseError"
	InvalidItems  failure.ErrorCode = "InvalidItems"
)
