package utils

import "errors"

var (
	ErrFormNotFound           = errors.New("form not found")
	ErrFormClosed             = errors.New("form is closed")
	ErrFormNotYetOpen         = errors.New("form is not yet open")
	ErrSubmissionLimitReached = errors.New("submission limit reached")
	ErrMembersOnly            = errors.New("voting is restricted to members")
	ErrSessionNotFound        = errors.New("session not found")
	ErrInvalidSessionToken    = errors.New("invalid session token")
	ErrInvalidStage           = errors.New("invalid stage transition")
	ErrAlreadySubmitted       = errors.New("submission already finalized")
	ErrDuplicateSubmission    = errors.New("duplicate submission")
	ErrInvalidPhone           = errors.New("invalid phone number")
	ErrFileTooLarge           = errors.New("file too large")
	ErrFileTypeNotAllowed     = errors.New("file type not allowed")
	ErrInvalidManageKey       = errors.New("invalid manage key")
	ErrInvalidPage            = errors.New("invalid page parameter")
	ErrInvalidPageSize        = errors.New("invalid page size parameter")
	ErrDatabaseError          = errors.New("database error")
)
