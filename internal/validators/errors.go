package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID          = errors.New("invalid project id")
	ErrTitleTooLong       = errors.New("title is too long")
	ErrDescTooLong        = errors.New("desc is too long")
	ErrAuthorTooLong      = errors.New("author is too long")
	ErrPreviewTextTooLong = errors.New("previewText is too long")
	ErrImageNotAllowed    = errors.New("image payloads are not accepted")
	ErrInvalidTimestamp   = errors.New("invalid timestamp")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
)
