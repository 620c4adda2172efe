package services

import "errors"

var (
	ErrMissingResume       = errors.New("no resume uploaded")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
	ErrUnreadableDocument  = errors.New("document could not be read")
	ErrModelUnavailable    = errors.New("model request failed")
)
